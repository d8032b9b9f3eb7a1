package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

// EnvPrefix is the prefix of all the environment variables read by
// Load, for example SAFELINK_HTTP_ADDR.
const EnvPrefix = "SAFELINK"

type Config struct {
	HTTP HTTP
	Log  Log
}

type HTTP struct {
	Addr            string        `default:":8080"`
	ReadTimeout     time.Duration `default:"10s" split_words:"true"`
	WriteTimeout    time.Duration `default:"10s" split_words:"true"`
	ShutdownTimeout time.Duration `default:"5s" split_words:"true"`
}

type Log struct {
	Level string `default:"info"`
	// File is the path of the log file, logs go to stdout if empty.
	File       string
	MaxSize    int  `default:"100" split_words:"true"` // megabytes
	MaxBackups int  `default:"3" split_words:"true"`
	MaxAge     int  `default:"28" split_words:"true"` // days
	Compress   bool `default:"false"`
}

// Validate checks the log level is one zerolog knows about.
func (l Log) Validate() error {
	if _, err := zerolog.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %v", l.Level, err)
	}

	return nil
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config

	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Config{}, fmt.Errorf("processing %s environment variables: %v",
			EnvPrefix, err)
	}

	if err := c.Log.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}
