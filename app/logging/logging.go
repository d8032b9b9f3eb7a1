// Package logging builds the structured logger shared by the SafeLink
// binaries.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/alcortesm/safelink-premium/app/config"
)

// New returns a JSON logger configured from c and a function to
// release its resources. Logs are written to stdout unless c.File is
// set, in which case they go to a size-rotated file.
//
// Unknown levels fall back to info; use config.Log.Validate to reject
// them earlier.
func New(c config.Log, stdout io.Writer) (zerolog.Logger, func()) {
	level, err := zerolog.ParseLevel(c.Level)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	out := stdout
	cancel := func() {}

	if c.File != "" {
		file := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxBackups: c.MaxBackups,
			MaxAge:     c.MaxAge,
			Compress:   c.Compress,
		}
		out = file
		cancel = func() { _ = file.Close() }
	}

	logger := zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "safelink-premium").
		Logger()

	return logger, cancel
}
