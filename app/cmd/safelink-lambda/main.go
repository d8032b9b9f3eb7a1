package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"

	"github.com/alcortesm/safelink-premium/app/config"
	"github.com/alcortesm/safelink-premium/app/logging"
	"github.com/alcortesm/safelink-premium/app/serverless"
)

func main() {
	c, err := config.Load()
	if err != nil {
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("loading configuration")
	}

	// Lambda collects stdout, rotating files make no sense there.
	c.Log.File = ""

	logger, closeLogs := logging.New(c.Log, os.Stdout)
	defer closeLogs()

	h := serverless.Handler{Logger: logger}

	lambda.Start(h.Handle)
}
