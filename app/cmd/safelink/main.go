package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"

	"github.com/alcortesm/safelink-premium/app/config"
	"github.com/alcortesm/safelink-premium/app/logging"
	"github.com/alcortesm/safelink-premium/app/server"
)

func main() {
	ctx, cancel := signalContext(os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c, err := config.Load()
	if err != nil {
		// no logger configuration yet, use the defaults
		logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
		logger.Fatal().Err(err).Msg("loading configuration")
	}

	logger, closeLogs := logging.New(c.Log, os.Stdout)
	defer closeLogs()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	s, err := server.New(c.HTTP, logger, reg)
	if err != nil {
		logger.Fatal().Err(err).Msg("creating server")
	}

	if err := s.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("running server")
		closeLogs()
		os.Exit(1)
	}
}

func signalContext(signals ...os.Signal) (
	context.Context, context.CancelFunc) {
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, signals...)

	go func() {
		select {
		case <-c:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(c)
	}()

	return ctx, cancel
}
