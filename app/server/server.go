// Package server hosts the SafeLink handlers on a plain HTTP server,
// for running outside a serverless platform.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/alcortesm/safelink-premium/app/config"
	"github.com/alcortesm/safelink-premium/app/httpdeco"
	"github.com/alcortesm/safelink-premium/app/web"
)

const (
	HealthPath  = "/health"
	MetricsPath = "/metrics"
)

type Server struct {
	logger  zerolog.Logger
	config  config.HTTP
	handler http.Handler
}

// New returns a server with the landing page on every path but
// HealthPath and MetricsPath. The request metrics are registered in
// reg and exposed on MetricsPath.
func New(
	c config.HTTP,
	logger zerolog.Logger,
	reg *prometheus.Registry,
) (*Server, error) {
	metrics, err := httpdeco.NewMetrics(reg)
	if err != nil {
		return nil, fmt.Errorf("creating metrics: %v", err)
	}

	decorate := func(name string, h http.Handler) http.Handler {
		return httpdeco.Decorate(h,
			httpdeco.WithMetrics(metrics, name),
			httpdeco.WithLogs(logger.With().Str("handler", name).Logger()),
		)
	}

	mux := http.NewServeMux()
	mux.Handle(HealthPath, decorate("health", web.HealthHandler()))
	mux.Handle(MetricsPath, decorate("metrics",
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	mux.Handle("/", decorate("landing", web.LandingHandler()))

	return &Server{
		logger:  logger,
		config:  c,
		handler: mux,
	}, nil
}

// Handler returns the routed and decorated handlers of the server.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run serves HTTP on the configured address until ctx is done, then
// shuts down gracefully, waiting up to the configured shutdown timeout
// for in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.config.Addr,
		Handler:      s.handler,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", s.config.Addr).Msg("listening")

		err := srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return fmt.Errorf("listening on %q: %v", s.config.Addr, err)
	})

	g.Go(func() error {
		<-ctx.Done()

		s.logger.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.config.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %v", err)
		}

		return nil
	})

	return g.Wait()
}
