package httpdeco

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// WithLogs logs one line per request with its method, URL, response
// status and duration. Requests whose response could not be written
// are logged as errors.
func WithLogs(l zerolog.Logger) Decorator {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			verbose := &verboseResponseWriter{ResponseWriter: w}

			start := time.Now()
			h.ServeHTTP(verbose, r)
			elapsed := time.Since(start)

			event := l.Info()
			if verbose.writeError != nil {
				event = l.Error().Err(verbose.writeError)
			}

			event.
				Str("method", r.Method).
				Stringer("url", r.URL).
				Int("status", verbose.Status()).
				Dur("elapsed", elapsed).
				Msg("request")
		})
	}
}
