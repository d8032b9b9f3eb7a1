package httpdeco

import (
	"net/http"
)

// Decorator decorates http.Handlers.
type Decorator func(http.Handler) http.Handler

// Decorate applies a bunch of decorators to an http.Handler. The last
// decorator is the outermost one.
func Decorate(h http.Handler, dd ...Decorator) http.Handler {
	result := h

	for _, d := range dd {
		result = d(result)
	}

	return result
}

// VerboseResponseWriter wraps an http.ResponseWriter so you can
// inspect the status code and the write error after writing
// the response.
//
// Note this will hide optional methods in the http.ResponseWriter like
// http.Flusher or http.Hijacker.
type verboseResponseWriter struct {
	http.ResponseWriter
	status     int   // the status code set by the handler
	writeError error // the error returned by the last call to Write
}

func (w *verboseResponseWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *verboseResponseWriter) Write(b []byte) (int, error) {
	// If WriteHeader has not yet been called, Write sets
	// status to http.StatusOK before writing the data.
	if w.status == 0 {
		w.status = http.StatusOK
	}

	var n int
	n, w.writeError = w.ResponseWriter.Write(b)

	return n, w.writeError
}

// Status returns the status code sent to the client, handlers that
// write nothing at all send a 200.
func (w *verboseResponseWriter) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}

	return w.status
}
