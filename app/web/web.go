package web

import "net/http"

const health = `{"status":"healthy"}`

var (
	landing    = []byte(LandingPage)
	healthBody = []byte(health)
)

// LandingHandler serves the landing page. The request is ignored
// completely: every method, path, header and body gets the same
// response.
func LandingHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write(landing)
	})
}

// HealthHandler reports the service is up.
func HealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(healthBody)
	})
}
