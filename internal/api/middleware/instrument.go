package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// ObserveFunc records one completed request. route is the chi route
// pattern ("/api/health/ping"), never the raw path, to bound label cardinality.
type ObserveFunc func(route, method string, status int, latency time.Duration)

const unmatchedRoute = "unmatched"

// Instrument reports every request to observe once the handler returns.
func Instrument(observe ObserveFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			observe(routePattern(r), r.Method, wrapped.status, time.Since(start))
		})
	}
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return unmatchedRoute
	}
	if p := rctx.RoutePattern(); p != "" {
		return p
	}
	return unmatchedRoute
}
