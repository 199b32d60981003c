package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/evmarket/payment-service/internal/api/handler"
	apimw "github.com/evmarket/payment-service/internal/api/middleware"
	"github.com/evmarket/payment-service/internal/metrics"
	"github.com/evmarket/payment-service/internal/ratelimiter"
	"github.com/evmarket/payment-service/internal/service"
)

// NewRouter wires the chi router, attaches all middleware, and registers
// every route. It is the single source of truth for the HTTP surface area.
func NewRouter(
	svc *service.HealthService,
	m *metrics.Metrics,
	reg prometheus.Gatherer,
	limiter *ratelimiter.KeyLimiters,
	trustProxy bool,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// --- global middleware (applied to every route) ---
	r.Use(chimw.Recoverer) // recover panics, return 500
	if trustProxy {
		// X-Forwarded-For / X-Real-IP are client-controlled unless a proxy
		// in front of us overwrites them.
		r.Use(chimw.RealIP)
	}
	r.Use(chimw.RequestSize(1<<10)) // no endpoint accepts a body
	r.Use(apimw.CorrelationID)      // X-Correlation-ID inject / echo
	r.Use(apimw.RequestLogger(logger))
	r.Use(apimw.Instrument(m.HTTPHook()))

	// --- handler instances ---
	hh := handler.NewHealthHandler(svc, logger)
	mh := handler.NewMetricsHandler(svc, m)

	// Raw Prometheus scrape endpoint; never rate limited.
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Route("/api/health", func(r chi.Router) {
		// Liveness and info always answer 200.
		r.Get("/ping", hh.Ping)
		r.Get("/info", hh.Info)

		// These touch dependencies or gather the registry.
		r.Group(func(r chi.Router) {
			if limiter.Enabled() {
				r.Use(apimw.RateLimit(limiter))
			}
			r.Get("/ready", hh.Ready)
			r.Get("/stats", mh.GetStats)
		})
	})

	return r
}
