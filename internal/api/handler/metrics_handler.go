package handler

import (
	"net/http"

	"github.com/evmarket/payment-service/internal/domain"
	"github.com/evmarket/payment-service/internal/service"
)

// RequestCounter reads per-route request totals; *metrics.Metrics satisfies it.
type RequestCounter interface {
	RequestCounts() (map[string]int64, error)
}

// MetricsHandler serves a human-readable JSON stats snapshot.
// Raw Prometheus metrics (counters, histograms) are available at /metrics
// via promhttp.Handler and are separate from this endpoint.
type MetricsHandler struct {
	svc     *service.HealthService
	counter RequestCounter
}

func NewMetricsHandler(svc *service.HealthService, counter RequestCounter) *MetricsHandler {
	return &MetricsHandler{svc: svc, counter: counter}
}

// GetStats handles GET /api/health/stats
//
// @Summary  Uptime and per-route request totals
// @Tags     health
// @Produce  json
// @Success  200  {object}  domain.StatsSnapshot
// @Failure  500  {object}  map[string]string
// @Router   /api/health/stats [get]
func (h *MetricsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.counter.RequestCounts()
	if err != nil {
		mapError(w, err)
		return
	}

	info := h.svc.Info()
	respondJSON(w, http.StatusOK, domain.StatsSnapshot{
		Service:       info.Service,
		Version:       info.Version,
		UptimeSeconds: int64(h.svc.Uptime().Seconds()),
		Requests:      counts,
	})
}
