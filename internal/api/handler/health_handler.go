package handler

import (
	"net/http"

	"go.uber.org/zap"

	apimw "github.com/evmarket/payment-service/internal/api/middleware"
	"github.com/evmarket/payment-service/internal/service"
)

// HealthHandler serves the /api/health endpoints.
type HealthHandler struct {
	svc    *service.HealthService
	logger *zap.Logger
}

func NewHealthHandler(svc *service.HealthService, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{svc: svc, logger: logger}
}

// Ping handles GET /api/health/ping
//
// @Summary  Liveness probe
// @Tags     health
// @Produce  json
// @Success  200  {object}  domain.LivenessStatus
// @Router   /api/health/ping [get]
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Liveness())
}

// Info handles GET /api/health/info
//
// @Summary  Service identity and related endpoint paths
// @Tags     health
// @Produce  json
// @Success  200  {object}  domain.ServiceInfo
// @Router   /api/health/info [get]
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.svc.Info())
}

// Ready handles GET /api/health/ready
//
// @Summary  Readiness probe (PostgreSQL, Redis)
// @Tags     health
// @Produce  json
// @Success  200  {object}  domain.ReadinessReport
// @Failure  503  {object}  domain.ReadinessReport
// @Router   /api/health/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Readiness(r.Context())
	if err != nil {
		h.logger.Warn("readiness check failed",
			zap.String("correlation_id", apimw.GetCorrelationID(r.Context())),
			zap.Error(err),
		)
		respondJSON(w, statusFor(err), report)
		return
	}
	respondJSON(w, http.StatusOK, report)
}
