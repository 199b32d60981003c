package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/evmarket/payment-service/internal/domain"
)

// ReadinessChecker is the part of service.HealthService the worker needs.
type ReadinessChecker interface {
	Readiness(ctx context.Context) (domain.ReadinessReport, error)
}

// ProbeWorker periodically runs the readiness probes so dependency state is
// visible in metrics and logs even when nobody calls /api/health/ready.
type ProbeWorker struct {
	checker  ReadinessChecker
	interval time.Duration
	onResult func(dependency string, up bool)
	logger   *zap.Logger

	last map[string]domain.DependencyState
}

func NewProbeWorker(
	checker ReadinessChecker,
	interval time.Duration,
	onResult func(dependency string, up bool),
	logger *zap.Logger,
) *ProbeWorker {
	return &ProbeWorker{
		checker:  checker,
		interval: interval,
		onResult: onResult,
		logger:   logger,
		last:     make(map[string]domain.DependencyState),
	}
}

// Run probes once immediately, then every interval.
// Stops cleanly when ctx is cancelled.
func (pw *ProbeWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(pw.interval)
	defer ticker.Stop()

	pw.logger.Info("probe worker started", zap.Duration("interval", pw.interval))
	pw.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			pw.logger.Info("probe worker stopping")
			return
		case <-ticker.C:
			pw.poll(ctx)
		}
	}
}

func (pw *ProbeWorker) poll(ctx context.Context) {
	report, _ := pw.checker.Readiness(ctx)
	if ctx.Err() != nil {
		return
	}

	for name, dep := range report.Dependencies {
		pw.onResult(name, dep.Status == domain.DependencyUp)

		prev, seen := pw.last[name]
		pw.last[name] = dep.Status
		if seen && prev == dep.Status {
			continue
		}

		if dep.Status == domain.DependencyUp {
			pw.logger.Info("dependency up", zap.String("dependency", name))
		} else {
			pw.logger.Warn("dependency down",
				zap.String("dependency", name),
				zap.String("error", dep.Error),
			)
		}
	}
}
