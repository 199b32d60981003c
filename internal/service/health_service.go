package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/evmarket/payment-service/internal/domain"
	"github.com/evmarket/payment-service/internal/probe"
)

// HealthService answers the liveness, info and readiness queries.
// Liveness and info are pure apart from the clock read; readiness pings
// every configured dependency probe.
type HealthService struct {
	probes       []probe.Probe
	probeTimeout time.Duration
	now          func() time.Time
	startedAt    time.Time
	logger       *zap.Logger
}

// Option customises a HealthService.
type Option func(*HealthService)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *HealthService) { s.now = now }
}

// WithProbes registers dependency probes consulted by Readiness.
func WithProbes(probes ...probe.Probe) Option {
	return func(s *HealthService) { s.probes = append(s.probes, probes...) }
}

func NewHealthService(probeTimeout time.Duration, logger *zap.Logger, opts ...Option) *HealthService {
	s := &HealthService{
		probeTimeout: probeTimeout,
		now:          time.Now,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.startedAt = s.now()
	return s
}

// Liveness returns the ping payload stamped with the current time.
func (s *HealthService) Liveness() domain.LivenessStatus {
	return domain.NewLivenessStatus(s.now())
}

// Info returns the static service description.
func (s *HealthService) Info() domain.ServiceInfo {
	return domain.NewServiceInfo()
}

// Uptime returns how long ago the service was constructed.
func (s *HealthService) Uptime() time.Duration {
	return s.now().Sub(s.startedAt)
}

// Readiness pings every probe concurrently, each bounded by the probe
// timeout. The report is always populated; the error wraps
// domain.ErrNotReady when at least one dependency is down.
func (s *HealthService) Readiness(ctx context.Context) (domain.ReadinessReport, error) {
	report := domain.ReadinessReport{
		Status:       domain.ReadinessReady,
		Service:      domain.ServiceName,
		Dependencies: make(map[string]domain.DependencyStatus, len(s.probes)),
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, p := range s.probes {
		wg.Add(1)
		go func(p probe.Probe) {
			defer wg.Done()
			status := s.check(ctx, p)

			mu.Lock()
			report.Dependencies[p.Name()] = status
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	report.Timestamp = s.now().UTC()

	if !report.Ready() {
		report.Status = domain.ReadinessNotReady
		var down []string
		for name, d := range report.Dependencies {
			if d.Status == domain.DependencyDown {
				down = append(down, name)
			}
		}
		sort.Strings(down)
		return report, fmt.Errorf("%w: %v", domain.ErrNotReady, down)
	}
	return report, nil
}

func (s *HealthService) check(ctx context.Context, p probe.Probe) domain.DependencyStatus {
	ctx, cancel := context.WithTimeout(ctx, s.probeTimeout)
	defer cancel()

	start := time.Now()
	err := p.Ping(ctx)
	latency := time.Since(start)

	status := domain.DependencyStatus{
		Status:    domain.DependencyUp,
		LatencyMS: latency.Milliseconds(),
	}
	if err != nil {
		status.Status = domain.DependencyDown
		status.Error = err.Error()
		s.logger.Debug("dependency probe failed",
			zap.String("dependency", p.Name()),
			zap.Duration("latency", latency),
			zap.Error(err),
		)
	}
	return status
}
