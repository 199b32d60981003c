package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/evmarket/payment-service/internal/domain"
)

const requestsTotalName = "http_requests_total"

// Metrics groups all Prometheus instruments used across the application.
// Registered once at startup via New(); passed by pointer wherever needed.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	DependencyUp    *prometheus.GaugeVec
	ServiceInfo     *prometheus.GaugeVec

	gatherer prometheus.Gatherer
}

// New registers all instruments with the given registry and returns the
// populated Metrics struct.
// Using a custom registry (instead of prometheus.DefaultRegisterer) keeps
// tests isolated and avoids global state.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: requestsTotalName,
			Help: "Total number of HTTP requests served.",
		}, []string{"route", "method", "status"}),

		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),

		DependencyUp: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "dependency_up",
			Help: "1 if the last readiness probe of the dependency succeeded, else 0.",
		}, []string{"dependency"}),

		ServiceInfo: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "service_info",
			Help: "Static service identity; always 1.",
		}, []string{"service", "version"}),

		gatherer: reg,
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.DependencyUp,
		m.ServiceInfo,
	)

	m.ServiceInfo.WithLabelValues(domain.ServiceName, domain.ServiceVersion).Set(1)

	return m
}

// HTTPHook returns the observation callback expected by middleware.Instrument.
// Centralises the prometheus calls so the middleware package stays import-free.
func (m *Metrics) HTTPHook() func(route, method string, status int, latency time.Duration) {
	return func(route, method string, status int, latency time.Duration) {
		m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(route, method).Observe(latency.Seconds())
	}
}

// ProbeHook returns the callback expected by worker.ProbeWorker.
func (m *Metrics) ProbeHook() func(dependency string, up bool) {
	return func(dependency string, up bool) {
		v := 0.0
		if up {
			v = 1
		}
		m.DependencyUp.WithLabelValues(dependency).Set(v)
	}
}

// RequestCounts reads http_requests_total back from the registry and sums it
// per route pattern across methods and status codes.
func (m *Metrics) RequestCounts() (map[string]int64, error) {
	families, err := m.gatherer.Gather()
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, mf := range families {
		if mf.GetName() != requestsTotalName {
			continue
		}
		for _, metric := range mf.GetMetric() {
			counts[routeLabel(metric)] += int64(metric.GetCounter().GetValue())
		}
	}
	return counts, nil
}

func routeLabel(metric *dto.Metric) string {
	for _, lp := range metric.GetLabel() {
		if lp.GetName() == "route" {
			return lp.GetValue()
		}
	}
	return ""
}
