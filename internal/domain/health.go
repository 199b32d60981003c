package domain

import "time"

const (
	ServiceName        = "Payment Service"
	ServiceVersion     = "1.0.0"
	ServiceDescription = "Payment and Transaction Service for EV Data Analytics Marketplace"

	StatusOK        = "OK"
	LivenessMessage = ServiceName + " is running"
)

// LivenessStatus is the body of GET /api/health/ping.
// Timestamp is always UTC and encodes as RFC 3339 with nanoseconds.
type LivenessStatus struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
	Message   string    `json:"message"`
}

// NewLivenessStatus builds a liveness payload stamped with now.
func NewLivenessStatus(now time.Time) LivenessStatus {
	return LivenessStatus{
		Status:    StatusOK,
		Service:   ServiceName,
		Timestamp: now.UTC(),
		Message:   LivenessMessage,
	}
}

// Endpoints lists the paths of the sibling payment resources.
// The service does not serve them; they are advertised for discovery only.
type Endpoints struct {
	Transactions   string `json:"transactions"`
	PaymentMethods string `json:"paymentMethods"`
	Refunds        string `json:"refunds"`
	Revenue        string `json:"revenue"`
	Admin          string `json:"admin"`
}

// ServiceInfo is the body of GET /api/health/info.
type ServiceInfo struct {
	Service     string    `json:"service"`
	Version     string    `json:"version"`
	Description string    `json:"description"`
	Endpoints   Endpoints `json:"endpoints"`
}

var serviceInfo = ServiceInfo{
	Service:     ServiceName,
	Version:     ServiceVersion,
	Description: ServiceDescription,
	Endpoints: Endpoints{
		Transactions:   "/api/transactions",
		PaymentMethods: "/api/payment-methods",
		Refunds:        "/api/refunds",
		Revenue:        "/api/revenue",
		Admin:          "/api/admin/payment",
	},
}

// NewServiceInfo returns a copy of the static service description.
func NewServiceInfo() ServiceInfo { return serviceInfo }

// DependencyState is the outcome of a single readiness probe.
type DependencyState string

const (
	DependencyUp   DependencyState = "UP"
	DependencyDown DependencyState = "DOWN"
)

const (
	ReadinessReady    = "READY"
	ReadinessNotReady = "NOT_READY"
)

// DependencyStatus reports one infrastructure dependency.
type DependencyStatus struct {
	Status    DependencyState `json:"status"`
	LatencyMS int64           `json:"latencyMs"`
	Error     string          `json:"error,omitempty"`
}

// ReadinessReport is the body of GET /api/health/ready.
type ReadinessReport struct {
	Status       string                      `json:"status"`
	Service      string                      `json:"service"`
	Timestamp    time.Time                   `json:"timestamp"`
	Dependencies map[string]DependencyStatus `json:"dependencies"`
}

// Ready reports whether every dependency answered.
func (r ReadinessReport) Ready() bool {
	for _, d := range r.Dependencies {
		if d.Status != DependencyUp {
			return false
		}
	}
	return true
}

// StatsSnapshot is the body of GET /api/health/stats.
type StatsSnapshot struct {
	Service       string           `json:"service"`
	Version       string           `json:"version"`
	UptimeSeconds int64            `json:"uptimeSeconds"`
	Requests      map[string]int64 `json:"requests"`
}
