package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmarket/payment-service/internal/domain"
)

func TestNewLivenessStatus(t *testing.T) {
	t.Run("fixed fields", func(t *testing.T) {
		s := domain.NewLivenessStatus(time.Now())
		assert.Equal(t, "OK", s.Status)
		assert.Equal(t, "Payment Service", s.Service)
		assert.Equal(t, "Payment Service is running", s.Message)
	})

	t.Run("timestamp converted to UTC", func(t *testing.T) {
		loc := time.FixedZone("UTC+7", 7*60*60)
		now := time.Date(2026, 10, 16, 16, 30, 0, 0, loc)

		s := domain.NewLivenessStatus(now)
		assert.Equal(t, time.UTC, s.Timestamp.Location())
		assert.True(t, s.Timestamp.Equal(now))
	})

	t.Run("timestamp encodes as RFC 3339 with Z suffix", func(t *testing.T) {
		now := time.Date(2026, 10, 16, 9, 12, 44, 123456789, time.UTC)
		raw, err := json.Marshal(domain.NewLivenessStatus(now))
		require.NoError(t, err)

		var body map[string]string
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "2026-10-16T09:12:44.123456789Z", body["timestamp"])

		parsed, err := time.Parse(time.RFC3339Nano, body["timestamp"])
		require.NoError(t, err)
		assert.True(t, parsed.Equal(now))
	})
}

func TestNewServiceInfo(t *testing.T) {
	info := domain.NewServiceInfo()

	assert.Equal(t, "Payment Service", info.Service)
	assert.Equal(t, "1.0.0", info.Version)
	assert.Contains(t, info.Description, "Payment and Transaction Service for EV Data Analytics Marketplace")

	t.Run("endpoints encode with exactly five keys", func(t *testing.T) {
		raw, err := json.Marshal(info.Endpoints)
		require.NoError(t, err)

		var endpoints map[string]string
		require.NoError(t, json.Unmarshal(raw, &endpoints))
		assert.Equal(t, map[string]string{
			"transactions":   "/api/transactions",
			"paymentMethods": "/api/payment-methods",
			"refunds":        "/api/refunds",
			"revenue":        "/api/revenue",
			"admin":          "/api/admin/payment",
		}, endpoints)
	})

	t.Run("callers get an independent copy", func(t *testing.T) {
		mutated := domain.NewServiceInfo()
		mutated.Endpoints.Admin = "/tampered"

		assert.Equal(t, "/api/admin/payment", domain.NewServiceInfo().Endpoints.Admin)
	})
}

func TestReadinessReport_Ready(t *testing.T) {
	tests := []struct {
		name string
		deps map[string]domain.DependencyStatus
		want bool
	}{
		{"no dependencies", nil, true},
		{"all up", map[string]domain.DependencyStatus{
			"postgres": {Status: domain.DependencyUp},
			"redis":    {Status: domain.DependencyUp},
		}, true},
		{"one down", map[string]domain.DependencyStatus{
			"postgres": {Status: domain.DependencyUp},
			"redis":    {Status: domain.DependencyDown},
		}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := domain.ReadinessReport{Dependencies: tc.deps}
			assert.Equal(t, tc.want, r.Ready())
		})
	}
}
