package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmarket/payment-service/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_PORT", "ENVIRONMENT", "DATABASE_URL", "REDIS_URL",
		"PROBE_TIMEOUT", "PROBE_INTERVAL", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
		"TRUST_PROXY_HEADERS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisURL)
	assert.Equal(t, 2*time.Second, cfg.ProbeTimeout)
	assert.Equal(t, 15*time.Second, cfg.ProbeInterval)
	assert.Equal(t, 50.0, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst)
	assert.False(t, cfg.TrustProxyHeaders)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("DATABASE_URL", "postgres://payments@localhost:5432/payments")
	t.Setenv("PROBE_TIMEOUT", "500ms")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("TRUST_PROXY_HEADERS", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://payments@localhost:5432/payments", cfg.DatabaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.ProbeTimeout)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 100, cfg.RateLimitBurst, "unparsable values fall back to the default")
	assert.True(t, cfg.TrustProxyHeaders)
}

func TestLoad_RejectsNegativeRateLimit(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "-1")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Config{ProbeTimeout: time.Second, ProbeInterval: time.Second}
	require.NoError(t, valid.Validate())

	t.Run("zero probe timeout", func(t *testing.T) {
		c := valid
		c.ProbeTimeout = 0
		assert.Error(t, c.Validate())
	})

	t.Run("negative burst", func(t *testing.T) {
		c := valid
		c.RateLimitBurst = -5
		assert.Error(t, c.Validate())
	})

	t.Run("rate limiting disabled is valid", func(t *testing.T) {
		c := valid
		c.RateLimitRPS = 0
		c.RateLimitBurst = 0
		assert.NoError(t, c.Validate())
	})
}
