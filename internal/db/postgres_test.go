package db_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evmarket/payment-service/internal/config"
	"github.com/evmarket/payment-service/internal/db"
)

func TestConnect_IsLazy(t *testing.T) {
	cfg := &config.Config{
		DatabaseURL: "postgres://payments@127.0.0.1:1/payments",
		DBMaxConns:  3,
	}

	pool, err := db.Connect(context.Background(), cfg)
	require.NoError(t, err, "an unreachable database must not fail pool construction")
	defer pool.Close()

	assert.Equal(t, int32(3), pool.Config().MaxConns)
}

func TestConnect_InvalidURL(t *testing.T) {
	_, err := db.Connect(context.Background(), &config.Config{DatabaseURL: "postgres://payments@localhost:notaport/payments", DBMaxConns: 1})
	assert.Error(t, err)
}
