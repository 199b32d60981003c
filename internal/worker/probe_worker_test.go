package worker_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/evmarket/payment-service/internal/probe"
	"github.com/evmarket/payment-service/internal/service"
	"github.com/evmarket/payment-service/internal/worker"
)

type results struct {
	mu   sync.Mutex
	seen map[string][]bool
}

func (r *results) record(dep string, up bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen[dep] = append(r.seen[dep], up)
}

func (r *results) get(dep string) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]bool(nil), r.seen[dep]...)
}

func TestProbeWorker_ReportsAndStops(t *testing.T) {
	pg, rd := probe.NewMockProbe("postgres"), probe.NewMockProbe("redis")
	rd.Err = errors.New("connection refused")
	svc := service.NewHealthService(50*time.Millisecond, zap.NewNop(), service.WithProbes(pg, rd))

	res := &results{seen: make(map[string][]bool)}
	core, logs := observer.New(zap.InfoLevel)
	pw := worker.NewProbeWorker(svc, 10*time.Millisecond, res.record, zap.New(core))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pw.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(res.get("postgres")) >= 3 && len(res.get("redis")) >= 3
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("probe worker did not stop after context cancellation")
	}

	for _, up := range res.get("postgres") {
		assert.True(t, up)
	}
	for _, up := range res.get("redis") {
		assert.False(t, up)
	}

	// Transitions are logged once, not on every tick.
	assert.Equal(t, 1, logs.FilterMessage("dependency down").Len())
	assert.Equal(t, 1, logs.FilterMessage("dependency up").Len())
}
