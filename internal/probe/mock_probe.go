package probe

import (
	"context"
	"sync/atomic"
	"time"
)

// MockProbe is a hand-written Probe used in unit tests.
// Set Err to simulate an unreachable dependency and Delay to simulate a slow one.
type MockProbe struct {
	ProbeName string
	Err       error
	Delay     time.Duration

	calls atomic.Int64
}

func NewMockProbe(name string) *MockProbe {
	return &MockProbe{ProbeName: name}
}

func (m *MockProbe) Name() string { return m.ProbeName }

func (m *MockProbe) Ping(ctx context.Context) error {
	m.calls.Add(1)
	if m.Delay > 0 {
		select {
		case <-time.After(m.Delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return m.Err
}

// Calls returns how many times Ping was invoked.
func (m *MockProbe) Calls() int64 { return m.calls.Load() }
