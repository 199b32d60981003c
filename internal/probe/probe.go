package probe

import "context"

// Probe checks that one infrastructure dependency is reachable.
// The pgx and go-redis implementations live next to this file.
// Tests use a hand-written mock (mock_probe.go).
type Probe interface {
	Name() string
	Ping(ctx context.Context) error
}
