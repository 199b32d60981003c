package probe

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresProbe struct {
	pool *pgxpool.Pool
}

// NewPostgresProbe returns a Probe that pings the PostgreSQL pool.
func NewPostgresProbe(pool *pgxpool.Pool) Probe {
	return &postgresProbe{pool: pool}
}

func (p *postgresProbe) Name() string { return "postgres" }

func (p *postgresProbe) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping postgres: %w", err)
	}
	return nil
}
