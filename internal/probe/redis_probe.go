package probe

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisProbe struct {
	client *redis.Client
}

// NewRedisProbe returns a Probe that issues PING against the Redis client.
func NewRedisProbe(client *redis.Client) Probe {
	return &redisProbe{client: client}
}

func (p *redisProbe) Name() string { return "redis" }

func (p *redisProbe) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}
