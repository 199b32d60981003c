package cache

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/evmarket/payment-service/internal/config"
)

// Connect builds a Redis client from REDIS_URL (redis:// or rediss://).
// No connection is opened until the first command.
func Connect(cfg *config.Config) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	opts.DialTimeout = cfg.ProbeTimeout
	opts.ReadTimeout = cfg.ProbeTimeout

	return redis.NewClient(opts), nil
}
