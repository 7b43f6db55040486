// Package redis provides the Redis client used for the popular-listing
// cache. The cache is advisory; losing Redis degrades reads, never writes.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultPingTimeout bounds the startup connectivity check.
const defaultPingTimeout = 5 * time.Second

// Config selects the Redis instance. Timeout bounds the startup ping only;
// zero means defaultPingTimeout.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect builds a client and verifies it answers a ping, so a wrong
// address surfaces at startup. The caller must Close the client on shutdown.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}
