// Package mongo holds the MongoDB repositories backing the booking
// collections, plus the connection helper they share.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository operation in this package.
const defaultTimeout = 10 * time.Second

// Config selects the MongoDB deployment and database. Timeout bounds the
// initial connect + ping only; zero means defaultTimeout.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect dials the deployment and pings it before handing anything back,
// so a bad URI fails at startup instead of on the first query. The caller
// owns the client and must Disconnect it on shutdown.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
