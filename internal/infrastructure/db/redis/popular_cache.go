package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/martialverse/booking-api/internal/core/domain"
	"github.com/martialverse/booking-api/internal/core/ports"
)

const (
	popularTTL       = 30 * time.Second
	popularKeyPrefix = "popular:"
)

// PopularCache caches popular-listing results in Redis as JSON.
// Key format: popular:<status>:<instructor_email>:<limit>
// Strictly best-effort: every failure is logged and swallowed so the
// store stays the source of truth.
type PopularCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewPopularCache creates a PopularCache wrapping the given Redis client.
func NewPopularCache(client *redis.Client, log zerolog.Logger) *PopularCache {
	return &PopularCache{client: client, log: log}
}

// Get returns the cached listing for filter, if present.
func (c *PopularCache) Get(ctx context.Context, filter ports.PopularFilter) ([]*domain.Class, bool) {
	raw, err := c.client.Get(ctx, c.key(filter)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("popular cache read failed")
		}
		return nil, false
	}

	var classes []*domain.Class
	if err := json.Unmarshal(raw, &classes); err != nil {
		c.log.Warn().Err(err).Msg("popular cache payload corrupt")
		return nil, false
	}
	return classes, true
}

// Set stores the listing for filter (expires after popularTTL).
func (c *PopularCache) Set(ctx context.Context, filter ports.PopularFilter, classes []*domain.Class) {
	raw, err := json.Marshal(classes)
	if err != nil {
		c.log.Warn().Err(err).Msg("popular cache encode failed")
		return
	}
	if err := c.client.Set(ctx, c.key(filter), raw, popularTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("popular cache write failed")
	}
}

// Invalidate drops every cached popular listing. Called on any class mutation.
func (c *PopularCache) Invalidate(ctx context.Context) {
	iter := c.client.Scan(ctx, 0, popularKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.log.Warn().Err(err).Msg("popular cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("popular cache invalidation failed")
	}
}

func (c *PopularCache) key(filter ports.PopularFilter) string {
	return fmt.Sprintf("%s%s:%s:%d", popularKeyPrefix, filter.Status, filter.InstructorEmail, filter.Limit)
}
