package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// insightsKey is the single Redis slot holding the serialized summary.
const insightsKey = "duitku:insights"

// RedisInsightsCache stores the insights summary in Redis so multiple
// instances share one slot. Cache failures are logged and treated as
// misses; the cache is a latency optimization and must never fail a
// request.
type RedisInsightsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisInsightsCache creates a Redis-backed insights cache.
func NewRedisInsightsCache(client *redis.Client, ttl time.Duration) *RedisInsightsCache {
	return &RedisInsightsCache{client: client, ttl: ttl}
}

// Get returns the cached summary when the slot exists and decodes.
func (c *RedisInsightsCache) Get(ctx context.Context) (*entity.InsightsSummary, bool) {
	data, err := c.client.Get(ctx, insightsKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("insights cache read failed", "error", err)
		}
		return nil, false
	}
	var summary entity.InsightsSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		slog.Warn("insights cache entry corrupt, discarding", "error", err)
		return nil, false
	}
	return &summary, true
}

// Set stores a freshly computed summary with the configured TTL.
func (c *RedisInsightsCache) Set(ctx context.Context, summary *entity.InsightsSummary) {
	data, err := json.Marshal(summary)
	if err != nil {
		slog.Warn("insights cache encode failed", "error", err)
		return
	}
	if err := c.client.Set(ctx, insightsKey, data, c.ttl).Err(); err != nil {
		slog.Warn("insights cache write failed", "error", err)
	}
}

// Invalidate deletes the slot.
func (c *RedisInsightsCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, insightsKey).Err(); err != nil {
		slog.Warn("insights cache invalidation failed", "error", err)
	}
}

var _ adapter.InsightsCache = (*RedisInsightsCache)(nil)
