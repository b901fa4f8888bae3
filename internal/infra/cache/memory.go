// Package cache provides the insights cache implementations: an in-process
// single slot and a Redis-backed variant for multi-instance deployments.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// MemoryInsightsCache is a single cached slot with a timestamp and TTL.
// Readers check staleness; writers overwrite unconditionally, so a lost
// race between concurrent recomputations costs one extra upstream fetch
// and nothing else.
type MemoryInsightsCache struct {
	mu       sync.RWMutex
	value    *entity.InsightsSummary
	storedAt time.Time
	ttl      time.Duration
}

// NewMemoryInsightsCache creates an in-process insights cache with the
// given TTL.
func NewMemoryInsightsCache(ttl time.Duration) *MemoryInsightsCache {
	return &MemoryInsightsCache{ttl: ttl}
}

// Get returns the cached summary when the slot is fresh.
func (c *MemoryInsightsCache) Get(_ context.Context) (*entity.InsightsSummary, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.value == nil || time.Since(c.storedAt) > c.ttl {
		return nil, false
	}
	return c.value, true
}

// Set stores a freshly computed summary. Last writer wins.
func (c *MemoryInsightsCache) Set(_ context.Context, summary *entity.InsightsSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = summary
	c.storedAt = time.Now()
}

// Invalidate empties the slot.
func (c *MemoryInsightsCache) Invalidate(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = nil
}

var _ adapter.InsightsCache = (*MemoryInsightsCache)(nil)
