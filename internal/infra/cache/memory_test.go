package cache

import (
	"context"
	"testing"
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

func TestMemoryInsightsCache(t *testing.T) {
	summary := &entity.InsightsSummary{NetFlow: 1500000}

	t.Run("empty cache misses", func(t *testing.T) {
		cache := NewMemoryInsightsCache(time.Minute)

		if _, ok := cache.Get(context.Background()); ok {
			t.Error("expected miss on empty cache")
		}
	})

	t.Run("set then get returns the summary", func(t *testing.T) {
		cache := NewMemoryInsightsCache(time.Minute)
		cache.Set(context.Background(), summary)

		got, ok := cache.Get(context.Background())
		if !ok {
			t.Fatal("expected hit")
		}
		if got.NetFlow != 1500000 {
			t.Errorf("expected 1500000, got %d", got.NetFlow)
		}
	})

	t.Run("expired entry misses", func(t *testing.T) {
		cache := NewMemoryInsightsCache(10 * time.Millisecond)
		cache.Set(context.Background(), summary)

		time.Sleep(25 * time.Millisecond)

		if _, ok := cache.Get(context.Background()); ok {
			t.Error("expected miss after TTL")
		}
	})

	t.Run("invalidate empties the slot", func(t *testing.T) {
		cache := NewMemoryInsightsCache(time.Minute)
		cache.Set(context.Background(), summary)
		cache.Invalidate(context.Background())

		if _, ok := cache.Get(context.Background()); ok {
			t.Error("expected miss after invalidation")
		}
	})

	t.Run("last writer wins", func(t *testing.T) {
		cache := NewMemoryInsightsCache(time.Minute)
		cache.Set(context.Background(), &entity.InsightsSummary{NetFlow: 1})
		cache.Set(context.Background(), &entity.InsightsSummary{NetFlow: 2})

		got, ok := cache.Get(context.Background())
		if !ok {
			t.Fatal("expected hit")
		}
		if got.NetFlow != 2 {
			t.Errorf("expected 2, got %d", got.NetFlow)
		}
	})
}
