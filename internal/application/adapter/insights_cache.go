package adapter

import (
	"context"

	"github.com/duitku/backend/internal/domain/entity"
)

// InsightsCache holds the most recent insights summary for a short window
// to bound upstream list queries. Caching is a latency optimization only: a
// hit must be structurally identical to a fresh computation. Concurrent
// recomputations may race; last writer wins.
type InsightsCache interface {
	// Get returns the cached summary, or false when the slot is empty or
	// stale.
	Get(ctx context.Context) (*entity.InsightsSummary, bool)

	// Set stores a freshly computed summary.
	Set(ctx context.Context, summary *entity.InsightsSummary)

	// Invalidate empties the slot. Called after every mutating operation.
	Invalidate(ctx context.Context)
}
