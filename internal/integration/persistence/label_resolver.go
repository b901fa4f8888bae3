package persistence

import (
	"context"
	"log/slog"
	"sync"
)

// LabelResolver resolves relation page ids to display labels (category and
// source names). Labels are cached for the life of the process; a failed
// lookup returns "" and is not cached, so the caller falls back to its
// default label and a later request can recover.
type LabelResolver struct {
	store RecordStore

	mu    sync.RWMutex
	cache map[string]string
}

// NewLabelResolver creates a new label resolver backed by the given store.
func NewLabelResolver(store RecordStore) *LabelResolver {
	return &LabelResolver{
		store: store,
		cache: make(map[string]string),
	}
}

// Lookup returns the title of the referenced page, or "" when it cannot be
// resolved.
func (r *LabelResolver) Lookup(ctx context.Context, pageID string) string {
	if pageID == "" {
		return ""
	}

	r.mu.RLock()
	cached, ok := r.cache[pageID]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	page, err := r.store.RetrievePage(ctx, pageID)
	if err != nil {
		slog.Warn("label lookup failed", "page_id", pageID, "error", err)
		return ""
	}
	label := titleOf(page)

	r.mu.Lock()
	r.cache[pageID] = label
	r.mu.Unlock()

	return label
}
