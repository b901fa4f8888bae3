// Package persistence implements the document-store-backed repositories:
// schema resolution, record normalization, and write mapping between domain
// entities and the store's property bags.
package persistence

import (
	"context"

	"github.com/duitku/backend/internal/integration/notion"
)

// RecordStore is the slice of the document store client the repositories
// consume. *notion.Client satisfies it; tests substitute fakes.
type RecordStore interface {
	CreatePage(ctx context.Context, databaseID string, properties map[string]notion.Property) (*notion.Page, error)
	QueryDatabase(ctx context.Context, databaseID string, req notion.QueryRequest) (*notion.QueryResult, error)
	RetrievePage(ctx context.Context, pageID string) (*notion.Page, error)
	UpdatePage(ctx context.Context, pageID string, properties map[string]notion.Property) (*notion.Page, error)
	ArchivePage(ctx context.Context, pageID string) error
	RetrieveDatabase(ctx context.Context, databaseID string) (*notion.Database, error)
}

var _ RecordStore = (*notion.Client)(nil)

// listAll drains a database query, accumulating every page until the store
// reports no more results. Archived pages never appear in query results.
func listAll(ctx context.Context, store RecordStore, databaseID string) ([]notion.Page, error) {
	var pages []notion.Page
	req := notion.QueryRequest{
		Sorts:    []notion.Sort{{Timestamp: "created_time", Direction: "descending"}},
		PageSize: 100,
	}
	for {
		result, err := store.QueryDatabase(ctx, databaseID, req)
		if err != nil {
			return nil, err
		}
		pages = append(pages, result.Results...)
		if !result.HasMore || result.NextCursor == nil {
			return pages, nil
		}
		req.StartCursor = *result.NextCursor
	}
}
