package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/notion"
)

// IncomeRepository persists income records in the document store.
type IncomeRepository struct {
	store      RecordStore
	resolver   *SchemaResolver
	labels     *LabelResolver
	databaseID string
}

// NewIncomeRepository creates a new income repository.
func NewIncomeRepository(store RecordStore, resolver *SchemaResolver, labels *LabelResolver, databaseID string) *IncomeRepository {
	return &IncomeRepository{
		store:      store,
		resolver:   resolver,
		labels:     labels,
		databaseID: databaseID,
	}
}

// Create writes a new income record.
func (r *IncomeRepository) Create(ctx context.Context, income *entity.Income) (*entity.Income, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	page, err := r.store.CreatePage(ctx, r.databaseID, incomeWriteProperties(income, fields))
	if err != nil {
		return nil, err
	}
	return r.fromPage(ctx, page, fields), nil
}

// List retrieves all non-archived income records, newest first.
func (r *IncomeRepository) List(ctx context.Context) ([]*entity.Income, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	pages, err := listAll(ctx, r.store, r.databaseID)
	if err != nil {
		return nil, err
	}

	records := make([]*entity.Income, 0, len(pages))
	for i := range pages {
		records = append(records, r.fromPage(ctx, &pages[i], fields))
	}
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].OccurredAt.After(records[j].OccurredAt)
	})
	return records, nil
}

// FindByID retrieves one income record by id, archived or not.
func (r *IncomeRepository) FindByID(ctx context.Context, id string) (*entity.Income, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	page, err := r.store.RetrievePage(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.fromPage(ctx, page, fields), nil
}

// Update replaces the editable fields of an existing income record.
func (r *IncomeRepository) Update(ctx context.Context, income *entity.Income) (*entity.Income, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	page, err := r.store.UpdatePage(ctx, income.ID, incomeWriteProperties(income, fields))
	if err != nil {
		return nil, err
	}
	return r.fromPage(ctx, page, fields), nil
}

// Archive soft-deletes an income record.
func (r *IncomeRepository) Archive(ctx context.Context, id string) error {
	return r.store.ArchivePage(ctx, id)
}

// fromPage normalizes a raw page and resolves its source label.
func (r *IncomeRepository) fromPage(ctx context.Context, page *notion.Page, fields FieldMap) *entity.Income {
	income := normalizeIncome(page, fields, time.Now())
	if income.Source == "" && income.SourceID != "" {
		income.Source = r.labels.Lookup(ctx, income.SourceID)
	}
	if income.Source == "" {
		income.Source = entity.DefaultSourceName
	}
	return income
}

var _ adapter.IncomeRepository = (*IncomeRepository)(nil)
