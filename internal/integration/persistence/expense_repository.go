package persistence

import (
	"context"
	"sort"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/notion"
)

// ExpenseRepository persists expenses in the document store.
type ExpenseRepository struct {
	store      RecordStore
	resolver   *SchemaResolver
	labels     *LabelResolver
	databaseID string
}

// NewExpenseRepository creates a new expense repository.
func NewExpenseRepository(store RecordStore, resolver *SchemaResolver, labels *LabelResolver, databaseID string) *ExpenseRepository {
	return &ExpenseRepository{
		store:      store,
		resolver:   resolver,
		labels:     labels,
		databaseID: databaseID,
	}
}

// Create writes a new expense record.
func (r *ExpenseRepository) Create(ctx context.Context, expense *entity.Expense) (*entity.Expense, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	page, err := r.store.CreatePage(ctx, r.databaseID, expenseWriteProperties(expense, fields))
	if err != nil {
		return nil, err
	}
	return r.fromPage(ctx, page, fields), nil
}

// List retrieves all non-archived expenses, newest first.
func (r *ExpenseRepository) List(ctx context.Context) ([]*entity.Expense, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	pages, err := listAll(ctx, r.store, r.databaseID)
	if err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, 0, len(pages))
	for i := range pages {
		expenses = append(expenses, r.fromPage(ctx, &pages[i], fields))
	}
	sort.SliceStable(expenses, func(i, j int) bool {
		return expenses[i].OccurredAt.After(expenses[j].OccurredAt)
	})
	return expenses, nil
}

// FindByID retrieves one expense by id, archived or not.
func (r *ExpenseRepository) FindByID(ctx context.Context, id string) (*entity.Expense, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	page, err := r.store.RetrievePage(ctx, id)
	if err != nil {
		return nil, err
	}
	return r.fromPage(ctx, page, fields), nil
}

// Update replaces the editable fields of an existing expense.
func (r *ExpenseRepository) Update(ctx context.Context, expense *entity.Expense) (*entity.Expense, error) {
	fields := r.resolver.Resolve(ctx, r.databaseID)
	page, err := r.store.UpdatePage(ctx, expense.ID, expenseWriteProperties(expense, fields))
	if err != nil {
		return nil, err
	}
	return r.fromPage(ctx, page, fields), nil
}

// Archive soft-deletes an expense.
func (r *ExpenseRepository) Archive(ctx context.Context, id string) error {
	return r.store.ArchivePage(ctx, id)
}

// fromPage normalizes a raw page and resolves its category label.
func (r *ExpenseRepository) fromPage(ctx context.Context, page *notion.Page, fields FieldMap) *entity.Expense {
	expense := normalizeExpense(page, fields, time.Now())
	if expense.Category == "" && expense.CategoryID != "" {
		expense.Category = r.labels.Lookup(ctx, expense.CategoryID)
	}
	if expense.Category == "" {
		expense.Category = entity.DefaultCategoryName
	}
	return expense
}

var _ adapter.ExpenseRepository = (*ExpenseRepository)(nil)
