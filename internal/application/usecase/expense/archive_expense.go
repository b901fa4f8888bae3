package expense

import (
	"context"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
)

// ArchiveExpenseInput represents the input for expense archival.
type ArchiveExpenseInput struct {
	ID string
}

// ArchiveExpenseUseCase handles expense soft-deletion.
type ArchiveExpenseUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	insightsCache adapter.InsightsCache
}

// NewArchiveExpenseUseCase creates a new ArchiveExpenseUseCase instance.
func NewArchiveExpenseUseCase(expenseRepo adapter.ExpenseRepository, insightsCache adapter.InsightsCache) *ArchiveExpenseUseCase {
	return &ArchiveExpenseUseCase{
		expenseRepo:   expenseRepo,
		insightsCache: insightsCache,
	}
}

// Execute archives the expense. The record disappears from lists but stays
// retrievable by id.
func (uc *ArchiveExpenseUseCase) Execute(ctx context.Context, input ArchiveExpenseInput) error {
	if err := uc.expenseRepo.Archive(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to archive expense: %w", err)
	}
	uc.insightsCache.Invalidate(ctx)
	return nil
}
