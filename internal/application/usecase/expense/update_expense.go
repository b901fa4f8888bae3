package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// UpdateExpenseInput represents the input for expense update. Updates are a
// full field replace.
type UpdateExpenseInput struct {
	ID            string
	Title         string
	Subtotal      int64
	Shipping      int64
	ServiceFee    int64
	AdditionalFee int64
	Discount      int64
	CategoryID    string
	Notes         string
	OccurredAt    time.Time
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	insightsCache adapter.InsightsCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, insightsCache adapter.InsightsCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:   expenseRepo,
		insightsCache: insightsCache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	expense := &entity.Expense{
		ID:            input.ID,
		Title:         strings.TrimSpace(input.Title),
		Subtotal:      input.Subtotal,
		Shipping:      input.Shipping,
		ServiceFee:    input.ServiceFee,
		AdditionalFee: input.AdditionalFee,
		Discount:      input.Discount,
		CategoryID:    input.CategoryID,
		Notes:         input.Notes,
		OccurredAt:    input.OccurredAt,
	}
	if expense.OccurredAt.IsZero() {
		expense.OccurredAt = time.Now()
	}

	if err := validateExpense(expense); err != nil {
		return nil, err
	}
	expense.Amount = expense.ComputeAmount()

	updated, err := uc.expenseRepo.Update(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	uc.insightsCache.Invalidate(ctx)

	return &UpdateExpenseOutput{Expense: updated}, nil
}
