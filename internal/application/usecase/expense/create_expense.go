// Package expense contains expense-related use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation. The total
// is never accepted from the caller; it is derived from the components.
type CreateExpenseInput struct {
	Title         string
	Subtotal      int64
	Shipping      int64
	ServiceFee    int64
	AdditionalFee int64
	Discount      int64
	CategoryID    string
	Notes         string
	OccurredAt    time.Time // Zero value means now
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	insightsCache adapter.InsightsCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, insightsCache adapter.InsightsCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:   expenseRepo,
		insightsCache: insightsCache,
	}
}

// Execute performs the expense creation. Validation happens before any
// remote call.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	expense := &entity.Expense{
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

	created, err := uc.expenseRepo.Create(ctx, expense)
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	uc.insightsCache.Invalidate(ctx)

	return &CreateExpenseOutput{Expense: created}, nil
}

// validateExpense checks the editable fields shared by create and update.
func validateExpense(expense *entity.Expense) error {
	if expense.Title == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseTitleRequired,
			"title is required",
			domainerror.ErrExpenseTitleRequired,
		)
	}
	if expense.Subtotal < 0 || expense.Shipping < 0 || expense.ServiceFee < 0 ||
		expense.AdditionalFee < 0 || expense.Discount < 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeNegativeExpenseComponent,
			"component amounts must not be negative",
			domainerror.ErrNegativeExpenseComponent,
		)
	}
	if expense.ComputeAmount() <= 0 {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseTotal,
			"computed total must be greater than zero",
			domainerror.ErrInvalidExpenseTotal,
		)
	}
	return nil
}
