// Package income contains income-related use cases.
package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// CreateIncomeInput represents the input for income creation.
type CreateIncomeInput struct {
	Title      string
	Amount     int64
	SourceID   string
	Source     string
	Notes      string
	OccurredAt time.Time // Zero value means now
}

// CreateIncomeOutput represents the output of income creation.
type CreateIncomeOutput struct {
	Income *entity.Income
}

// CreateIncomeUseCase handles income creation logic.
type CreateIncomeUseCase struct {
	incomeRepo    adapter.IncomeRepository
	insightsCache adapter.InsightsCache
}

// NewCreateIncomeUseCase creates a new CreateIncomeUseCase instance.
func NewCreateIncomeUseCase(incomeRepo adapter.IncomeRepository, insightsCache adapter.InsightsCache) *CreateIncomeUseCase {
	return &CreateIncomeUseCase{
		incomeRepo:    incomeRepo,
		insightsCache: insightsCache,
	}
}

// Execute performs the income creation.
func (uc *CreateIncomeUseCase) Execute(ctx context.Context, input CreateIncomeInput) (*CreateIncomeOutput, error) {
	record := &entity.Income{
		Title:      strings.TrimSpace(input.Title),
		Amount:     input.Amount,
		SourceID:   input.SourceID,
		Source:     input.Source,
		Notes:      input.Notes,
		OccurredAt: input.OccurredAt,
	}
	if record.OccurredAt.IsZero() {
		record.OccurredAt = time.Now()
	}

	if err := validateIncome(record); err != nil {
		return nil, err
	}

	created, err := uc.incomeRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create income: %w", err)
	}

	uc.insightsCache.Invalidate(ctx)

	return &CreateIncomeOutput{Income: created}, nil
}

// validateIncome checks the editable fields shared by create and update.
func validateIncome(record *entity.Income) error {
	if record.Title == "" {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeIncomeTitleRequired,
			"title is required",
			domainerror.ErrIncomeTitleRequired,
		)
	}
	if record.Amount <= 0 {
		return domainerror.NewIncomeError(
			domainerror.ErrCodeInvalidIncomeAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidIncomeAmount,
		)
	}
	return nil
}
