package income

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// UpdateIncomeInput represents the input for income update. Updates are a
// full field replace.
type UpdateIncomeInput struct {
	ID         string
	Title      string
	Amount     int64
	SourceID   string
	Source     string
	Notes      string
	OccurredAt time.Time
}

// UpdateIncomeOutput represents the output of income update.
type UpdateIncomeOutput struct {
	Income *entity.Income
}

// UpdateIncomeUseCase handles income update logic.
type UpdateIncomeUseCase struct {
	incomeRepo    adapter.IncomeRepository
	insightsCache adapter.InsightsCache
}

// NewUpdateIncomeUseCase creates a new UpdateIncomeUseCase instance.
func NewUpdateIncomeUseCase(incomeRepo adapter.IncomeRepository, insightsCache adapter.InsightsCache) *UpdateIncomeUseCase {
	return &UpdateIncomeUseCase{
		incomeRepo:    incomeRepo,
		insightsCache: insightsCache,
	}
}

// Execute performs the income update.
func (uc *UpdateIncomeUseCase) Execute(ctx context.Context, input UpdateIncomeInput) (*UpdateIncomeOutput, error) {
	record := &entity.Income{
		ID:         input.ID,
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

	updated, err := uc.incomeRepo.Update(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to update income: %w", err)
	}

	uc.insightsCache.Invalidate(ctx)

	return &UpdateIncomeOutput{Income: updated}, nil
}
