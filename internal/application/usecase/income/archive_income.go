package income

import (
	"context"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
)

// ArchiveIncomeInput represents the input for income archival.
type ArchiveIncomeInput struct {
	ID string
}

// ArchiveIncomeUseCase handles income soft-deletion.
type ArchiveIncomeUseCase struct {
	incomeRepo    adapter.IncomeRepository
	insightsCache adapter.InsightsCache
}

// NewArchiveIncomeUseCase creates a new ArchiveIncomeUseCase instance.
func NewArchiveIncomeUseCase(incomeRepo adapter.IncomeRepository, insightsCache adapter.InsightsCache) *ArchiveIncomeUseCase {
	return &ArchiveIncomeUseCase{
		incomeRepo:    incomeRepo,
		insightsCache: insightsCache,
	}
}

// Execute archives the income record.
func (uc *ArchiveIncomeUseCase) Execute(ctx context.Context, input ArchiveIncomeInput) error {
	if err := uc.incomeRepo.Archive(ctx, input.ID); err != nil {
		return fmt.Errorf("failed to archive income: %w", err)
	}
	uc.insightsCache.Invalidate(ctx)
	return nil
}
