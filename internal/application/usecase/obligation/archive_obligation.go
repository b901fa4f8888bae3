package obligation

import (
	"context"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ArchiveObligationInput represents the input for debt/loan archival.
type ArchiveObligationInput struct {
	Kind entity.ObligationKind
	ID   string
}

// ArchiveObligationUseCase handles debt/loan soft-deletion.
type ArchiveObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
	insightsCache  adapter.InsightsCache
}

// NewArchiveObligationUseCase creates a new ArchiveObligationUseCase instance.
func NewArchiveObligationUseCase(obligationRepo adapter.ObligationRepository, insightsCache adapter.InsightsCache) *ArchiveObligationUseCase {
	return &ArchiveObligationUseCase{
		obligationRepo: obligationRepo,
		insightsCache:  insightsCache,
	}
}

// Execute archives the obligation.
func (uc *ArchiveObligationUseCase) Execute(ctx context.Context, input ArchiveObligationInput) error {
	if err := uc.obligationRepo.Archive(ctx, input.Kind, input.ID); err != nil {
		return fmt.Errorf("failed to archive %s: %w", input.Kind, err)
	}
	uc.insightsCache.Invalidate(ctx)
	return nil
}
