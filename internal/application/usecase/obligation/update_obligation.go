package obligation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// UpdateObligationInput represents the input for debt/loan update. Updates
// are a full field replace; derived fields are recomputed.
type UpdateObligationInput struct {
	Kind    entity.ObligationKind
	ID      string
	Title   string
	Total   int64
	Paid    int64
	DueDate time.Time
	Purpose string
	Status  entity.ObligationStatus
}

// UpdateObligationOutput represents the output of debt/loan update.
type UpdateObligationOutput struct {
	Obligation *entity.Obligation
}

// UpdateObligationUseCase handles debt/loan update logic.
type UpdateObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
	insightsCache  adapter.InsightsCache
}

// NewUpdateObligationUseCase creates a new UpdateObligationUseCase instance.
func NewUpdateObligationUseCase(obligationRepo adapter.ObligationRepository, insightsCache adapter.InsightsCache) *UpdateObligationUseCase {
	return &UpdateObligationUseCase{
		obligationRepo: obligationRepo,
		insightsCache:  insightsCache,
	}
}

// Execute performs the debt/loan update.
func (uc *UpdateObligationUseCase) Execute(ctx context.Context, input UpdateObligationInput) (*UpdateObligationOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationTitleRequired,
			"title is required",
			domainerror.ErrObligationTitleRequired,
		)
	}
	if input.Total <= 0 {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidObligationTotal,
			"total must be greater than zero",
			domainerror.ErrInvalidObligationTotal,
		)
	}
	if input.Paid < 0 || input.Paid > input.Total {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidPaidAmount,
			"paid amount must be between zero and the total",
			domainerror.ErrInvalidPaidAmount,
		)
	}

	dueDate := input.DueDate
	if dueDate.IsZero() {
		dueDate = time.Now()
	}

	record := entity.NewObligation(input.Kind, title, input.Total, input.Paid, dueDate, input.Purpose, input.Status)
	record.ID = input.ID

	updated, err := uc.obligationRepo.Update(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to update %s: %w", input.Kind, err)
	}

	uc.insightsCache.Invalidate(ctx)

	return &UpdateObligationOutput{Obligation: updated}, nil
}
