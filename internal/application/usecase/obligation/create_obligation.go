// Package obligation contains debt and loan use cases. Debts and loans
// share one lifecycle and differ only in who owes whom.
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

// CreateObligationInput represents the input for debt/loan creation.
type CreateObligationInput struct {
	Kind    entity.ObligationKind
	Title   string
	Total   int64
	Paid    int64
	DueDate time.Time // Zero value means now
	Purpose string
	Status  entity.ObligationStatus // Empty means Active
}

// CreateObligationOutput represents the output of debt/loan creation.
type CreateObligationOutput struct {
	Obligation *entity.Obligation
}

// CreateObligationUseCase handles debt/loan creation logic.
type CreateObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
	insightsCache  adapter.InsightsCache
}

// NewCreateObligationUseCase creates a new CreateObligationUseCase instance.
func NewCreateObligationUseCase(obligationRepo adapter.ObligationRepository, insightsCache adapter.InsightsCache) *CreateObligationUseCase {
	return &CreateObligationUseCase{
		obligationRepo: obligationRepo,
		insightsCache:  insightsCache,
	}
}

// Execute performs the debt/loan creation. Validation happens before any
// remote call.
func (uc *CreateObligationUseCase) Execute(ctx context.Context, input CreateObligationInput) (*CreateObligationOutput, error) {
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

	created, err := uc.obligationRepo.Create(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", input.Kind, err)
	}

	uc.insightsCache.Invalidate(ctx)

	return &CreateObligationOutput{Obligation: created}, nil
}
