package obligation

import (
	"context"
	"errors"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// RecordPaymentInput represents the input for recording a payment against a
// debt or loan.
type RecordPaymentInput struct {
	Kind   entity.ObligationKind
	ID     string
	Amount int64
}

// RecordPaymentOutput represents the output of recording a payment.
type RecordPaymentOutput struct {
	Obligation *entity.Obligation
}

// RecordPaymentUseCase handles incremental payments. Paid only ever grows
// through this operation; status is rederived so a final payment flips the
// record to Paid immediately.
type RecordPaymentUseCase struct {
	obligationRepo adapter.ObligationRepository
	insightsCache  adapter.InsightsCache
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase instance.
func NewRecordPaymentUseCase(obligationRepo adapter.ObligationRepository, insightsCache adapter.InsightsCache) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		obligationRepo: obligationRepo,
		insightsCache:  insightsCache,
	}
}

// Execute records the payment.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if input.Amount <= 0 {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeInvalidPaymentDelta,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentDelta,
		)
	}

	current, err := uc.obligationRepo.FindByID(ctx, input.Kind, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeObligationNotFound,
				fmt.Sprintf("%s not found", input.Kind),
				domainerror.ErrObligationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to load %s: %w", input.Kind, err)
	}

	if current.IsSettled() {
		return nil, domainerror.NewObligationError(
			domainerror.ErrCodeObligationSettled,
			"obligation is already fully paid",
			domainerror.ErrObligationSettled,
		)
	}

	current.Paid += input.Amount
	current.Recalculate()

	updated, err := uc.obligationRepo.Update(ctx, current)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	uc.insightsCache.Invalidate(ctx)

	return &RecordPaymentOutput{Obligation: updated}, nil
}
