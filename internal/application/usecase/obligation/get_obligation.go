package obligation

import (
	"context"
	"errors"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// GetObligationInput represents the input for retrieving one debt or loan.
type GetObligationInput struct {
	Kind entity.ObligationKind
	ID   string
}

// GetObligationOutput represents the output of retrieving one debt or loan.
type GetObligationOutput struct {
	Obligation *entity.Obligation
}

// GetObligationUseCase handles retrieving a single debt or loan.
type GetObligationUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewGetObligationUseCase creates a new GetObligationUseCase instance.
func NewGetObligationUseCase(obligationRepo adapter.ObligationRepository) *GetObligationUseCase {
	return &GetObligationUseCase{obligationRepo: obligationRepo}
}

// Execute retrieves one obligation by id.
func (uc *GetObligationUseCase) Execute(ctx context.Context, input GetObligationInput) (*GetObligationOutput, error) {
	found, err := uc.obligationRepo.FindByID(ctx, input.Kind, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewObligationError(
				domainerror.ErrCodeObligationNotFound,
				fmt.Sprintf("%s not found", input.Kind),
				domainerror.ErrObligationNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get %s: %w", input.Kind, err)
	}
	return &GetObligationOutput{Obligation: found}, nil
}
