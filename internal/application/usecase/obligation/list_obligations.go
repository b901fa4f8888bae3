package obligation

import (
	"context"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListObligationsInput represents the input for listing debts or loans.
type ListObligationsInput struct {
	Kind       entity.ObligationKind
	ActiveOnly bool // When set, fully settled records are filtered out
}

// ListObligationsOutput represents the output of listing debts or loans.
type ListObligationsOutput struct {
	Obligations []*entity.Obligation
}

// ListObligationsUseCase handles listing debts and loans.
type ListObligationsUseCase struct {
	obligationRepo adapter.ObligationRepository
}

// NewListObligationsUseCase creates a new ListObligationsUseCase instance.
func NewListObligationsUseCase(obligationRepo adapter.ObligationRepository) *ListObligationsUseCase {
	return &ListObligationsUseCase{obligationRepo: obligationRepo}
}

// Execute retrieves all obligations of a kind, newest first.
func (uc *ListObligationsUseCase) Execute(ctx context.Context, input ListObligationsInput) (*ListObligationsOutput, error) {
	records, err := uc.obligationRepo.List(ctx, input.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %ss: %w", input.Kind, err)
	}

	if input.ActiveOnly {
		active := make([]*entity.Obligation, 0, len(records))
		for _, record := range records {
			if record.Remaining > 0 {
				active = append(active, record)
			}
		}
		records = active
	}

	return &ListObligationsOutput{Obligations: records}, nil
}
