package income

import (
	"context"
	"errors"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// GetIncomeInput represents the input for retrieving one income record.
type GetIncomeInput struct {
	ID string
}

// GetIncomeOutput represents the output of retrieving one income record.
type GetIncomeOutput struct {
	Income *entity.Income
}

// GetIncomeUseCase handles retrieving a single income record.
type GetIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewGetIncomeUseCase creates a new GetIncomeUseCase instance.
func NewGetIncomeUseCase(incomeRepo adapter.IncomeRepository) *GetIncomeUseCase {
	return &GetIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute retrieves one income record by id.
func (uc *GetIncomeUseCase) Execute(ctx context.Context, input GetIncomeInput) (*GetIncomeOutput, error) {
	found, err := uc.incomeRepo.FindByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrRecordNotFound) {
			return nil, domainerror.NewIncomeError(
				domainerror.ErrCodeIncomeNotFound,
				"income not found",
				domainerror.ErrIncomeNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get income: %w", err)
	}
	return &GetIncomeOutput{Income: found}, nil
}
