package income

import (
	"context"
	"fmt"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
)

// ListIncomeOutput represents the output of listing income records.
type ListIncomeOutput struct {
	Income []*entity.Income
}

// ListIncomeUseCase handles listing all income records.
type ListIncomeUseCase struct {
	incomeRepo adapter.IncomeRepository
}

// NewListIncomeUseCase creates a new ListIncomeUseCase instance.
func NewListIncomeUseCase(incomeRepo adapter.IncomeRepository) *ListIncomeUseCase {
	return &ListIncomeUseCase{incomeRepo: incomeRepo}
}

// Execute retrieves all income records, newest first.
func (uc *ListIncomeUseCase) Execute(ctx context.Context) (*ListIncomeOutput, error) {
	records, err := uc.incomeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list income: %w", err)
	}
	return &ListIncomeOutput{Income: records}, nil
}
