// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/duitku/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence against
// the document store.
type ExpenseRepository interface {
	// Create writes a new expense record and returns it with its assigned id.
	Create(ctx context.Context, expense *entity.Expense) (*entity.Expense, error)

	// List retrieves all non-archived expenses, newest first.
	List(ctx context.Context) ([]*entity.Expense, error)

	// FindByID retrieves one expense by id, archived or not.
	FindByID(ctx context.Context, id string) (*entity.Expense, error)

	// Update replaces the editable fields of an existing expense.
	Update(ctx context.Context, expense *entity.Expense) (*entity.Expense, error)

	// Archive soft-deletes an expense; it drops out of List but remains
	// retrievable via FindByID.
	Archive(ctx context.Context, id string) error
}

// IncomeRepository defines the interface for income persistence.
type IncomeRepository interface {
	Create(ctx context.Context, income *entity.Income) (*entity.Income, error)
	List(ctx context.Context) ([]*entity.Income, error)
	FindByID(ctx context.Context, id string) (*entity.Income, error)
	Update(ctx context.Context, income *entity.Income) (*entity.Income, error)
	Archive(ctx context.Context, id string) error
}

// ObligationRepository defines the interface for debt and loan persistence.
// The kind selects which collection backs the call.
type ObligationRepository interface {
	Create(ctx context.Context, obligation *entity.Obligation) (*entity.Obligation, error)
	List(ctx context.Context, kind entity.ObligationKind) ([]*entity.Obligation, error)
	FindByID(ctx context.Context, kind entity.ObligationKind, id string) (*entity.Obligation, error)
	Update(ctx context.Context, obligation *entity.Obligation) (*entity.Obligation, error)
	Archive(ctx context.Context, kind entity.ObligationKind, id string) error
}
