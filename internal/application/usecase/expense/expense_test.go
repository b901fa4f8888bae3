package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

type mockExpenseRepo struct {
	byID       map[string]*entity.Expense
	listResult []*entity.Expense
	created    *entity.Expense
	updated    *entity.Expense
	archived   []string
	err        error
}

func (m *mockExpenseRepo) Create(_ context.Context, e *entity.Expense) (*entity.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = e
	e.ID = "new-id"
	return e, nil
}

func (m *mockExpenseRepo) List(context.Context) ([]*entity.Expense, error) {
	return m.listResult, m.err
}

func (m *mockExpenseRepo) FindByID(_ context.Context, id string) (*entity.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	found, ok := m.byID[id]
	if !ok {
		return nil, domainerror.NewStoreError(404, "object_not_found", "no such page")
	}
	return found, nil
}

func (m *mockExpenseRepo) Update(_ context.Context, e *entity.Expense) (*entity.Expense, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updated = e
	return e, nil
}

func (m *mockExpenseRepo) Archive(_ context.Context, id string) error {
	m.archived = append(m.archived, id)
	return m.err
}

type mockInsightsCache struct {
	invalidations int
}

func (m *mockInsightsCache) Get(context.Context) (*entity.InsightsSummary, bool) { return nil, false }
func (m *mockInsightsCache) Set(context.Context, *entity.InsightsSummary)        {}
func (m *mockInsightsCache) Invalidate(context.Context)                          { m.invalidations++ }

func TestCreateExpenseUseCase_Execute(t *testing.T) {
	t.Run("derives the amount from components", func(t *testing.T) {
		repo := &mockExpenseRepo{}
		cache := &mockInsightsCache{}
		uc := NewCreateExpenseUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), CreateExpenseInput{
			Title:      "Belanja Online",
			Subtotal:   200000,
			Shipping:   20000,
			ServiceFee: 3000,
			Discount:   23000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if output.Expense.Amount != 200000 {
			t.Errorf("expected amount 200000, got %d", output.Expense.Amount)
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("rejects missing title", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(&mockExpenseRepo{}, &mockInsightsCache{})

		_, err := uc.Execute(context.Background(), CreateExpenseInput{Subtotal: 100000})
		if !errors.Is(err, domainerror.ErrExpenseTitleRequired) {
			t.Errorf("expected title error, got %v", err)
		}
	})

	t.Run("rejects negative components", func(t *testing.T) {
		uc := NewCreateExpenseUseCase(&mockExpenseRepo{}, &mockInsightsCache{})

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Title:    "Refund?",
			Subtotal: -50000,
		})
		if !errors.Is(err, domainerror.ErrNegativeExpenseComponent) {
			t.Errorf("expected negative component error, got %v", err)
		}
	})

	t.Run("rejects discount swallowing the total before any remote call", func(t *testing.T) {
		repo := &mockExpenseRepo{}
		uc := NewCreateExpenseUseCase(repo, &mockInsightsCache{})

		_, err := uc.Execute(context.Background(), CreateExpenseInput{
			Title:    "Gratis",
			Subtotal: 50000,
			Discount: 50000,
		})
		if !errors.Is(err, domainerror.ErrInvalidExpenseTotal) {
			t.Errorf("expected invalid total error, got %v", err)
		}
		if repo.created != nil {
			t.Error("expected no remote create for an invalid expense")
		}
	})

	t.Run("defaults occurred at to now", func(t *testing.T) {
		repo := &mockExpenseRepo{}
		uc := NewCreateExpenseUseCase(repo, &mockInsightsCache{})

		output, err := uc.Execute(context.Background(), CreateExpenseInput{
			Title:    "Kopi",
			Subtotal: 25000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.OccurredAt.IsZero() {
			t.Error("expected occurred at to be populated")
		}
		if time.Since(output.Expense.OccurredAt) > time.Minute {
			t.Errorf("expected a recent timestamp, got %v", output.Expense.OccurredAt)
		}
	})
}

func TestGetExpenseUseCase_Execute(t *testing.T) {
	t.Run("returns the stored expense", func(t *testing.T) {
		repo := &mockExpenseRepo{byID: map[string]*entity.Expense{
			"e1": {ID: "e1", Title: "Makan"},
		}}
		uc := NewGetExpenseUseCase(repo)

		output, err := uc.Execute(context.Background(), GetExpenseInput{ID: "e1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Expense.Title != "Makan" {
			t.Errorf("expected Makan, got %q", output.Expense.Title)
		}
	})

	t.Run("maps missing record to expense not found", func(t *testing.T) {
		repo := &mockExpenseRepo{byID: map[string]*entity.Expense{}}
		uc := NewGetExpenseUseCase(repo)

		_, err := uc.Execute(context.Background(), GetExpenseInput{ID: "missing"})
		if !errors.Is(err, domainerror.ErrExpenseNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestArchiveExpenseUseCase_Execute(t *testing.T) {
	repo := &mockExpenseRepo{}
	cache := &mockInsightsCache{}
	uc := NewArchiveExpenseUseCase(repo, cache)

	if err := uc.Execute(context.Background(), ArchiveExpenseInput{ID: "e1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.archived) != 1 || repo.archived[0] != "e1" {
		t.Errorf("expected e1 archived, got %v", repo.archived)
	}
	if cache.invalidations != 1 {
		t.Errorf("expected cache invalidation, got %d", cache.invalidations)
	}
}
