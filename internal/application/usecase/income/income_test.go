package income

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

type mockIncomeRepo struct {
	byID       map[string]*entity.Income
	listResult []*entity.Income
	created    *entity.Income
	updated    *entity.Income
	archived   []string
	err        error
}

func (m *mockIncomeRepo) Create(_ context.Context, record *entity.Income) (*entity.Income, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.created = record
	record.ID = "new-id"
	return record, nil
}

func (m *mockIncomeRepo) List(context.Context) ([]*entity.Income, error) {
	return m.listResult, m.err
}

func (m *mockIncomeRepo) FindByID(_ context.Context, id string) (*entity.Income, error) {
	if m.err != nil {
		return nil, m.err
	}
	found, ok := m.byID[id]
	if !ok {
		return nil, domainerror.NewStoreError(404, "object_not_found", "no such page")
	}
	return found, nil
}

func (m *mockIncomeRepo) Update(_ context.Context, record *entity.Income) (*entity.Income, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.updated = record
	return record, nil
}

func (m *mockIncomeRepo) Archive(_ context.Context, id string) error {
	m.archived = append(m.archived, id)
	return m.err
}

type mockInsightsCache struct {
	invalidations int
}

func (m *mockInsightsCache) Get(context.Context) (*entity.InsightsSummary, bool) { return nil, false }
func (m *mockInsightsCache) Set(context.Context, *entity.InsightsSummary)        {}
func (m *mockInsightsCache) Invalidate(context.Context)                          { m.invalidations++ }

func TestCreateIncomeUseCase_Execute(t *testing.T) {
	t.Run("creates and invalidates the cache", func(t *testing.T) {
		repo := &mockIncomeRepo{}
		cache := &mockInsightsCache{}
		uc := NewCreateIncomeUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), CreateIncomeInput{
			Title:  "Gaji Bulanan",
			Amount: 12000000,
			Source: "Salary",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Income.ID != "new-id" {
			t.Errorf("expected new-id, got %q", output.Income.ID)
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		uc := NewCreateIncomeUseCase(&mockIncomeRepo{}, &mockInsightsCache{})

		_, err := uc.Execute(context.Background(), CreateIncomeInput{
			Title:  "   ",
			Amount: 500000,
		})
		if !errors.Is(err, domainerror.ErrIncomeTitleRequired) {
			t.Errorf("expected title error, got %v", err)
		}
	})

	t.Run("rejects non-positive amount before any remote call", func(t *testing.T) {
		for _, amount := range []int64{0, -150000} {
			repo := &mockIncomeRepo{}
			uc := NewCreateIncomeUseCase(repo, &mockInsightsCache{})

			_, err := uc.Execute(context.Background(), CreateIncomeInput{
				Title:  "Bonus",
				Amount: amount,
			})
			if !errors.Is(err, domainerror.ErrInvalidIncomeAmount) {
				t.Errorf("amount %d: expected invalid amount error, got %v", amount, err)
			}
			if repo.created != nil {
				t.Errorf("amount %d: expected no remote create", amount)
			}
		}
	})

	t.Run("defaults occurred at to now", func(t *testing.T) {
		uc := NewCreateIncomeUseCase(&mockIncomeRepo{}, &mockInsightsCache{})

		output, err := uc.Execute(context.Background(), CreateIncomeInput{
			Title:  "Cashback",
			Amount: 30000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Income.OccurredAt.IsZero() {
			t.Error("expected occurred at to be populated")
		}
		if time.Since(output.Income.OccurredAt) > time.Minute {
			t.Errorf("expected a recent timestamp, got %v", output.Income.OccurredAt)
		}
	})
}

func TestUpdateIncomeUseCase_Execute(t *testing.T) {
	t.Run("replaces fields and invalidates the cache", func(t *testing.T) {
		repo := &mockIncomeRepo{}
		cache := &mockInsightsCache{}
		uc := NewUpdateIncomeUseCase(repo, cache)

		output, err := uc.Execute(context.Background(), UpdateIncomeInput{
			ID:     "i1",
			Title:  "Gaji Bulanan",
			Amount: 12500000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Income.Amount != 12500000 {
			t.Errorf("expected amount 12500000, got %d", output.Income.Amount)
		}
		if repo.updated == nil || repo.updated.ID != "i1" {
			t.Errorf("expected update for i1, got %+v", repo.updated)
		}
		if cache.invalidations != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", cache.invalidations)
		}
	})

	t.Run("rejects invalid amount without touching the store", func(t *testing.T) {
		repo := &mockIncomeRepo{}
		uc := NewUpdateIncomeUseCase(repo, &mockInsightsCache{})

		_, err := uc.Execute(context.Background(), UpdateIncomeInput{
			ID:    "i1",
			Title: "Gaji Bulanan",
		})
		if !errors.Is(err, domainerror.ErrInvalidIncomeAmount) {
			t.Errorf("expected invalid amount error, got %v", err)
		}
		if repo.updated != nil {
			t.Error("expected no remote update for an invalid income")
		}
	})
}

func TestGetIncomeUseCase_Execute(t *testing.T) {
	t.Run("returns the stored income", func(t *testing.T) {
		repo := &mockIncomeRepo{byID: map[string]*entity.Income{
			"i1": {ID: "i1", Title: "Gaji Bulanan"},
		}}
		uc := NewGetIncomeUseCase(repo)

		output, err := uc.Execute(context.Background(), GetIncomeInput{ID: "i1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Income.Title != "Gaji Bulanan" {
			t.Errorf("expected Gaji Bulanan, got %q", output.Income.Title)
		}
	})

	t.Run("maps missing record to income not found", func(t *testing.T) {
		repo := &mockIncomeRepo{byID: map[string]*entity.Income{}}
		uc := NewGetIncomeUseCase(repo)

		_, err := uc.Execute(context.Background(), GetIncomeInput{ID: "missing"})
		if !errors.Is(err, domainerror.ErrIncomeNotFound) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestArchiveIncomeUseCase_Execute(t *testing.T) {
	repo := &mockIncomeRepo{}
	cache := &mockInsightsCache{}
	uc := NewArchiveIncomeUseCase(repo, cache)

	if err := uc.Execute(context.Background(), ArchiveIncomeInput{ID: "i1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.archived) != 1 || repo.archived[0] != "i1" {
		t.Errorf("expected i1 archived, got %v", repo.archived)
	}
	if cache.invalidations != 1 {
		t.Errorf("expected cache invalidation, got %d", cache.invalidations)
	}
}
