package insights

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/duitku/backend/internal/application/adapter"
	"github.com/duitku/backend/internal/domain/entity"
	domainerror "github.com/duitku/backend/internal/domain/error"
)

// topCategoryCount is how many categories are listed individually before
// the remainder collapses into the Others bucket.
const topCategoryCount = 5

// ComputeInsightsOutput represents the output of the insights computation.
type ComputeInsightsOutput struct {
	Summary   *entity.InsightsSummary
	FromCache bool
}

// ComputeInsightsUseCase derives the dashboard statistics from the full
// record lists. Results are served from a short-lived cache; a hit is
// structurally identical to a fresh computation.
type ComputeInsightsUseCase struct {
	expenseRepo    adapter.ExpenseRepository
	incomeRepo     adapter.IncomeRepository
	obligationRepo adapter.ObligationRepository
	cache          adapter.InsightsCache
	clock          adapter.Clock
}

// NewComputeInsightsUseCase creates a new ComputeInsightsUseCase instance.
func NewComputeInsightsUseCase(
	expenseRepo adapter.ExpenseRepository,
	incomeRepo adapter.IncomeRepository,
	obligationRepo adapter.ObligationRepository,
	cache adapter.InsightsCache,
	clock adapter.Clock,
) *ComputeInsightsUseCase {
	return &ComputeInsightsUseCase{
		expenseRepo:    expenseRepo,
		incomeRepo:     incomeRepo,
		obligationRepo: obligationRepo,
		cache:          cache,
		clock:          clock,
	}
}

// Execute returns the insights summary, computing it when the cache is
// empty or stale.
func (uc *ComputeInsightsUseCase) Execute(ctx context.Context) (*ComputeInsightsOutput, error) {
	if cached, ok := uc.cache.Get(ctx); ok {
		return &ComputeInsightsOutput{Summary: cached, FromCache: true}, nil
	}

	now := uc.clock.Now()

	expenses, err := uc.expenseRepo.List(ctx)
	if err != nil {
		return nil, domainerror.NewInsightsError(
			domainerror.ErrCodeInsightsUnavailable,
			"failed to load expenses",
			fmt.Errorf("failed to list expenses: %w", err),
		)
	}
	incomeRecords, err := uc.incomeRepo.List(ctx)
	if err != nil {
		return nil, domainerror.NewInsightsError(
			domainerror.ErrCodeInsightsUnavailable,
			"failed to load income",
			fmt.Errorf("failed to list income: %w", err),
		)
	}
	debts, err := uc.obligationRepo.List(ctx, entity.ObligationKindDebt)
	if err != nil {
		return nil, domainerror.NewInsightsError(
			domainerror.ErrCodeInsightsUnavailable,
			"failed to load debts",
			fmt.Errorf("failed to list debts: %w", err),
		)
	}
	loans, err := uc.obligationRepo.List(ctx, entity.ObligationKindLoan)
	if err != nil {
		return nil, domainerror.NewInsightsError(
			domainerror.ErrCodeInsightsUnavailable,
			"failed to load loans",
			fmt.Errorf("failed to list loans: %w", err),
		)
	}

	summary := buildSummary(expenses, incomeRecords, debts, loans, now)
	uc.cache.Set(ctx, summary)

	return &ComputeInsightsOutput{Summary: summary}, nil
}

// buildSummary derives the full insights summary for the month containing
// now.
func buildSummary(
	expenses []*entity.Expense,
	incomeRecords []*entity.Income,
	debts, loans []*entity.Obligation,
	now time.Time,
) *entity.InsightsSummary {
	expenseStats := periodStats(expenses, now, func(e *entity.Expense) (time.Time, int64, string) {
		return e.OccurredAt, e.Amount, e.Category
	})
	incomeStats := periodStats(incomeRecords, now, func(i *entity.Income) (time.Time, int64, string) {
		return i.OccurredAt, i.Amount, i.Source
	})

	return &entity.InsightsSummary{
		Expense:     expenseStats,
		Income:      incomeStats,
		Debt:        obligationStats(debts),
		Loan:        obligationStats(loans),
		NetFlow:     incomeStats.TotalCurrent - expenseStats.TotalCurrent,
		GeneratedAt: now,
	}
}

// periodStats sums a record slice over the current and previous month
// windows and ranks the current month's categories.
func periodStats[T any](records []T, now time.Time, fields func(T) (time.Time, int64, string)) entity.PeriodStats {
	curStart, curEnd := monthWindow(now)
	lastStart, lastEnd := previousMonthWindow(now)

	var totalCurrent, totalLast int64
	byCategory := make(map[string]int64)

	for _, record := range records {
		occurredAt, amount, category := fields(record)
		switch {
		case inWindow(occurredAt, curStart, curEnd):
			totalCurrent += amount
			byCategory[category] += amount
		case inWindow(occurredAt, lastStart, lastEnd):
			totalLast += amount
		}
	}

	return entity.PeriodStats{
		TotalCurrent:  totalCurrent,
		TotalLast:     totalLast,
		Percent:       percentChange(totalCurrent, totalLast),
		TopCategories: topCategories(byCategory),
	}
}

// topCategories ranks categories by value descending and folds everything
// past the top ranks into the Others bucket. The returned entries always
// sum to the period total.
func topCategories(byCategory map[string]int64) []entity.CategorySummary {
	ranked := make([]entity.CategorySummary, 0, len(byCategory))
	for name, value := range byCategory {
		ranked = append(ranked, entity.CategorySummary{Name: name, Value: value})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Value != ranked[j].Value {
			return ranked[i].Value > ranked[j].Value
		}
		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) <= topCategoryCount {
		return ranked
	}

	var others int64
	for _, summary := range ranked[topCategoryCount:] {
		others += summary.Value
	}
	top := ranked[:topCategoryCount:topCategoryCount]
	if others > 0 {
		top = append(top, entity.CategorySummary{Name: entity.OthersCategoryName, Value: others})
	}
	return top
}

// obligationStats aggregates the obligations that still carry a balance.
// Settled records are excluded from the active counts and sums.
func obligationStats(obligations []*entity.Obligation) entity.ObligationStats {
	var stats entity.ObligationStats
	for _, obligation := range obligations {
		if obligation.Remaining > 0 {
			stats.TotalRemaining += obligation.Remaining
			stats.Count++
		}
	}
	return stats
}
