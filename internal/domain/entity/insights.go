package entity

import "time"

// OthersCategoryName is the synthetic bucket holding the sum of all
// categories outside the top ranks.
const OthersCategoryName = "Others"

// CategorySummary is one category's summed amount for a period.
type CategorySummary struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// PeriodStats compares the current calendar month against the previous one.
type PeriodStats struct {
	TotalCurrent  int64             `json:"totalCurrent"`
	TotalLast     int64             `json:"totalLast"`
	Percent       float64           `json:"percent"`
	TopCategories []CategorySummary `json:"topCategories"`
}

// ObligationStats aggregates the obligations that still have an outstanding
// balance.
type ObligationStats struct {
	TotalRemaining int64 `json:"totalRemaining"`
	Count          int   `json:"count"`
}

// InsightsSummary is the full set of derived statistics served to the
// dashboard.
type InsightsSummary struct {
	Expense     PeriodStats     `json:"expense"`
	Income      PeriodStats     `json:"income"`
	Debt        ObligationStats `json:"debt"`
	Loan        ObligationStats `json:"loan"`
	NetFlow     int64           `json:"netFlow"`
	GeneratedAt time.Time       `json:"generatedAt"`
}
