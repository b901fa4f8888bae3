// Package insights contains the aggregation use case for the dashboard.
package insights

import (
	"time"

	"github.com/shopspring/decimal"
)

// monthWindow returns the half-open [start, end) window of the calendar
// month containing t, in t's location.
func monthWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	end = start.AddDate(0, 1, 0)
	return start, end
}

// previousMonthWindow returns the window of the month immediately before
// the one containing t. AddDate handles the year rollover at January.
func previousMonthWindow(t time.Time) (start, end time.Time) {
	currentStart := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return currentStart.AddDate(0, -1, 0), currentStart
}

// inWindow reports whether t falls inside the half-open [start, end).
func inWindow(t, start, end time.Time) bool {
	return !t.Before(start) && t.Before(end)
}

// percentChange computes the signed month-over-month change. A comparison
// against an empty month is pinned: 0 when both months are empty, +100 when
// only the previous month is.
func percentChange(current, last int64) float64 {
	if last == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	pct := decimal.NewFromInt(current - last).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(last))
	result, _ := pct.Round(2).Float64()
	return result
}
