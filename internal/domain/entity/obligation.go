package entity

import (
	"strings"
	"time"
)

// ObligationKind distinguishes money owed by the user from money lent out.
type ObligationKind string

const (
	ObligationKindDebt ObligationKind = "debt"
	ObligationKindLoan ObligationKind = "loan"
)

// ObligationStatus represents the lifecycle status of a debt or loan.
type ObligationStatus string

const (
	ObligationStatusActive  ObligationStatus = "Active"
	ObligationStatusOngoing ObligationStatus = "Ongoing"
	ObligationStatusOverdue ObligationStatus = "Overdue"
	ObligationStatusPaid    ObligationStatus = "Paid"
)

// paidSynonyms are stored status labels that all mean "fully settled".
// The store's status column is user-editable, so labels drift across
// languages and phrasings.
var paidSynonyms = map[string]bool{
	"lunas":    true,
	"done":     true,
	"paid":     true,
	"complete": true,
	"selesai":  true,
}

// CanonicalStatus maps a raw stored status label to a canonical
// ObligationStatus. Settled synonyms collapse to Paid; unknown or empty
// labels default to Active.
func CanonicalStatus(raw string) ObligationStatus {
	trimmed := strings.TrimSpace(raw)
	if paidSynonyms[strings.ToLower(trimmed)] {
		return ObligationStatusPaid
	}
	switch ObligationStatus(trimmed) {
	case ObligationStatusActive, ObligationStatusOngoing, ObligationStatusOverdue:
		return ObligationStatus(trimmed)
	default:
		return ObligationStatusActive
	}
}

// EffectiveStatus applies the settled-obligation invariant on top of a
// canonical status: whenever progress has reached 100% or nothing remains
// on a non-zero principal, the status is Paid no matter what is stored.
func EffectiveStatus(status ObligationStatus, progress float64, total, remaining int64) ObligationStatus {
	if progress >= 100 || (remaining <= 0 && total > 0) {
		return ObligationStatusPaid
	}
	return status
}

// Obligation represents a debt or loan with its derived repayment fields.
// Remaining and Progress are always populated: either from explicit store
// columns or computed from Total and Paid.
type Obligation struct {
	ID         string
	Kind       ObligationKind
	Title      string
	Total      int64
	Paid       int64
	Remaining  int64
	Progress   float64 // 0-100
	Status     ObligationStatus
	DueDate    time.Time
	Purpose    string
	OccurredAt time.Time
}

// NewObligation creates a new Obligation entity with its derived fields
// populated.
func NewObligation(kind ObligationKind, title string, total, paid int64, dueDate time.Time, purpose string, status ObligationStatus) *Obligation {
	if status == "" {
		status = ObligationStatusActive
	}
	o := &Obligation{
		Kind:       kind,
		Title:      title,
		Total:      total,
		Paid:       paid,
		Status:     status,
		DueDate:    dueDate,
		Purpose:    purpose,
		OccurredAt: time.Now(),
	}
	o.Recalculate()
	return o
}

// Recalculate rederives Remaining, Progress, and Status from Total and
// Paid. It is the single derivation path shared by reads and writes so list
// views and insights cannot drift apart.
func (o *Obligation) Recalculate() {
	o.Remaining = o.Total - o.Paid
	if o.Remaining < 0 {
		o.Remaining = 0
	}
	if o.Total > 0 {
		o.Progress = float64(o.Paid) / float64(o.Total) * 100
	} else {
		o.Progress = 0
	}
	if o.Progress > 100 {
		o.Progress = 100
	}
	o.Status = EffectiveStatus(o.Status, o.Progress, o.Total, o.Remaining)
}

// IsSettled reports whether the obligation has been fully repaid.
func (o *Obligation) IsSettled() bool {
	return o.Remaining <= 0 && o.Total > 0
}
