// Package entity defines the core business entities for the domain layer.
package entity

import "time"

// DefaultTitle is used when a record has no title upstream.
const DefaultTitle = "Untitled"

// Expense represents a single spending record.
// All amounts are whole rupiah; the record total is always derived from
// its components, never set directly.
type Expense struct {
	ID            string
	Title         string
	Amount        int64
	Subtotal      int64
	Shipping      int64
	ServiceFee    int64
	AdditionalFee int64
	Discount      int64
	CategoryID    string
	Category      string
	Notes         string
	OccurredAt    time.Time
}

// ComputeAmount returns the expense total derived from its components.
func (e *Expense) ComputeAmount() int64 {
	return e.Subtotal + e.Shipping + e.ServiceFee + e.AdditionalFee - e.Discount
}
