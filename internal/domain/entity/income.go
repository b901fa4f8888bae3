package entity

import "time"

// Income represents a single earning record.
type Income struct {
	ID         string
	Title      string
	Amount     int64
	SourceID   string
	Source     string
	Notes      string
	OccurredAt time.Time
}
