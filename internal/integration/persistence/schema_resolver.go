package persistence

import (
	"context"
	"log/slog"
	"sync"

	"github.com/duitku/backend/internal/integration/notion"
)

// Candidate property names per logical field, in resolution order. The
// store's columns are user-renamable, and real schemas have drifted through
// several namings — including trailing-space variants that are invisible in
// the store's UI.
var (
	amountCandidates    = []string{"Total", "Amount", "Principal", "Nominal", "Jumlah"}
	paidCandidates      = []string{"Paid", "Paid ", "Amount Paid", "Dibayar"}
	remainingCandidates = []string{"Remaining", "Remaining ", "Sisa"}
	progressCandidates  = []string{"Progress", "Progress ", "% Progress"}
	statusCandidates    = []string{"Status", "Status "}
)

// Fixed fallback names when no candidate resolves and the schema has no
// property of the expected type at all.
const (
	defaultAmountName = "Amount"
	defaultPaidName   = "Paid"
	defaultStatusName = "Status"
)

// FieldMap is the resolved property-name mapping for one database.
// Remaining and Progress are empty when the schema has no such column; the
// normalizer then derives those values. The writable flags record whether
// the resolved column is a plain number (formula and rollup columns are
// computed upstream and must not be written).
type FieldMap struct {
	Amount         string
	AmountWritable bool
	Paid           string
	PaidWritable   bool
	Remaining      string
	Progress       string
	Status         string
	StatusIsSelect bool
}

// DefaultFieldMap is the degraded mapping used when schema introspection
// itself fails.
func DefaultFieldMap() FieldMap {
	return FieldMap{
		Amount:         defaultAmountName,
		AmountWritable: true,
		Paid:           defaultPaidName,
		PaidWritable:   true,
		Status:         defaultStatusName,
	}
}

// SchemaResolver discovers which property names hold each logical field for
// a database, caching the result for the life of the process. The cache is
// write-once per database id: concurrent first resolutions may duplicate
// the introspection call, and the overwrite is idempotent.
type SchemaResolver struct {
	store RecordStore

	mu    sync.RWMutex
	cache map[string]FieldMap
}

// NewSchemaResolver creates a new schema resolver backed by the given store.
func NewSchemaResolver(store RecordStore) *SchemaResolver {
	return &SchemaResolver{
		store: store,
		cache: make(map[string]FieldMap),
	}
}

// Resolve returns the field mapping for a database, introspecting the
// schema on first use. Resolution never fails an operation: when the
// introspection call errors, the fixed default mapping is returned (and not
// cached, so a later call can recover).
func (r *SchemaResolver) Resolve(ctx context.Context, databaseID string) FieldMap {
	r.mu.RLock()
	cached, ok := r.cache[databaseID]
	r.mu.RUnlock()
	if ok {
		return cached
	}

	db, err := r.store.RetrieveDatabase(ctx, databaseID)
	if err != nil {
		slog.Warn("schema introspection failed, using default field names",
			"database_id", databaseID,
			"error", err,
		)
		return DefaultFieldMap()
	}

	fields := resolveFields(db)

	r.mu.Lock()
	r.cache[databaseID] = fields
	r.mu.Unlock()

	return fields
}

// resolveFields builds a FieldMap from a schema.
func resolveFields(db *notion.Database) FieldMap {
	amount, amountType := resolveRequired(db, amountCandidates, defaultAmountName)
	paid, paidType := resolveRequired(db, paidCandidates, defaultPaidName)
	status, statusType := resolveStatus(db)

	return FieldMap{
		Amount:         amount,
		AmountWritable: amountType != notion.TypeFormula && amountType != notion.TypeRollup,
		Paid:           paid,
		PaidWritable:   paidType != notion.TypeFormula && paidType != notion.TypeRollup,
		Remaining:      resolveOptional(db, remainingCandidates),
		Progress:       resolveOptional(db, progressCandidates),
		Status:         status,
		StatusIsSelect: statusType == notion.TypeSelect,
	}
}

// resolveRequired picks the first candidate present with a numeric-capable
// type, then the first numeric-capable property in declaration order, then
// the fixed default. It also returns the resolved column's type ("" when
// defaulted).
func resolveRequired(db *notion.Database, candidates []string, fallback string) (string, string) {
	for _, name := range candidates {
		if prop, ok := db.Properties[name]; ok && isNumericType(prop.Type) {
			return name, prop.Type
		}
	}
	for _, name := range db.PropertyOrder {
		if prop, ok := db.Properties[name]; ok && isNumericType(prop.Type) {
			return name, prop.Type
		}
	}
	return fallback, ""
}

// resolveOptional only accepts an exact candidate match; the declaration
// order fallback would bind the field to the amount column, so a miss means
// "derive it".
func resolveOptional(db *notion.Database, candidates []string) string {
	for _, name := range candidates {
		if prop, ok := db.Properties[name]; ok && isNumericType(prop.Type) {
			return name
		}
	}
	return ""
}

// resolveStatus picks the status column, tolerating a select column used in
// place of a status one.
func resolveStatus(db *notion.Database) (string, string) {
	for _, name := range statusCandidates {
		prop, ok := db.Properties[name]
		if !ok {
			continue
		}
		if prop.Type == notion.TypeStatus || prop.Type == notion.TypeSelect {
			return name, prop.Type
		}
	}
	return defaultStatusName, notion.TypeStatus
}

// isNumericType reports whether the column type can yield a number.
func isNumericType(t string) bool {
	return t == notion.TypeNumber || t == notion.TypeFormula || t == notion.TypeRollup
}
