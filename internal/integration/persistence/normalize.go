package persistence

import (
	"math"
	"time"

	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/notion"
)

// Fixed property names. Unlike the amount/paid columns these have never
// drifted, so they bypass the schema resolver.
const (
	propDate          = "Date"
	propCategory      = "Category"
	propSource        = "Source"
	propNotes         = "Notes"
	propSubtotal      = "Subtotal"
	propShipping      = "Shipping"
	propServiceFee    = "Service Fee"
	propAdditionalFee = "Additional Fee"
	propDiscount      = "Discount"
	propDueDate       = "Due Date"
	propPurpose       = "Purpose"
)

// toRupiah converts a store number to whole rupiah.
func toRupiah(v float64) int64 {
	return int64(math.Round(v))
}

// titleOf extracts the page title. The title column's display name varies
// across databases, so it is located by type. Missing titles normalize to
// the default.
func titleOf(page *notion.Page) string {
	for _, prop := range page.Properties {
		if prop.Type == notion.TypeTitle {
			if text := prop.TextValue(); text != "" {
				return text
			}
		}
	}
	return entity.DefaultTitle
}

// occurredAtOf resolves the record timestamp: the date column, else the
// store's creation time, else now.
func occurredAtOf(page *notion.Page, now time.Time) time.Time {
	if t, ok := page.Prop(propDate).DateStart(); ok {
		return t
	}
	if !page.CreatedTime.IsZero() {
		return page.CreatedTime
	}
	return now
}

// normalizeExpense maps one raw expense page into the internal entity.
// A malformed page yields an entity full of defaults, never an error; one
// bad record must not abort a batch.
func normalizeExpense(page *notion.Page, fields FieldMap, now time.Time) *entity.Expense {
	expense := &entity.Expense{
		ID:            page.ID,
		Title:         titleOf(page),
		Amount:        toRupiah(page.Prop(fields.Amount).NumberValue()),
		Subtotal:      toRupiah(page.Prop(propSubtotal).NumberValue()),
		Shipping:      toRupiah(page.Prop(propShipping).NumberValue()),
		ServiceFee:    toRupiah(page.Prop(propServiceFee).NumberValue()),
		AdditionalFee: toRupiah(page.Prop(propAdditionalFee).NumberValue()),
		Discount:      toRupiah(page.Prop(propDiscount).NumberValue()),
		CategoryID:    page.Prop(propCategory).RelationID(),
		Category:      page.Prop(propCategory).SelectValue(),
		Notes:         page.Prop(propNotes).TextValue(),
		OccurredAt:    occurredAtOf(page, now),
	}
	if expense.Amount == 0 {
		expense.Amount = expense.ComputeAmount()
	}
	return expense
}

// normalizeIncome maps one raw income page into the internal entity.
func normalizeIncome(page *notion.Page, fields FieldMap, now time.Time) *entity.Income {
	return &entity.Income{
		ID:         page.ID,
		Title:      titleOf(page),
		Amount:     toRupiah(page.Prop(fields.Amount).NumberValue()),
		SourceID:   page.Prop(propSource).RelationID(),
		Source:     page.Prop(propSource).SelectValue(),
		Notes:      page.Prop(propNotes).TextValue(),
		OccurredAt: occurredAtOf(page, now),
	}
}

// normalizeObligation maps one raw debt or loan page into the internal
// entity, deriving remaining, progress, and status.
func normalizeObligation(page *notion.Page, kind entity.ObligationKind, fields FieldMap, now time.Time) *entity.Obligation {
	total := toRupiah(page.Prop(fields.Amount).NumberValue())
	paid := toRupiah(page.Prop(fields.Paid).NumberValue())

	// An explicit remaining column is trusted over the derivation, but both
	// paths clamp at zero.
	var remaining int64
	if fields.Remaining != "" {
		remaining = toRupiah(page.Prop(fields.Remaining).NumberValue())
	} else {
		remaining = total - paid
	}
	if remaining < 0 {
		remaining = 0
	}

	// An explicit progress column may hold a 0-1 fraction or a 0-100
	// percentage. Values <= 1 are treated as fractions; a true "1%" is
	// misread as 100%. Known limitation, kept for compatibility with
	// existing data.
	var progress float64
	if fields.Progress != "" {
		progress = page.Prop(fields.Progress).NumberValue()
		if progress <= 1 {
			progress *= 100
		}
	} else if total > 0 {
		progress = float64(paid) / float64(total) * 100
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	status := entity.CanonicalStatus(page.Prop(fields.Status).SelectValue())
	status = entity.EffectiveStatus(status, progress, total, remaining)

	dueDate, ok := page.Prop(propDueDate).DateStart()
	if !ok {
		dueDate = now
	}

	return &entity.Obligation{
		ID:         page.ID,
		Kind:       kind,
		Title:      titleOf(page),
		Total:      total,
		Paid:       paid,
		Remaining:  remaining,
		Progress:   progress,
		Status:     status,
		DueDate:    dueDate,
		Purpose:    page.Prop(propPurpose).TextValue(),
		OccurredAt: occurredAtOf(page, now),
	}
}
