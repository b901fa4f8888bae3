package persistence

import (
	"time"

	"github.com/duitku/backend/internal/domain/entity"
	"github.com/duitku/backend/internal/integration/notion"
)

// Record timestamps are written at a fixed UTC+7 offset, matching where the
// data is entered and read.
var recordZone = time.FixedZone("WIB", 7*60*60)

// writeDate encodes a timestamp for the store at the fixed offset.
func writeDate(t time.Time) notion.Property {
	return notion.NewDateProperty(t.In(recordZone))
}

// expenseWriteProperties builds the property payload for creating or
// updating an expense. The amount column is written only when it is a plain
// number; formula columns recompute upstream. Relation properties are
// included only when the referenced id resolved — an empty reference would
// corrupt the record.
func expenseWriteProperties(expense *entity.Expense, fields FieldMap) map[string]notion.Property {
	props := map[string]notion.Property{
		"Name":            notion.NewTitleProperty(expense.Title),
		propSubtotal:      notion.NewNumberProperty(float64(expense.Subtotal)),
		propShipping:      notion.NewNumberProperty(float64(expense.Shipping)),
		propServiceFee:    notion.NewNumberProperty(float64(expense.ServiceFee)),
		propAdditionalFee: notion.NewNumberProperty(float64(expense.AdditionalFee)),
		propDiscount:      notion.NewNumberProperty(float64(expense.Discount)),
		propDate:          writeDate(expense.OccurredAt),
	}
	if fields.AmountWritable {
		props[fields.Amount] = notion.NewNumberProperty(float64(expense.ComputeAmount()))
	}
	if expense.CategoryID != "" {
		props[propCategory] = notion.NewRelationProperty(expense.CategoryID)
	}
	if expense.Notes != "" {
		props[propNotes] = notion.NewRichTextProperty(expense.Notes)
	}
	return props
}

// incomeWriteProperties builds the property payload for an income record.
func incomeWriteProperties(income *entity.Income, fields FieldMap) map[string]notion.Property {
	props := map[string]notion.Property{
		"Name":   notion.NewTitleProperty(income.Title),
		propDate: writeDate(income.OccurredAt),
	}
	if fields.AmountWritable {
		props[fields.Amount] = notion.NewNumberProperty(float64(income.Amount))
	}
	if income.SourceID != "" {
		props[propSource] = notion.NewRelationProperty(income.SourceID)
	} else if income.Source != "" {
		props[propSource] = notion.NewSelectProperty(income.Source)
	}
	if income.Notes != "" {
		props[propNotes] = notion.NewRichTextProperty(income.Notes)
	}
	return props
}

// obligationWriteProperties builds the property payload for a debt or loan.
// The status written is the effective status, so a settled obligation lands
// as Paid immediately rather than on the next read.
func obligationWriteProperties(obligation *entity.Obligation, fields FieldMap) map[string]notion.Property {
	props := map[string]notion.Property{
		"Name":      notion.NewTitleProperty(obligation.Title),
		propDueDate: writeDate(obligation.DueDate),
	}
	if fields.AmountWritable {
		props[fields.Amount] = notion.NewNumberProperty(float64(obligation.Total))
	}
	if fields.PaidWritable {
		props[fields.Paid] = notion.NewNumberProperty(float64(obligation.Paid))
	}

	status := entity.EffectiveStatus(obligation.Status, obligation.Progress, obligation.Total, obligation.Remaining)
	if fields.StatusIsSelect {
		props[fields.Status] = notion.NewSelectProperty(string(status))
	} else {
		props[fields.Status] = notion.NewStatusProperty(string(status))
	}

	if obligation.Purpose != "" {
		props[propPurpose] = notion.NewRichTextProperty(obligation.Purpose)
	}
	return props
}
