package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/duitku/backend/internal/domain/entity"
)

func TestExpenseWriteProperties(t *testing.T) {
	expense := &entity.Expense{
		Title:      "Belanja",
		Subtotal:   100000,
		Shipping:   15000,
		Discount:   5000,
		OccurredAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}

	t.Run("writes recomputed amount to writable column", func(t *testing.T) {
		props := expenseWriteProperties(expense, DefaultFieldMap())

		amount, ok := props["Amount"]
		if !ok {
			t.Fatal("expected amount property")
		}
		if amount.Number == nil || *amount.Number != 110000 {
			t.Errorf("expected 110000, got %+v", amount.Number)
		}
	})

	t.Run("skips amount for formula column", func(t *testing.T) {
		fields := DefaultFieldMap()
		fields.AmountWritable = false

		props := expenseWriteProperties(expense, fields)

		if _, ok := props["Amount"]; ok {
			t.Error("expected no amount property for a computed column")
		}
	})

	t.Run("omits unresolved relation and empty notes", func(t *testing.T) {
		props := expenseWriteProperties(expense, DefaultFieldMap())

		if _, ok := props["Category"]; ok {
			t.Error("expected no category relation for empty id")
		}
		if _, ok := props["Notes"]; ok {
			t.Error("expected no notes property")
		}
	})

	t.Run("includes resolved relation", func(t *testing.T) {
		withCategory := *expense
		withCategory.CategoryID = "cat-1"

		props := expenseWriteProperties(&withCategory, DefaultFieldMap())

		rel, ok := props["Category"]
		if !ok || len(rel.Relation) != 1 || rel.Relation[0].ID != "cat-1" {
			t.Errorf("expected relation to cat-1, got %+v", rel)
		}
	})

	t.Run("dates carry the +07:00 offset", func(t *testing.T) {
		props := expenseWriteProperties(expense, DefaultFieldMap())

		date, ok := props["Date"]
		if !ok || date.Date == nil {
			t.Fatal("expected date property")
		}
		if !strings.HasSuffix(date.Date.Start, "+07:00") {
			t.Errorf("expected +07:00 offset, got %q", date.Date.Start)
		}
		// 09:00 UTC is 16:00 in the write zone.
		if !strings.Contains(date.Date.Start, "T16:00:00") {
			t.Errorf("expected 16:00 local time, got %q", date.Date.Start)
		}
	})
}

func TestIncomeWriteProperties(t *testing.T) {
	t.Run("relation source preferred over select", func(t *testing.T) {
		income := &entity.Income{Title: "Gaji", Amount: 8000000, SourceID: "src-1", Source: "Salary"}

		props := incomeWriteProperties(income, DefaultFieldMap())

		src, ok := props["Source"]
		if !ok || len(src.Relation) != 1 || src.Relation[0].ID != "src-1" {
			t.Errorf("expected relation to src-1, got %+v", src)
		}
	})

	t.Run("select source used when no relation id", func(t *testing.T) {
		income := &entity.Income{Title: "Freelance", Amount: 1500000, Source: "Side Gig"}

		props := incomeWriteProperties(income, DefaultFieldMap())

		src, ok := props["Source"]
		if !ok || src.Select == nil || src.Select.Name != "Side Gig" {
			t.Errorf("expected select Side Gig, got %+v", src)
		}
	})
}

func TestObligationWriteProperties(t *testing.T) {
	fields := FieldMap{
		Amount: "Total", AmountWritable: true,
		Paid: "Paid", PaidWritable: true,
		Status: "Status",
	}

	t.Run("writes effective status for settled obligation", func(t *testing.T) {
		o := entity.NewObligation(entity.ObligationKindDebt, "Motor", 1000000, 1000000, time.Now(), "", entity.ObligationStatusActive)

		props := obligationWriteProperties(o, fields)

		status, ok := props["Status"]
		if !ok || status.Status == nil {
			t.Fatal("expected status property")
		}
		if status.Status.Name != string(entity.ObligationStatusPaid) {
			t.Errorf("expected Paid, got %q", status.Status.Name)
		}
	})

	t.Run("select status column gets a select payload", func(t *testing.T) {
		selectFields := fields
		selectFields.StatusIsSelect = true
		o := entity.NewObligation(entity.ObligationKindLoan, "Teman", 500000, 0, time.Now(), "", entity.ObligationStatusActive)

		props := obligationWriteProperties(o, selectFields)

		status := props["Status"]
		if status.Select == nil || status.Select.Name != string(entity.ObligationStatusActive) {
			t.Errorf("expected select Active, got %+v", status)
		}
		if status.Status != nil {
			t.Error("expected no status payload on a select column")
		}
	})

	t.Run("computed paid column is not written", func(t *testing.T) {
		roFields := fields
		roFields.PaidWritable = false
		o := entity.NewObligation(entity.ObligationKindDebt, "KPR", 2000000, 500000, time.Now(), "", entity.ObligationStatusActive)

		props := obligationWriteProperties(o, roFields)

		if _, ok := props["Paid"]; ok {
			t.Error("expected no paid property for a computed column")
		}
		if _, ok := props["Total"]; !ok {
			t.Error("expected total property")
		}
	})
}
