// Package notion implements the document store integration: a typed view of
// the store's loosely-typed property bags and a REST client for the page
// and database endpoints.
package notion

import (
	"strings"
	"time"
)

// Property type discriminators as they appear on the wire.
const (
	TypeNumber   = "number"
	TypeFormula  = "formula"
	TypeRollup   = "rollup"
	TypeSelect   = "select"
	TypeStatus   = "status"
	TypeRichText = "rich_text"
	TypeTitle    = "title"
	TypeRelation = "relation"
	TypeDate     = "date"
	TypeCheckbox = "checkbox"
)

// Property is a tagged union over the store's property value types. Exactly
// one payload field matches the Type discriminator; every other field is
// nil. Columns are user-editable, so a property may be absent, null, or
// carry a different type than the caller expects — the accessors treat all
// three as "no value" and return a safe default instead of failing.
type Property struct {
	ID       string         `json:"id,omitempty"`
	Type     string         `json:"type,omitempty"`
	Number   *float64       `json:"number,omitempty"`
	Formula  *FormulaValue  `json:"formula,omitempty"`
	Rollup   *RollupValue   `json:"rollup,omitempty"`
	Select   *SelectOption  `json:"select,omitempty"`
	Status   *SelectOption  `json:"status,omitempty"`
	RichText []RichTextSpan `json:"rich_text,omitempty"`
	Title    []RichTextSpan `json:"title,omitempty"`
	Relation []RelationRef  `json:"relation,omitempty"`
	Date     *DateValue     `json:"date,omitempty"`
	Checkbox *bool          `json:"checkbox,omitempty"`
}

// FormulaValue is the nested payload of a formula property. It repeats the
// same type-tag scheme one level down.
type FormulaValue struct {
	Type    string   `json:"type,omitempty"`
	Number  *float64 `json:"number,omitempty"`
	String  *string  `json:"string,omitempty"`
	Boolean *bool    `json:"boolean,omitempty"`
}

// RollupValue is the nested payload of a rollup property.
type RollupValue struct {
	Type   string   `json:"type,omitempty"`
	Number *float64 `json:"number,omitempty"`
}

// SelectOption is a select or status choice.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// RichTextSpan is one fragment of a rich text or title value.
type RichTextSpan struct {
	Type      string       `json:"type,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

// TextContent is the writable payload of a rich text span.
type TextContent struct {
	Content string `json:"content"`
}

// RelationRef references another page by id.
type RelationRef struct {
	ID string `json:"id"`
}

// DateValue is a date property payload. Start is an ISO 8601 string, either
// a bare date or a full timestamp with offset.
type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// NumberValue returns the numeric payload of the property, unwrapping one
// level of formula or rollup indirection. Absent, null, or non-numeric
// properties yield 0.
func (p Property) NumberValue() float64 {
	switch p.Type {
	case TypeNumber:
		if p.Number != nil {
			return *p.Number
		}
	case TypeFormula:
		if p.Formula != nil && p.Formula.Number != nil {
			return *p.Formula.Number
		}
	case TypeRollup:
		if p.Rollup != nil && p.Rollup.Number != nil {
			return *p.Rollup.Number
		}
	}
	return 0
}

// TextValue returns the concatenated plain text of a rich_text or title
// property, or "" when there is none.
func (p Property) TextValue() string {
	var spans []RichTextSpan
	switch p.Type {
	case TypeRichText:
		spans = p.RichText
	case TypeTitle:
		spans = p.Title
	default:
		return ""
	}
	var b strings.Builder
	for _, span := range spans {
		if span.PlainText != "" {
			b.WriteString(span.PlainText)
		} else if span.Text != nil {
			b.WriteString(span.Text.Content)
		}
	}
	return b.String()
}

// SelectValue returns the selected option name of a select or status
// property, or "".
func (p Property) SelectValue() string {
	switch p.Type {
	case TypeSelect:
		if p.Select != nil {
			return p.Select.Name
		}
	case TypeStatus:
		if p.Status != nil {
			return p.Status.Name
		}
	}
	return ""
}

// RelationID returns the id of the first related page, or "".
func (p Property) RelationID() string {
	if p.Type != TypeRelation || len(p.Relation) == 0 {
		return ""
	}
	return p.Relation[0].ID
}

// DateStart parses the start of a date property. The second return value is
// false when the property is absent, not a date, or unparseable.
func (p Property) DateStart() (time.Time, bool) {
	if p.Type != TypeDate || p.Date == nil || p.Date.Start == "" {
		return time.Time{}, false
	}
	return parseISODate(p.Date.Start)
}

// parseISODate accepts the two shapes the store emits: a full timestamp
// with offset or a bare date.
func parseISODate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// Builders for write payloads.

// NewNumberProperty builds a writable number property.
func NewNumberProperty(value float64) Property {
	return Property{Number: &value}
}

// NewTitleProperty builds a writable title property.
func NewTitleProperty(text string) Property {
	return Property{Title: []RichTextSpan{{Text: &TextContent{Content: text}}}}
}

// NewRichTextProperty builds a writable rich text property.
func NewRichTextProperty(text string) Property {
	return Property{RichText: []RichTextSpan{{Text: &TextContent{Content: text}}}}
}

// NewSelectProperty builds a writable select property.
func NewSelectProperty(name string) Property {
	return Property{Select: &SelectOption{Name: name}}
}

// NewStatusProperty builds a writable status property.
func NewStatusProperty(name string) Property {
	return Property{Status: &SelectOption{Name: name}}
}

// NewRelationProperty builds a writable single-page relation property.
func NewRelationProperty(pageID string) Property {
	return Property{Relation: []RelationRef{{ID: pageID}}}
}

// NewDateProperty builds a writable date property from a timestamp.
func NewDateProperty(t time.Time) Property {
	return Property{Date: &DateValue{Start: t.Format(time.RFC3339)}}
}
