package notion

import (
	"bytes"
	"encoding/json"
	"time"
)

// Page is one record in a database, keyed by display name.
type Page struct {
	ID          string              `json:"id"`
	CreatedTime time.Time           `json:"created_time"`
	Archived    bool                `json:"archived"`
	Properties  map[string]Property `json:"properties"`
}

// Prop looks up a property by display name, returning a zero Property when
// the column does not exist. The zero Property answers every accessor with
// its default.
func (p *Page) Prop(name string) Property {
	if p == nil || p.Properties == nil {
		return Property{}
	}
	return p.Properties[name]
}

// Database describes a database's schema: property display name to
// definition, in no particular order. PropertyOrder preserves the
// declaration order the store reported, which the schema resolver uses for
// its first-of-type fallback.
type Database struct {
	ID            string
	Properties    map[string]DatabaseProperty
	PropertyOrder []string
}

// DatabaseProperty is one column definition in a database schema.
type DatabaseProperty struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// UnmarshalJSON decodes a database schema while preserving the property
// declaration order. encoding/json maps lose key order, so the order is
// recovered with a second token-level pass over the raw payload.
func (db *Database) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID         string                      `json:"id"`
		Properties map[string]DatabaseProperty `json:"properties"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	db.ID = raw.ID
	db.Properties = raw.Properties
	db.PropertyOrder = propertyKeyOrder(data)
	return nil
}

// propertyKeyOrder returns the keys of the top-level "properties" object in
// the order they appear in the payload.
func propertyKeyOrder(data []byte) []string {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return nil
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil
		}
		key, _ := keyTok.(string)
		if key != "properties" {
			if err := skipValue(dec); err != nil {
				return nil
			}
			continue
		}
		tok, err := dec.Token()
		if err != nil || tok != json.Delim('{') {
			return nil
		}
		var order []string
		for dec.More() {
			nameTok, err := dec.Token()
			if err != nil {
				return nil
			}
			if name, ok := nameTok.(string); ok {
				order = append(order, name)
			}
			if err := skipValue(dec); err != nil {
				return nil
			}
		}
		return order
	}
	return nil
}

// skipValue consumes one complete JSON value from the decoder.
func skipValue(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}
	switch delim {
	case '{':
		for dec.More() {
			if _, err := dec.Token(); err != nil {
				return err
			}
			if err := skipValue(dec); err != nil {
				return err
			}
		}
	case '[':
		for dec.More() {
			if err := skipValue(dec); err != nil {
				return err
			}
		}
	default:
		return nil
	}
	_, err = dec.Token()
	return err
}

// QueryResult is one page of results from a database query.
type QueryResult struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}

// Sort orders database query results.
type Sort struct {
	Property  string `json:"property,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	Direction string `json:"direction"`
}

// QueryRequest is the body of a database query call.
type QueryRequest struct {
	Filter      any    `json:"filter,omitempty"`
	Sorts       []Sort `json:"sorts,omitempty"`
	StartCursor string `json:"start_cursor,omitempty"`
	PageSize    int    `json:"page_size,omitempty"`
}
