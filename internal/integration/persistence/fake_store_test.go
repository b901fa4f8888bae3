package persistence

import (
	"context"
	"errors"

	"github.com/duitku/backend/internal/integration/notion"
)

// fakeStore is an in-memory RecordStore for tests. Query results are
// served from a queue so pagination can be scripted.
type fakeStore struct {
	database      *notion.Database
	databaseErr   error
	databaseCalls int

	queryResults []*notion.QueryResult
	queryErr     error
	queryCalls   int
	lastQuery    notion.QueryRequest

	pages       map[string]*notion.Page
	retrieveErr error

	createdPage     *notion.Page
	createErr       error
	lastWriteProps  map[string]notion.Property
	lastWritePageID string

	archived []string
}

func (f *fakeStore) CreatePage(_ context.Context, _ string, properties map[string]notion.Property) (*notion.Page, error) {
	f.lastWriteProps = properties
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createdPage != nil {
		return f.createdPage, nil
	}
	return &notion.Page{ID: "created-page"}, nil
}

func (f *fakeStore) QueryDatabase(_ context.Context, _ string, req notion.QueryRequest) (*notion.QueryResult, error) {
	f.lastQuery = req
	f.queryCalls++
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	if len(f.queryResults) == 0 {
		return &notion.QueryResult{}, nil
	}
	result := f.queryResults[0]
	f.queryResults = f.queryResults[1:]
	return result, nil
}

func (f *fakeStore) RetrievePage(_ context.Context, pageID string) (*notion.Page, error) {
	if f.retrieveErr != nil {
		return nil, f.retrieveErr
	}
	page, ok := f.pages[pageID]
	if !ok {
		return nil, errors.New("page not found")
	}
	return page, nil
}

func (f *fakeStore) UpdatePage(_ context.Context, pageID string, properties map[string]notion.Property) (*notion.Page, error) {
	f.lastWritePageID = pageID
	f.lastWriteProps = properties
	if page, ok := f.pages[pageID]; ok {
		return page, nil
	}
	return &notion.Page{ID: pageID}, nil
}

func (f *fakeStore) ArchivePage(_ context.Context, pageID string) error {
	f.archived = append(f.archived, pageID)
	return nil
}

func (f *fakeStore) RetrieveDatabase(_ context.Context, _ string) (*notion.Database, error) {
	f.databaseCalls++
	if f.databaseErr != nil {
		return nil, f.databaseErr
	}
	return f.database, nil
}

var _ RecordStore = (*fakeStore)(nil)

// Property constructors for building fake pages with read-shaped payloads.

func numberProp(v float64) notion.Property {
	return notion.Property{Type: notion.TypeNumber, Number: &v}
}

func formulaProp(v float64) notion.Property {
	return notion.Property{Type: notion.TypeFormula, Formula: &notion.FormulaValue{Type: "number", Number: &v}}
}

func titleProp(text string) notion.Property {
	return notion.Property{Type: notion.TypeTitle, Title: []notion.RichTextSpan{{PlainText: text}}}
}

func richTextProp(text string) notion.Property {
	return notion.Property{Type: notion.TypeRichText, RichText: []notion.RichTextSpan{{PlainText: text}}}
}

func selectProp(name string) notion.Property {
	return notion.Property{Type: notion.TypeSelect, Select: &notion.SelectOption{Name: name}}
}

func statusProp(name string) notion.Property {
	return notion.Property{Type: notion.TypeStatus, Status: &notion.SelectOption{Name: name}}
}

func relationProp(pageID string) notion.Property {
	return notion.Property{Type: notion.TypeRelation, Relation: []notion.RelationRef{{ID: pageID}}}
}

func dateProp(start string) notion.Property {
	return notion.Property{Type: notion.TypeDate, Date: &notion.DateValue{Start: start}}
}

// schemaOf builds a Database whose declaration order follows the given
// name/type pairs.
func schemaOf(pairs ...string) *notion.Database {
	db := &notion.Database{
		ID:         "db-test",
		Properties: make(map[string]notion.DatabaseProperty),
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		name, typ := pairs[i], pairs[i+1]
		db.Properties[name] = notion.DatabaseProperty{Name: name, Type: typ}
		db.PropertyOrder = append(db.PropertyOrder, name)
	}
	return db
}
