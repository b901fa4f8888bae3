package notion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerror "github.com/duitku/backend/internal/domain/error"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "secret-token", "2022-06-28", 5*time.Second)
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	var gotAuth, gotVersion string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		w.Write([]byte(`{"id":"page-1"}`))
	})

	if _, err := client.RetrievePage(context.Background(), "page-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Errorf("expected bearer token header, got %q", gotAuth)
	}
	if gotVersion != "2022-06-28" {
		t.Errorf("expected version header, got %q", gotVersion)
	}
}

func TestClient_CreatePage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/pages" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Write([]byte(`{"id":"new-page","properties":{"Total":{"type":"number","number":50000}}}`))
	})

	page, err := client.CreatePage(context.Background(), "db-1", map[string]Property{
		"Total": NewNumberProperty(50000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.ID != "new-page" {
		t.Errorf("expected new-page, got %q", page.ID)
	}
	if got := page.Prop("Total").NumberValue(); got != 50000 {
		t.Errorf("expected 50000, got %v", got)
	}
}

func TestClient_QueryDatabase(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/databases/db-1/query" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"results":[{"id":"p1"},{"id":"p2"}],"has_more":true,"next_cursor":"cur-2"}`))
	})

	result, err := client.QueryDatabase(context.Background(), "db-1", QueryRequest{PageSize: 100})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(result.Results))
	}
	if !result.HasMore || result.NextCursor == nil || *result.NextCursor != "cur-2" {
		t.Errorf("expected has_more with cursor cur-2, got %+v", result)
	}
}

func TestClient_ErrorClassification(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		sentinel error
	}{
		{"404 maps to record not found", http.StatusNotFound, `{"status":404,"code":"object_not_found","message":"Could not find page"}`, domainerror.ErrRecordNotFound},
		{"429 maps to rate limited", http.StatusTooManyRequests, `{"status":429,"code":"rate_limited","message":"Rate limited"}`, domainerror.ErrStoreRateLimited},
		{"401 maps to unauthorized", http.StatusUnauthorized, `{"status":401,"code":"unauthorized","message":"API token is invalid"}`, domainerror.ErrStoreUnauthorized},
		{"500 maps to unavailable", http.StatusInternalServerError, `not even json`, domainerror.ErrStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := client.RetrievePage(context.Background(), "page-1")
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("expected sentinel %v, got %v", tt.sentinel, err)
			}
			var storeErr *domainerror.StoreError
			if !errors.As(err, &storeErr) {
				t.Fatal("expected StoreError")
			}
			if storeErr.StatusCode != tt.status {
				t.Errorf("expected status %d, got %d", tt.status, storeErr.StatusCode)
			}
		})
	}
}

func TestClient_NetworkErrorIsUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL, "token", "2022-06-28", time.Second)
	_, err := client.RetrievePage(context.Background(), "page-1")
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, domainerror.ErrStoreUnavailable) {
		t.Errorf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestClient_ArchivePage(t *testing.T) {
	var gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("expected PATCH, got %s", r.Method)
		}
		buf := make([]byte, r.ContentLength)
		r.Body.Read(buf)
		gotBody = string(buf)
		w.Write([]byte(`{"id":"page-1","archived":true}`))
	})

	if err := client.ArchivePage(context.Background(), "page-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != `{"archived":true}` {
		t.Errorf("unexpected body %q", gotBody)
	}
}

func TestDatabase_UnmarshalPreservesDeclarationOrder(t *testing.T) {
	payload := `{
		"id": "db-1",
		"title": [{"plain_text": "Debts"}],
		"properties": {
			"Nominal": {"id": "a", "name": "Nominal", "type": "number"},
			"Paid ": {"id": "b", "name": "Paid ", "type": "number"},
			"Status": {"id": "c", "name": "Status", "type": "status"},
			"Name": {"id": "d", "name": "Name", "type": "title"}
		}
	}`

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})

	db, err := client.RetrieveDatabase(context.Background(), "db-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.ID != "db-1" {
		t.Errorf("expected db-1, got %q", db.ID)
	}
	if len(db.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(db.Properties))
	}
	if db.Properties["Paid "].Type != "number" {
		t.Errorf("expected trailing-space key to survive, got %+v", db.Properties)
	}
	want := []string{"Nominal", "Paid ", "Status", "Name"}
	if len(db.PropertyOrder) != len(want) {
		t.Fatalf("expected order %v, got %v", want, db.PropertyOrder)
	}
	for i, name := range want {
		if db.PropertyOrder[i] != name {
			t.Errorf("position %d: expected %q, got %q", i, name, db.PropertyOrder[i])
		}
	}
}
