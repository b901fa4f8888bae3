package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	domainerror "github.com/duitku/backend/internal/domain/error"
)

// Client is a minimal REST client for the document store's page and
// database endpoints. It performs no retries and defines no timeout of its
// own beyond the injected HTTP client; failures surface as typed
// StoreErrors for the operation boundary to handle.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	version    string
}

// NewClient creates a new document store client.
func NewClient(baseURL, token, version string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		token:      token,
		version:    version,
	}
}

// apiError is the store's error payload.
type apiError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// CreatePage creates a new page in the given database.
func (c *Client) CreatePage(ctx context.Context, databaseID string, properties map[string]Property) (*Page, error) {
	body := map[string]any{
		"parent":     map[string]string{"database_id": databaseID},
		"properties": properties,
	}
	var page Page
	if err := c.do(ctx, http.MethodPost, "/pages", body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// QueryDatabase fetches one page of results from a database query. Callers
// wanting the whole collection loop on HasMore/NextCursor.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, req QueryRequest) (*QueryResult, error) {
	var result QueryResult
	path := fmt.Sprintf("/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RetrievePage fetches a single page by id. Archived pages are still
// retrievable here even though queries exclude them.
func (c *Client) RetrievePage(ctx context.Context, pageID string) (*Page, error) {
	var page Page
	if err := c.do(ctx, http.MethodGet, "/pages/"+pageID, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdatePage replaces the given properties on a page.
func (c *Client) UpdatePage(ctx context.Context, pageID string, properties map[string]Property) (*Page, error) {
	body := map[string]any{"properties": properties}
	var page Page
	if err := c.do(ctx, http.MethodPatch, "/pages/"+pageID, body, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// ArchivePage soft-deletes a page. The page disappears from database
// queries but remains retrievable by id.
func (c *Client) ArchivePage(ctx context.Context, pageID string) error {
	body := map[string]any{"archived": true}
	return c.do(ctx, http.MethodPatch, "/pages/"+pageID, body, nil)
}

// RetrieveDatabase fetches a database's schema for property-name
// resolution.
func (c *Client) RetrieveDatabase(ctx context.Context, databaseID string) (*Database, error) {
	var db Database
	if err := c.do(ctx, http.MethodGet, "/databases/"+databaseID, nil, &db); err != nil {
		return nil, err
	}
	return &db, nil
}

// do executes one request against the store and decodes the response into
// out. Non-2xx responses become StoreErrors.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domainerror.StoreError{
			StatusCode: 0,
			Message:    err.Error(),
			Err:        domainerror.ErrStoreUnavailable,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr apiError
		data, _ := io.ReadAll(resp.Body)
		if err := json.Unmarshal(data, &apiErr); err != nil || apiErr.Message == "" {
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return domainerror.NewStoreError(resp.StatusCode, apiErr.Code, apiErr.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode store response: %w", err)
	}
	return nil
}
