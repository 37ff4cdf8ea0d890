package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the production Notion API origin.
const DefaultBaseURL = "https://api.notion.com"

// DefaultVersion is the API version sent with every request.
const DefaultVersion = "2022-06-28"

// MaxQueryPages caps cursor-following in QueryDatabaseAll. With the default
// page size of 100 this allows 500 records per database, far beyond what the
// content databases hold.
const MaxQueryPages = 5

// Config holds client settings.
type Config struct {
	APIKey  string
	BaseURL string        // defaults to DefaultBaseURL
	Version string        // defaults to DefaultVersion
	Timeout time.Duration // defaults to 10s
}

// Client issues authenticated requests against the Notion API.
type Client struct {
	apiKey     string
	baseURL    string
	version    string
	httpClient *http.Client
}

// NewClient creates a Notion API client.
func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := cfg.Version
	if version == "" {
		version = DefaultVersion
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		version: version,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// APIError is a non-2xx response from the Notion API.
type APIError struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("notion: upstream status %d (%s): %s", e.Status, e.Code, e.Message)
}

// QueryDatabase fetches a single page of results for a database query.
func (c *Client) QueryDatabase(ctx context.Context, databaseID string, query Query) (*QueryResult, error) {
	body, err := json.Marshal(query)
	if err != nil {
		return nil, fmt.Errorf("notion: encode query: %w", err)
	}

	url := fmt.Sprintf("%s/v1/databases/%s/query", c.baseURL, databaseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("notion: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("notion: query database: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("notion: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: string(respBody)}
		// The API reports a machine-readable code and message; fall back to
		// the raw body when the error payload itself is malformed.
		var parsed struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(respBody, &parsed); err == nil && parsed.Message != "" {
			apiErr.Code = parsed.Code
			apiErr.Message = parsed.Message
		}
		return nil, apiErr
	}

	var result QueryResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("notion: decode response: %w", err)
	}
	return &result, nil
}

// QueryDatabaseAll fetches all results for a database query, following
// continuation cursors up to MaxQueryPages pages.
func (c *Client) QueryDatabaseAll(ctx context.Context, databaseID string, query Query) ([]Page, error) {
	var pages []Page
	for i := 0; i < MaxQueryPages; i++ {
		result, err := c.QueryDatabase(ctx, databaseID, query)
		if err != nil {
			return nil, err
		}
		pages = append(pages, result.Results...)
		if !result.HasMore || result.NextCursor == "" {
			return pages, nil
		}
		query.StartCursor = result.NextCursor
	}
	return pages, nil
}
