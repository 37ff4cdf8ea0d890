package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snjhope/content-api/internal/config"
	"github.com/snjhope/content-api/internal/notion"
	"github.com/snjhope/content-api/internal/service"
)

// stubStore scripts the content store behind a real ContentService
type stubStore struct {
	queryDatabaseAllFunc func(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error)
}

func (s *stubStore) QueryDatabaseAll(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error) {
	return s.queryDatabaseAllFunc(ctx, databaseID, query)
}

func newContentHandler(store service.ContentStore) *ContentHandler {
	svc := service.NewContentService(service.ContentServiceConfig{
		Store: store,
		Databases: config.DatabaseIDs{
			Notices:    "db-notices",
			Activities: "db-activities",
			Programs:   "db-programs",
			Business:   "db-business",
			Banners:    "db-banners",
			About:      "db-about",
		},
	})
	return NewContentHandler(svc)
}

func publishedPage(id, title string) notion.Page {
	published := true
	return notion.Page{
		ID: id,
		Properties: map[string]notion.Property{
			"Title":     {Type: "title", Title: []notion.RichText{{PlainText: title}}},
			"Published": {Type: "checkbox", Checkbox: &published},
		},
	}
}

// ============================================================================
// List Endpoint Tests
// ============================================================================

func TestNotices_ReturnsDataEnvelope(t *testing.T) {
	t.Parallel()

	handler := newContentHandler(&stubStore{
		queryDatabaseAllFunc: func(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error) {
			return []notion.Page{publishedPage("n1", "공지 A")}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/notices", nil)
	rr := httptest.NewRecorder()

	handler.Notices(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type 'application/json', got %q", ct)
	}

	var response struct {
		Data []struct {
			ID       string `json:"id"`
			Title    string `json:"title"`
			Category string `json:"category"`
		} `json:"data"`
		Links map[string]string `json:"_links"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Data) != 1 {
		t.Fatalf("expected 1 notice, got %d", len(response.Data))
	}
	if response.Data[0].ID != "n1" || response.Data[0].Title != "공지 A" {
		t.Errorf("unexpected notice: %+v", response.Data[0])
	}
	if response.Data[0].Category != "일반" {
		t.Errorf("expected default category '일반', got %q", response.Data[0].Category)
	}
	if response.Links["self"] != "/v1/notices" {
		t.Errorf("expected self link '/v1/notices', got %q", response.Links["self"])
	}
}

func TestNotices_SetsNoStoreCacheControl(t *testing.T) {
	t.Parallel()

	handler := newContentHandler(&stubStore{
		queryDatabaseAllFunc: func(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/notices", nil)
	rr := httptest.NewRecorder()

	handler.Notices(rr, req)

	if cc := rr.Header().Get("Cache-Control"); cc != "no-store" {
		t.Errorf("expected Cache-Control 'no-store', got %q", cc)
	}
}

func TestNotices_EmptyStore_ReturnsEmptyArray(t *testing.T) {
	t.Parallel()

	handler := newContentHandler(&stubStore{
		queryDatabaseAllFunc: func(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/notices", nil)
	rr := httptest.NewRecorder()

	handler.Notices(rr, req)

	var response struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// Empty lists serialize as [], never null.
	if string(response.Data) != "[]" {
		t.Errorf("expected data '[]', got %q", string(response.Data))
	}
}

func TestNotices_StoreFailure_Returns502Problem(t *testing.T) {
	t.Parallel()

	handler := newContentHandler(&stubStore{
		queryDatabaseAllFunc: func(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error) {
			return nil, &notion.APIError{Status: 429, Code: "rate_limited", Message: "slow down"}
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/notices", nil)
	rr := httptest.NewRecorder()

	handler.Notices(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", ct)
	}

	var problem struct {
		Status         int `json:"status"`
		UpstreamStatus int `json:"upstream_status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if problem.Status != http.StatusBadGateway {
		t.Errorf("expected problem status 502, got %d", problem.Status)
	}
	if problem.UpstreamStatus != 429 {
		t.Errorf("expected upstream_status 429, got %d", problem.UpstreamStatus)
	}
}

func TestBusiness_PassesCategoryQueryParam(t *testing.T) {
	t.Parallel()

	var gotFilter *notion.Filter
	handler := newContentHandler(&stubStore{
		queryDatabaseAllFunc: func(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error) {
			gotFilter = query.Filter
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/business?category=아동복지", nil)
	rr := httptest.NewRecorder()

	handler.Business(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if gotFilter == nil || len(gotFilter.And) != 2 {
		t.Fatalf("expected compound filter with category condition, got %+v", gotFilter)
	}
	if gotFilter.And[1].Select == nil || gotFilter.And[1].Select.Equals != "아동복지" {
		t.Errorf("expected category condition '아동복지', got %+v", gotFilter.And[1])
	}
}

func TestAbout_ReturnsProfileObject(t *testing.T) {
	t.Parallel()

	handler := newContentHandler(&stubStore{
		queryDatabaseAllFunc: func(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/about", nil)
	rr := httptest.NewRecorder()

	handler.About(rr, req)

	var response struct {
		Data struct {
			Image    *string `json:"image"`
			Name     string  `json:"name"`
			Position string  `json:"position"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if response.Data.Image != nil {
		t.Errorf("expected null image, got %q", *response.Data.Image)
	}
	if response.Data.Name != "윤동성" {
		t.Errorf("expected default name, got %q", response.Data.Name)
	}
	if response.Data.Position != "이사장" {
		t.Errorf("expected default position, got %q", response.Data.Position)
	}
}

// ============================================================================
// Health Tests
// ============================================================================

func TestHealth_ReturnsOK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", body["status"])
	}
}
