package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/snjhope/content-api/internal/service"
)

func newRelayHandler(allowedHosts []string) *RelayHandler {
	return NewRelayHandler(service.NewRelayService(service.RelayServiceConfig{
		AllowedHosts: allowedHosts,
	}))
}

// ============================================================================
// Relay Tests
// ============================================================================

func TestRelay_MissingURLParam_Returns400(t *testing.T) {
	t.Parallel()

	handler := newRelayHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/assets/relay", nil)
	rr := httptest.NewRecorder()

	handler.Relay(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected Content-Type 'application/problem+json', got %q", ct)
	}
}

func TestRelay_StreamsAssetWithImmutableCache(t *testing.T) {
	t.Parallel()

	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(payload)
	}))
	defer origin.Close()

	handler := newRelayHandler(nil)

	target := "/v1/assets/relay?url=" + url.QueryEscape(origin.URL+"/photo.jpg")
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()

	handler.Relay(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if cc := rr.Header().Get("Cache-Control"); cc != RelayCacheControl {
		t.Errorf("expected Cache-Control %q, got %q", RelayCacheControl, cc)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "image/jpeg" {
		t.Errorf("expected Content-Type 'image/jpeg', got %q", ct)
	}
	if !bytes.Equal(rr.Body.Bytes(), payload) {
		t.Errorf("relayed bytes differ from origin bytes")
	}
}

func TestRelay_InvalidURL_Returns400(t *testing.T) {
	t.Parallel()

	handler := newRelayHandler(nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/assets/relay?url=not-a-url", nil)
	rr := httptest.NewRecorder()

	handler.Relay(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rr.Code)
	}
}

func TestRelay_DisallowedHost_Returns403(t *testing.T) {
	t.Parallel()

	handler := newRelayHandler([]string{"amazonaws.com"})

	target := "/v1/assets/relay?url=" + url.QueryEscape("https://evil.example.com/a.jpg")
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()

	handler.Relay(rr, req)

	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rr.Code)
	}
}

func TestRelay_OriginFailure_Returns502(t *testing.T) {
	t.Parallel()

	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer origin.Close()

	handler := newRelayHandler(nil)

	target := "/v1/assets/relay?url=" + url.QueryEscape(origin.URL+"/missing.jpg")
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()

	handler.Relay(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}

	var problem struct {
		Type   string `json:"type"`
		Status int    `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &problem); err != nil {
		t.Fatalf("failed to decode problem: %v", err)
	}
	if problem.Status != http.StatusBadGateway {
		t.Errorf("expected problem status 502, got %d", problem.Status)
	}
}
