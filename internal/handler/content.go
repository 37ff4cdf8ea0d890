package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/snjhope/content-api/internal/middleware"
	"github.com/snjhope/content-api/internal/service"
)

// ContentHandler handles the read-only content endpoints
type ContentHandler struct {
	contentService *service.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService *service.ContentService) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
	}
}

// list serves one content type. Every list endpoint is this same shape;
// only the fetch closure differs per type.
func (h *ContentHandler) list(w http.ResponseWriter, r *http.Request, name, path string, fetch func(ctx context.Context) (interface{}, error)) {
	DisableCaching(w)

	data, err := fetch(r.Context())
	if err != nil {
		slog.Error("content fetch failed",
			slog.String("type", name),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, data, map[string]string{"self": path})
}

// Notices handles GET /v1/notices
func (h *ContentHandler) Notices(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "notices", "/v1/notices", func(ctx context.Context) (interface{}, error) {
		return h.contentService.Notices(ctx)
	})
}

// Activities handles GET /v1/activities
func (h *ContentHandler) Activities(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "activities", "/v1/activities", func(ctx context.Context) (interface{}, error) {
		return h.contentService.Activities(ctx)
	})
}

// Programs handles GET /v1/programs
func (h *ContentHandler) Programs(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "programs", "/v1/programs", func(ctx context.Context) (interface{}, error) {
		return h.contentService.Programs(ctx)
	})
}

// Business handles GET /v1/business with an optional category query
// parameter narrowing the result to one category.
func (h *ContentHandler) Business(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	h.list(w, r, "business", "/v1/business", func(ctx context.Context) (interface{}, error) {
		return h.contentService.Business(ctx, category)
	})
}

// Banners handles GET /v1/banners
func (h *ContentHandler) Banners(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "banners", "/v1/banners", func(ctx context.Context) (interface{}, error) {
		return h.contentService.Banners(ctx)
	})
}

// About handles GET /v1/about - the chairman greeting card
func (h *ContentHandler) About(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "about", "/v1/about", func(ctx context.Context) (interface{}, error) {
		return h.contentService.ChairmanProfile(ctx)
	})
}
