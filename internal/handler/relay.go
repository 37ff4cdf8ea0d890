package handler

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/snjhope/content-api/internal/middleware"
	"github.com/snjhope/content-api/internal/model"
	"github.com/snjhope/content-api/internal/service"
)

// RelayCacheControl marks relayed assets as immutable for a year, so the
// browser never asks for the same asset twice.
const RelayCacheControl = "public, max-age=31536000, immutable"

// RelayHandler handles the asset relay endpoint
type RelayHandler struct {
	relayService *service.RelayService
}

// NewRelayHandler creates a new relay handler
func NewRelayHandler(relayService *service.RelayService) *RelayHandler {
	return &RelayHandler{
		relayService: relayService,
	}
}

// Relay handles GET /v1/assets/relay?url=... - fetches the asset
// server-side and streams the bytes back.
func (h *RelayHandler) Relay(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		WriteError(w, model.NewBadRequestError("missing url parameter"))
		return
	}

	asset, err := h.relayService.Fetch(r.Context(), rawURL)
	if err != nil {
		slog.Error("asset relay failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()),
			slog.String("request_id", middleware.GetRequestID(r.Context())),
		)
		WriteError(w, MapServiceError(err))
		return
	}
	defer func() { _ = asset.Body.Close() }()

	w.Header().Set("Content-Type", asset.ContentType)
	w.Header().Set("Cache-Control", RelayCacheControl)
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, asset.Body)
}
