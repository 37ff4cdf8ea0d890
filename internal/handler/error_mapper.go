package handler

import (
	"errors"

	"github.com/snjhope/content-api/internal/model"
	"github.com/snjhope/content-api/internal/notion"
	"github.com/snjhope/content-api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring
// consistent HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// ===== Asset Relay Errors =====
	switch {
	case errors.Is(err, service.ErrInvalidAssetURL):
		return model.NewBadRequestError(err.Error())
	case errors.Is(err, service.ErrAssetHostNotAllowed):
		return model.NewForbiddenError(err.Error())
	case errors.Is(err, service.ErrAssetFetchFailed):
		return model.NewUpstreamError(err.Error(), 0)
	}

	// ===== Content Store Errors → 502 =====
	// A non-2xx answer from the store carries the upstream status and
	// detail for diagnosis; transport failures carry the error message.
	var apiErr *notion.APIError
	if errors.As(err, &apiErr) {
		return model.NewUpstreamError(err.Error(), apiErr.Status)
	}
	return model.NewUpstreamError(err.Error(), 0)
}
