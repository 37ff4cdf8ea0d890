package handler

import (
	"encoding/json"
	"net/http"

	"github.com/snjhope/content-api/internal/model"
)

// DataResponse wraps a successful response with optional HATEOAS links.
// Every endpoint uses this envelope; lists carry an array in Data, the
// chairman profile carries an object.
type DataResponse struct {
	Data  interface{}       `json:"data"`
	Links map[string]string `json:"_links,omitempty"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response
func WriteData(w http.ResponseWriter, status int, data interface{}, links map[string]string) {
	response := DataResponse{
		Data:  data,
		Links: links,
	}
	WriteJSON(w, status, response)
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(w http.ResponseWriter, err *model.ProblemDetails) {
	err.WriteJSON(w)
}

// DisableCaching instructs intermediaries and the browser never to reuse
// a stale copy. The content store can change at any time and there is no
// invalidation mechanism, so every content response is fetched fresh.
func DisableCaching(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}
