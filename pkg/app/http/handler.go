// Package http holds the chi-compatible glue shared by the HTTP surfaces:
// error-returning handlers, JSON responses and per-client rate limiting.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	apperrors "github.com/chainsafe/vault-discovery/pkg/app/errors"
)

// HandlerFunc is an http handler that reports failures by returning an error.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      int    `json:"code"`
	RequestID string `json:"requestId,omitempty"`
}

// HandleError adapts h to http.HandlerFunc, rendering a returned error with WriteError.
//
//	r.Get("/vaults", apphttp.HandleError(h.query))
func HandleError(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			WriteError(w, r, err)
		}
	}
}

// WriteError renders err and tags it with the chi request id when there is one.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse(err)
	resp.RequestID = middleware.GetReqID(r.Context())
	_ = WriteJSON(w, resp.Code, resp)
}

// errorResponse exposes only ServiceError messages; anything else becomes a 500.
func errorResponse(err error) ErrorResponse {
	var svcErr *apperrors.ServiceError
	if errors.As(err, &svcErr) {
		return ErrorResponse{Error: svcErr.Message, Code: svcErr.StatusCode()}
	}
	return ErrorResponse{Error: "Unexpected Service Error", Code: http.StatusInternalServerError}
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}
