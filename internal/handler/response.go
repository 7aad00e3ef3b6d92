package handler

// RESPONSE HELPERS:
// Every JSON body this API sends, success or failure, goes through writeJSON.
//
// CONSISTENT ENVELOPE:
//   success: {"success":true,"message":"...","data":{...}}
//   failure: {"success":false,"message":"..."}
//
// The status code is the authoritative signal; the body is for humans and the
// front-end toast. The one exception is GET /api/projects, which answers with a
// bare JSON array because the front-end maps over it directly.

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sakif/filmstudio/internal/apperror"
)

// Response is the envelope used by every non-list endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// writeJSON sends a JSON response with the given status code.
// Headers must be set before WriteHeader; anything set afterwards is dropped.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent — we can only log it.
			slog.Error("failed to encode JSON response", slog.String("error", err.Error()))
		}
	}
}

// writeError maps a domain error to a status code and a failure envelope.
//
// Validation and not-found errors carry messages written for the client, so
// they are passed through. Anything else gets internalMessage: the real cause
// may contain SQL or file paths and must stay in the server log.
func writeError(w http.ResponseWriter, err error, internalMessage string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch {
		case errors.Is(err, apperror.ErrValidation):
			writeJSON(w, http.StatusBadRequest, Response{Message: appErr.Message})
			return
		case errors.Is(err, apperror.ErrNotFound):
			writeJSON(w, http.StatusNotFound, Response{Message: appErr.Message})
			return
		}
	}

	writeJSON(w, http.StatusInternalServerError, Response{Message: internalMessage})
}
