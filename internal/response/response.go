// Package response provides shared JSON response helpers for HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"
)

// ErrorDetail is the standard error body: {"detail": "..."}.
type ErrorDetail struct {
	Detail string `json:"detail"`
}

// JSON writes a JSON-encoded payload with the given HTTP status code.
func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// Error writes an error response with the given status and detail message.
func Error(w http.ResponseWriter, status int, detail string) {
	JSON(w, status, ErrorDetail{Detail: detail})
}

// BadRequest writes a 400 response.
func BadRequest(w http.ResponseWriter, detail string) {
	Error(w, http.StatusBadRequest, detail)
}

// InternalError writes a 500 response with a generic message.
func InternalError(w http.ResponseWriter) {
	Error(w, http.StatusInternalServerError, "internal server error")
}
