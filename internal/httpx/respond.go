// Package httpx holds the HTTP plumbing shared by every module: JSON
// responders, request validation errors and middleware.
package httpx

import (
	"encoding/json"
	"net/http"
)

// Detail is the error body used for fixed-message failures.
type Detail struct {
	Detail string `json:"detail"`
}

// WriteJSON writes payload as JSON with the given status code.
func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteDetail sends {"detail": msg}.
func WriteDetail(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Detail{Detail: msg})
}

// WriteEmptyObject sends a bare {} body.
func WriteEmptyObject(w http.ResponseWriter, status int) {
	WriteJSON(w, status, struct{}{})
}

// WriteNoContent sends a status with no body at all.
func WriteNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// WriteInternal hides the cause of a 500 from the caller.
func WriteInternal(w http.ResponseWriter) {
	WriteDetail(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}

// NotFound is the router-level handler for unknown paths.
func NotFound(w http.ResponseWriter, r *http.Request) {
	WriteDetail(w, http.StatusNotFound, "Not Found")
}

// MethodNotAllowed is the router-level handler for known paths hit with an
// undeclared method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	WriteDetail(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}
