package handlers

import (
	"encoding/json"
	"net/http"
)

// FieldErrors maps a form field to its validation message.
type FieldErrors map[string]string

// ValidationErrorResponse is the 400 body for rejected form input.
type ValidationErrorResponse struct {
	FieldErrors FieldErrors `json:"fieldErrors"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeFieldErrors(w http.ResponseWriter, fieldErrors FieldErrors) {
	writeJSON(w, http.StatusBadRequest, ValidationErrorResponse{FieldErrors: fieldErrors})
}
