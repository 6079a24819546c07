package response

import (
	"encoding/json"
	"net/http"

	"github.com/seastock/seastock/pkg/apperror"
)

// WriteJSON writes an arbitrary payload. Success payloads are handler-defined
// structs carrying their own "success":true field; error payloads always take
// the {"success":false,"message":...} shape.
func WriteJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, errorEnvelope{Success: false, Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	Error(w, http.StatusNotFound, message)
}

func Conflict(w http.ResponseWriter, message string) {
	Error(w, http.StatusConflict, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	Error(w, http.StatusInternalServerError, message)
}

// FromError maps any error through the taxonomy and writes it.
func FromError(w http.ResponseWriter, err error) {
	appErr := apperror.MapError(err)
	Error(w, appErr.Status, appErr.Message)
}
