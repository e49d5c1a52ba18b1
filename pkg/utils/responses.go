package utils

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the body for endpoints that only report an outcome.
// Errors carries field-level validation detail when present.
type MessageResponse struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

// WriteJSON writes any payload with the given status code
func WriteJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// ------------- Success responses -------------

// returns 200 OK with a message body
func ResponseMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// returns 201 Created with a message body
func ResponseCreated(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusCreated, MessageResponse{Message: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	WriteJSON(w, http.StatusBadRequest, MessageResponse{Message: message, Errors: errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusUnauthorized, MessageResponse{Message: message})
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusNotFound, MessageResponse{Message: message})
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusInternalServerError, MessageResponse{Message: message})
}
