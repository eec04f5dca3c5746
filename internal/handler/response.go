package handler

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of a 400 or 500 response
type ErrorResponse struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// NotFoundResponse is the body of a 404 response
type NotFoundResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// notFoundError is the fixed error value of every NotFoundResponse
const notFoundError = "NOT-FOUND"

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Headers are already sent, nothing else can be reported
			return
		}
	}
}

// respondError writes a {name, message} error response
func respondError(w http.ResponseWriter, status int, name, message string) {
	respondJSON(w, status, ErrorResponse{
		Name:    name,
		Message: message,
	})
}

// respondNotFound writes a 404 response carrying message
func respondNotFound(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusNotFound, NotFoundResponse{
		Error:   notFoundError,
		Message: message,
	})
}

// respondSuccess writes a successful response with 200 OK
func respondSuccess(w http.ResponseWriter, data interface{}) {
	respondJSON(w, http.StatusOK, data)
}

// respondCreated writes a 201 Created response pointing at location
func respondCreated(w http.ResponseWriter, location string, data interface{}) {
	w.Header().Set("Location", location)
	respondJSON(w, http.StatusCreated, data)
}

// respondNoContent writes an empty 204 response
func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
