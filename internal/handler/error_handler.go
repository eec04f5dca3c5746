package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Raymond9734/webshop-api/internal/models"
)

// Names reported for requests that cannot be decoded
const (
	syntaxErrorName    = "SyntaxError"
	syntaxErrorMessage = "Invalid JSON format"
)

// errMalformedJSON is returned by decodeInput for bodies that are not JSON objects
var errMalformedJSON = errors.New("malformed JSON body")

// handleError maps service errors to HTTP responses. notFound is the message
// sent for errors wrapping models.ErrNotFound. Errors that are neither
// validation nor lookup results are logged and answered with fallback, which
// is either 400 (create and update) or 500.
func handleError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger, notFound string, fallback int) {
	if errors.Is(err, models.ErrNotFound) {
		respondNotFound(w, notFound)
		return
	}

	if errors.Is(err, errMalformedJSON) {
		respondError(w, http.StatusBadRequest, syntaxErrorName, syntaxErrorMessage)
		return
	}

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		respondError(w, mapErrorCodeToHTTPStatus(appErr.Code), errorName(appErr), appErr.Message)
		return
	}

	logger.ErrorContext(r.Context(), "request failed",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.String("error", err.Error()),
	)

	if fallback == http.StatusBadRequest {
		respondError(w, http.StatusBadRequest, models.DefaultErrorName, err.Error())
		return
	}
	respondError(w, http.StatusInternalServerError, models.DefaultErrorName, "An unexpected error occurred")
}

// mapErrorCodeToHTTPStatus maps error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(code string) int {
	switch code {
	case models.CodeInvalidInput, models.CodeInvalidRequest:
		return http.StatusBadRequest
	case models.CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func errorName(appErr *models.AppError) string {
	if appErr.Name == "" {
		return models.DefaultErrorName
	}
	return appErr.Name
}
