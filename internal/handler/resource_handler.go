package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Raymond9734/webshop-api/internal/models"
	"github.com/Raymond9734/webshop-api/internal/service"
)

// maxBodyBytes caps the size of request bodies
const maxBodyBytes = 1 << 20

// ResourceHandler serves the five CRUD routes of one collection under prefix
type ResourceHandler[T models.Entity, In any] struct {
	prefix   string
	service  service.ResourceService[T, In]
	notFound string
	logger   *slog.Logger
}

// NewResourceHandler creates a handler for the collection served by svc.
// notFound is the message sent when an id does not exist.
func NewResourceHandler[T models.Entity, In any](prefix string, svc service.ResourceService[T, In], notFound string, logger *slog.Logger) *ResourceHandler[T, In] {
	return &ResourceHandler[T, In]{
		prefix:   prefix,
		service:  svc,
		notFound: notFound,
		logger:   logger,
	}
}

// Prefix returns the path the routes are mounted under
func (h *ResourceHandler[T, In]) Prefix() string {
	return h.prefix
}

// RegisterRoutes mounts the collection routes on r
func (h *ResourceHandler[T, In]) RegisterRoutes(r chi.Router) {
	r.Route(h.prefix, func(r chi.Router) {
		r.Get("/", h.Search)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Read)
		r.Put("/{id}", h.Update)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Remove)
	})
}

// Search handles GET <prefix>?q=
func (h *ResourceHandler[T, In]) Search(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		handleError(w, r, err, h.logger, h.notFound, http.StatusInternalServerError)
		return
	}

	respondSuccess(w, result)
}

// Create handles POST <prefix>
func (h *ResourceHandler[T, In]) Create(w http.ResponseWriter, r *http.Request) {
	input, err := decodeInput[In](r)
	if err != nil {
		handleError(w, r, err, h.logger, h.notFound, http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, err, h.logger, h.notFound, http.StatusBadRequest)
		return
	}

	respondCreated(w, fmt.Sprintf("%s/%d", h.prefix, (*created).GetID()), created)
}

// Read handles GET <prefix>/{id}
func (h *ResourceHandler[T, In]) Read(w http.ResponseWriter, r *http.Request) {
	id, ok := service.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respondNotFound(w, h.notFound)
		return
	}

	entity, err := h.service.Read(r.Context(), id)
	if err != nil {
		handleError(w, r, err, h.logger, h.notFound, http.StatusInternalServerError)
		return
	}

	respondSuccess(w, entity)
}

// Update handles PUT and PATCH <prefix>/{id}
func (h *ResourceHandler[T, In]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := service.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respondNotFound(w, h.notFound)
		return
	}

	input, err := decodeInput[In](r)
	if err != nil {
		handleError(w, r, err, h.logger, h.notFound, http.StatusBadRequest)
		return
	}

	updated, err := h.service.Update(r.Context(), id, input)
	if err != nil {
		handleError(w, r, err, h.logger, h.notFound, http.StatusBadRequest)
		return
	}

	respondSuccess(w, updated)
}

// Remove handles DELETE <prefix>/{id}
func (h *ResourceHandler[T, In]) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := service.ParseID(chi.URLParam(r, "id"))
	if !ok {
		respondNotFound(w, h.notFound)
		return
	}

	removed, err := h.service.Remove(r.Context(), id)
	if err != nil {
		handleError(w, r, err, h.logger, h.notFound, http.StatusInternalServerError)
		return
	}
	if removed == 0 {
		respondNotFound(w, h.notFound)
		return
	}

	respondNoContent(w)
}

// decodeInput reads the request body into a new In. It returns nil input
// for an empty body or a JSON null.
func decodeInput[In any](r *http.Request) (*In, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	var input *In
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, errMalformedJSON
	}
	return input, nil
}
