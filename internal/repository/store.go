package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Raymond9734/webshop-api/internal/db"
	"github.com/Raymond9734/webshop-api/internal/models"
)

// Store owns the in-memory document. All mutations go through Mutate, which
// runs a complete mutate-then-persist cycle before the next one may start.
type Store struct {
	mu      sync.RWMutex
	backend db.DocumentStore
	doc     *models.Document
	logger  *slog.Logger
}

// NewStore loads the document from backend. When the backend holds no
// document yet the default seed data is used and written immediately.
func NewStore(ctx context.Context, backend db.DocumentStore, logger *slog.Logger) (*Store, error) {
	s := &Store{
		backend: backend,
		logger:  logger,
	}

	data, err := backend.Load(ctx)
	switch {
	case errors.Is(err, db.ErrNoDocument):
		logger.Info("no stored document found, seeding default data")
		s.doc = models.DefaultDocument()
		if err := s.persist(ctx); err != nil {
			return nil, err
		}

	case err != nil:
		return nil, fmt.Errorf("failed to load document: %w", err)

	default:
		doc := &models.Document{}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("failed to decode document: %w", err)
		}
		doc.Normalize()
		s.doc = doc
	}

	logger.Info("document loaded",
		slog.Int("customers", len(s.doc.Customers)),
		slog.Int("products", len(s.doc.Products)),
		slog.Int("orders", len(s.doc.Orders)),
	)

	return s, nil
}

// View runs fn with read access to the document. fn must not keep
// references to the document or its entities after it returns.
func (s *Store) View(fn func(doc *models.Document)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.doc)
}

// Mutate runs fn with write access and persists the whole document if fn
// succeeds. If fn fails nothing is persisted, but changes fn already made to
// the in-memory document are kept.
func (s *Store) Mutate(ctx context.Context, fn func(doc *models.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(s.doc); err != nil {
		return err
	}
	return s.persist(ctx)
}

// Persist writes the current document to the backend
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persist(ctx)
}

// Reset replaces all data with the default seed document and persists it
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = models.DefaultDocument()
	return s.persist(ctx)
}

// Health reports whether the backend is reachable
func (s *Store) Health(ctx context.Context) error {
	return s.backend.Health(ctx)
}

// persist must be called with mu held
func (s *Store) persist(ctx context.Context) error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	if err := s.backend.Save(ctx, data); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist document", slog.String("error", err.Error()))
		return fmt.Errorf("failed to persist document: %w", err)
	}

	return nil
}

// FindIndex returns the position of the entity with the given id, or -1
func FindIndex[T models.Entity](items []T, id int) int {
	for i, item := range items {
		if item.GetID() == id {
			return i
		}
	}
	return -1
}

// NextID returns one more than the highest id in items, or 0 for an empty
// collection.
func NextID[T models.Entity](items []T) int {
	maxID := -1
	for _, item := range items {
		maxID = max(maxID, item.GetID())
	}
	return maxID + 1
}

// RemoveByID returns items without the entities matching id and the number
// of entities removed. Order of the remaining entities is preserved.
func RemoveByID[T models.Entity](items []T, id int) ([]T, int) {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if item.GetID() != id {
			kept = append(kept, item)
		}
	}
	return kept, len(items) - len(kept)
}
