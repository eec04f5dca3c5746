package db

import (
	"context"
	"errors"
)

// ErrNoDocument is returned by Load when nothing has been persisted yet
var ErrNoDocument = errors.New("no document stored")

// DocumentStore reads and writes the whole serialized database in one step.
// Save always replaces the previous content; there are no partial writes.
type DocumentStore interface {
	// Load returns the stored document or ErrNoDocument
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the stored document with data
	Save(ctx context.Context, data []byte) error

	// Health checks if the storage is reachable
	Health(ctx context.Context) error

	// Close releases the underlying connection
	Close() error
}
