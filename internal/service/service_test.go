package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/webshop-api/internal/db"
	"github.com/Raymond9734/webshop-api/internal/models"
	"github.com/Raymond9734/webshop-api/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// failingBackend loads fine but refuses every write
type failingBackend struct {
	*db.MemoryStore
}

func (b failingBackend) Save(ctx context.Context, data []byte) error {
	return errors.New("disk full")
}

// newTestStore returns a store holding the seed document
func newTestStore(t *testing.T) (*repository.Store, *db.MemoryStore) {
	t.Helper()
	backend := db.NewMemoryStore()
	store, err := repository.NewStore(context.Background(), backend, testLogger())
	require.NoError(t, err)
	return store, backend
}

// newFailingStore returns a store whose writes always fail
func newFailingStore(t *testing.T) *repository.Store {
	t.Helper()
	backend := db.NewMemoryStore()
	_, err := repository.NewStore(context.Background(), backend, testLogger())
	require.NoError(t, err)

	store, err := repository.NewStore(context.Background(), failingBackend{backend}, testLogger())
	require.NoError(t, err)
	return store
}

// decode builds a request input from a JSON body
func decode[T any](t *testing.T, body string) *T {
	t.Helper()
	var in T
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return &in
}

// assertAppError checks that err is an AppError carrying message
func assertAppError(t *testing.T, err error, message string) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, message, appErr.Message)
	assert.Equal(t, models.DefaultErrorName, appErr.Name)
}
