package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/webshop-api/internal/config"
	"github.com/Raymond9734/webshop-api/internal/db"
	"github.com/Raymond9734/webshop-api/internal/models"
	"github.com/Raymond9734/webshop-api/internal/repository"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		store   config.StoreConfig
		wantErr bool
	}{
		{name: "file", store: config.StoreConfig{Backend: config.BackendFile, File: filepath.Join(dir, "data", "db.json")}},
		{name: "sqlite", store: config.StoreConfig{Backend: config.BackendSQLite, SQLitePath: filepath.Join(dir, "shop.db"), DocumentName: "webshop"}},
		{name: "memory", store: config.StoreConfig{Backend: config.BackendMemory}},
		{name: "unknown", store: config.StoreConfig{Backend: "mongo"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend, err := openBackend(ctx, &config.Config{Store: tt.store}, testLogger())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			defer backend.Close()

			assert.NoError(t, backend.Health(ctx))
			_, err = backend.Load(ctx)
			assert.ErrorIs(t, err, db.ErrNoDocument)
		})
	}
}

func TestNewRouter(t *testing.T) {
	store, err := repository.NewStore(context.Background(), db.NewMemoryStore(), testLogger())
	require.NoError(t, err)
	h := newRouter(store, testLogger())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bestellungen/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":2,"kundenId":2,"produktId":2,"menge":1,"preis":15.75}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unbekannt", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestResetCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	t.Setenv("STORE_BACKEND", config.BackendFile)
	t.Setenv("STORE_FILE", path)
	t.Setenv("LOG_LEVEL", "error")

	require.NoError(t, os.WriteFile(path, []byte(`{"Kunden":[],"Bestellungen":[],"Produkte":[]}`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"reset"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Document reset to seed data")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var doc models.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, *models.DefaultDocument(), doc)
}
