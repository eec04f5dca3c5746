package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raymond9734/webshop-api/internal/db"
	"github.com/Raymond9734/webshop-api/internal/repository"
	"github.com/Raymond9734/webshop-api/internal/service"
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

func (b failingBackend) Health(ctx context.Context) error {
	return errors.New("backend down")
}

func newRouter(t *testing.T, backend db.DocumentStore) http.Handler {
	t.Helper()
	logger := testLogger()

	store, err := repository.NewStore(context.Background(), backend, logger)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(RecoveryMiddleware(logger))
	r.Use(CORSMiddleware)
	NewHealthHandler(store, logger).RegisterRoutes(r)
	Mount(r, Routes(Services{
		Customers: service.NewCustomerService(store, logger),
		Products:  service.NewProductService(store, logger),
		Orders:    service.NewOrderService(store, logger),
	}, logger))
	return r
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	return newRouter(t, db.NewMemoryStore())
}

// newFailingRouter serves the seed document from a backend that cannot be written
func newFailingRouter(t *testing.T) http.Handler {
	t.Helper()
	backend := db.NewMemoryStore()
	_, err := repository.NewStore(context.Background(), backend, testLogger())
	require.NoError(t, err)
	return newRouter(t, failingBackend{backend})
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestCreateProduct_CoercesPriceAndSetsLocation(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/produkte", `{"name":"Vase","preis":"9.99"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/produkte/3", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"id":3,"name":"Vase","preis":9.99}`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/produkte/3", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":3,"name":"Vase","preis":9.99}`, rec.Body.String())
}

func TestCreateCustomer_ValidationError(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/kunden", `{}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"name":"Error","message":"Vorname fehlt"}`, rec.Body.String())
}

func TestCreate_BodyProblems(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantBody string
	}{
		{name: "no body", body: "", wantBody: `{"name":"Error","message":"Keine Daten übermittelt"}`},
		{name: "null body", body: "null", wantBody: `{"name":"Error","message":"Keine Daten übermittelt"}`},
		{name: "malformed JSON", body: `{"vorname":`, wantBody: `{"name":"SyntaxError","message":"Invalid JSON format"}`},
		{name: "array body", body: `[1,2]`, wantBody: `{"name":"SyntaxError","message":"Invalid JSON format"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)

			rec := do(t, h, http.MethodPost, "/api/kunden", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRead_NotFound(t *testing.T) {
	tests := []struct {
		path    string
		message string
	}{
		{path: "/api/kunden/999", message: MsgCustomerNotFound},
		{path: "/api/produkte/999", message: MsgProductNotFound},
		{path: "/api/bestellungen/999", message: MsgOrderNotFound},
		{path: "/api/kunden/abc", message: MsgCustomerNotFound},
	}

	h := newTestRouter(t)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, tt.path, "")
			require.Equal(t, http.StatusNotFound, rec.Code)

			body := decodeBody[NotFoundResponse](t, rec)
			assert.Equal(t, "NOT-FOUND", body.Error)
			assert.Equal(t, tt.message, body.Message)
		})
	}
}

func TestRead_IDWithTrailingText(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/kunden/1abc", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"vorname":"Ceylin","nachname":"Atas"}`, rec.Body.String())
}

func TestDeleteCustomer(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodDelete, "/api/kunden/999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOT-FOUND", decodeBody[NotFoundResponse](t, rec).Error)

	rec = do(t, h, http.MethodDelete, "/api/kunden/1", "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/api/kunden/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/api/kunden", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":2,"vorname":"Krenar","nachname":"Beka"}]`, rec.Body.String())
}

func TestPatchOrder_QuantityOnly(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPatch, "/api/bestellungen/1", `{"menge":"5"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"kundenId":1,"produktId":1,"menge":5,"preis":20.5}`, rec.Body.String())
}

func TestPutAndPatchBehaveAlike(t *testing.T) {
	for _, method := range []string{http.MethodPut, http.MethodPatch} {
		t.Run(method, func(t *testing.T) {
			h := newTestRouter(t)

			rec := do(t, h, method, "/api/kunden/2", `{"vorname":"Kren"}`)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"id":2,"vorname":"Kren","nachname":"Beka"}`, rec.Body.String())
		})
	}
}

func TestUpdate_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
	}{
		{name: "unknown id", path: "/api/produkte/77", body: `{"name":"X"}`, wantStatus: http.StatusNotFound},
		{name: "unknown id without body", path: "/api/produkte/77", body: "", wantStatus: http.StatusNotFound},
		{name: "non-numeric id", path: "/api/produkte/x", body: `{"name":"X"}`, wantStatus: http.StatusNotFound},
		{name: "existing id without body", path: "/api/produkte/1", body: "", wantStatus: http.StatusBadRequest},
		{name: "invalid price", path: "/api/produkte/1", body: `{"preis":"gratis"}`, wantStatus: http.StatusBadRequest},
		{name: "negative price", path: "/api/produkte/1", body: `{"preis":-3}`, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouter(t)
			rec := do(t, h, http.MethodPut, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestSearch(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/api/produkte?q=TEPPICH", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Orientalischer Teppich","preis":10.25}]`, rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/bestellungen?q=nichts", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())

	rec = do(t, h, http.MethodGet, "/api/kunden/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBody[[]map[string]any](t, rec), 2)
}

func TestPersistFailure(t *testing.T) {
	h := newFailingRouter(t)

	rec := do(t, h, http.MethodPost, "/api/kunden", `{"vorname":"Ada","nachname":"Lovelace"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "Error", body.Name)
	assert.Contains(t, body.Message, "disk full")

	rec = do(t, h, http.MethodDelete, "/api/kunden/1", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","services":{"store":"healthy"}}`, rec.Body.String())

	rec = do(t, newFailingRouter(t), http.MethodGet, "/health", "")
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"unhealthy","services":{"store":"unhealthy"}}`, rec.Body.String())
}
