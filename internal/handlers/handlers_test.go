package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bilabonnement/rental-service/internal/config"
	"github.com/bilabonnement/rental-service/internal/handlers"
	"github.com/bilabonnement/rental-service/internal/models"
	"github.com/bilabonnement/rental-service/internal/repository"
	"github.com/bilabonnement/rental-service/internal/server"
	"github.com/bilabonnement/rental-service/internal/storage"
)

func setupTestRouter(t *testing.T) *mux.Router {
	t.Helper()

	cfg := &config.Config{DBPath: filepath.Join(t.TempDir(), "rental_test.db")}
	store, err := storage.Open(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Init(context.Background()))

	repo := repository.New(store, zap.NewNop())
	h := handlers.NewHandler(repo, zap.NewNop())
	return server.NewRouter(h, zap.NewNop())
}

func doRequest(t *testing.T, router *mux.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

const validCreateBody = `{
	"start_date": "2024-01-01",
	"end_date": "2024-06-01",
	"start_km": 0,
	"contracted_km": 15000,
	"monthly_price": 299.99,
	"car_id": 1,
	"customer_id": 1
}`

func TestRentalLifecycle(t *testing.T) {
	router := setupTestRouter(t)

	// Create
	rec := doRequest(t, router, http.MethodPost, "/rentals", validCreateBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		Message string                `json:"message"`
		Rental  models.RentalContract `json:"rental"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Rental contract created", created.Message)
	assert.Equal(t, int64(1), created.Rental.ID)

	// Read back
	rec = doRequest(t, router, http.MethodGet, "/rentals/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got models.RentalContract
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "2024-01-01", got.StartDate.String())
	assert.Equal(t, "2024-06-01", got.EndDate.String())
	assert.Equal(t, int64(0), got.StartKm)
	assert.Equal(t, int64(15000), got.ContractedKm)
	assert.Equal(t, 299.99, got.MonthlyPrice)
	assert.Equal(t, int64(1), got.CarID)
	assert.Equal(t, int64(1), got.CustomerID)

	// Partial update
	rec = doRequest(t, router, http.MethodPatch, "/rentals/1", `{"contracted_km": 20000}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/rentals/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(20000), got.ContractedKm)
	assert.Equal(t, 299.99, got.MonthlyPrice)
	assert.Equal(t, "2024-01-01", got.StartDate.String())

	// Delete
	rec = doRequest(t, router, http.MethodDelete, "/rentals/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/rentals/1", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateMissingFields(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/rentals", `{"start_date": "2024-01-01"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "missing required fields")

	// Nothing persisted.
	rec = doRequest(t, router, http.MethodGet, "/rentals/all", "")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestCreateInvalidPayload(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/rentals", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateConstraintViolation(t *testing.T) {
	router := setupTestRouter(t)

	body := `{
		"start_date": "2024-06-01",
		"end_date": "2024-01-01",
		"start_km": 0,
		"contracted_km": 15000,
		"monthly_price": 299.99,
		"car_id": 1,
		"customer_id": 1
	}`
	rec := doRequest(t, router, http.MethodPost, "/rentals", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/rentals/all", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListEmptyReturnsOKWithEmptyArray(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/rentals/all", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetMissingRental(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/rentals/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Rental contract not found", body["error"])
}

func TestPatchEmptyBody(t *testing.T) {
	router := setupTestRouter(t)

	doRequest(t, router, http.MethodPost, "/rentals", validCreateBody)

	rec := doRequest(t, router, http.MethodPatch, "/rentals/1", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "No valid fields to update", body["error"])
}

func TestPatchUnknownKeysOnly(t *testing.T) {
	router := setupTestRouter(t)

	doRequest(t, router, http.MethodPost, "/rentals", validCreateBody)

	// Unknown keys are dropped; nothing updatable remains.
	rec := doRequest(t, router, http.MethodPatch, "/rentals/1", `{"vin": "WBA123", "color": "blue"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchMissingRental(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodPatch, "/rentals/99", `{"monthly_price": 500}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteMissingRental(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodDelete, "/rentals/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownEndpointAnswersJSON(t *testing.T) {
	router := setupTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Endpoint not found", body["error"])
}
