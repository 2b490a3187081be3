package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jidetireni/invoice-dashboard/internal/config"
	"github.com/Jidetireni/invoice-dashboard/internal/services"
	"github.com/Jidetireni/invoice-dashboard/internal/services/seeder"
	"github.com/Jidetireni/invoice-dashboard/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

type fakeSeeder struct {
	result *seeder.Result
	err    error
	calls  int
}

func (f *fakeSeeder) Seed(ctx context.Context) (*seeder.Result, error) {
	f.calls++
	return f.result, f.err
}

type emptyError struct{}

func (emptyError) Error() string { return "" }

func newTestRouter(s Seeder) http.Handler {
	h := &Handlers{
		config: &config.Config{Server: config.ServerConfig{Env: "test"}},
		logger: logger.Nop(),
		seeder: s,
	}

	r := chi.NewRouter()
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
	r.Get("/seed", h.Seed)
	r.Get("/api/v1/healthz", h.HealthCheckHandler)
	return r
}

func TestHandlers_Seed(t *testing.T) {
	tests := []struct {
		name           string
		seeder         *fakeSeeder
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Success",
			seeder:         &fakeSeeder{result: &seeder.Result{Success: true}},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"message":"Database seeded successfully"}`,
		},
		{
			name: "Step failure",
			seeder: &fakeSeeder{err: &seeder.StepError{
				Step: seeder.StepInvoices,
				Kind: seeder.KindConstraint,
				Err:  &pq.Error{Code: "23503", Message: "violates foreign key constraint"},
			}},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"seed invoices: pq: violates foreign key constraint"}`,
		},
		{
			name:           "Error without message",
			seeder:         &fakeSeeder{err: emptyError{}},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"Unknown error occurred"}`,
		},
		{
			name:           "Api error keeps status",
			seeder:         &fakeSeeder{err: &services.ApiError{Status: http.StatusServiceUnavailable, Message: "store unavailable"}},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"error":"store unavailable"}`,
		},
		{
			name:           "Plain error",
			seeder:         &fakeSeeder{err: errors.New("seed connect: connection refused")},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"error":"seed connect: connection refused"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/seed", nil)
			rec := httptest.NewRecorder()

			newTestRouter(tt.seeder).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.expectedBody, rec.Body.String())
			assert.Equal(t, 1, tt.seeder.calls)
		})
	}
}

func TestHandlers_Seed_OnlyGet(t *testing.T) {
	s := &fakeSeeder{result: &seeder.Result{Success: true}}
	req := httptest.NewRequest(http.MethodPost, "/seed", nil)
	rec := httptest.NewRecorder()

	newTestRouter(s).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"The POST method is not supported for this resource"}`, rec.Body.String())
	assert.Equal(t, 0, s.calls)
}

func TestHandlers_NotFound(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/unknown", nil)
	rec := httptest.NewRecorder()

	newTestRouter(&fakeSeeder{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"The requested resource could not be found"}`, rec.Body.String())
}

func TestHandlers_HealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/healthz", nil)
	rec := httptest.NewRecorder()

	newTestRouter(&fakeSeeder{}).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"available","system_info":{"environment":"test","version":"1.0.0"}}`, rec.Body.String())
}
