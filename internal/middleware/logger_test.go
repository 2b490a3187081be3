package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jidetireni/invoice-dashboard/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLoggerMiddleware(t *testing.T) {
	var buf bytes.Buffer
	m := New(logger.NewWithWriter(&buf))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(m.LoggerMiddleware)
	r.Get("/seed", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/seed", nil))

	out := buf.String()
	assert.Contains(t, out, `"method":"GET"`)
	assert.Contains(t, out, `"path":"/seed"`)
	assert.Contains(t, out, `"status":500`)
	assert.Contains(t, out, `"request_id":"`)
	assert.Contains(t, out, "incoming_request")
}
