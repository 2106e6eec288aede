package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/centrifuge/middleware"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	var captured string
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		captured, _ = middleware.GetRequestID(r.Context())
	})

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Len(t, captured, 36)
		assert.Equal(t, captured, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("incoming reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-1")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		assert.Equal(t, "req-1", captured)
		assert.Equal(t, "req-1", rec.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRequestIDWithConfig(t *testing.T) {
	t.Parallel()

	h := middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator:      func() string { return "fixed" },
		IgnoreIncoming: true,
	})(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "client-supplied")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "fixed", rec.Header().Get(middleware.RequestIDHeader))
}

func TestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := chi.NewRouter()
	r.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: func() string { return "rid" }}))
	r.Use(middleware.LoggingWithConfig(middleware.LoggingConfig{
		Logger: log,
		Skip:   func(r *http.Request) bool { return r.URL.Path == "/health/live" },
	}))
	r.Get("/health/live", func(http.ResponseWriter, *http.Request) {})
	r.Get("/boom", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Empty(t, buf.String())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ERROR", entry["level"])
	assert.Equal(t, "/boom", entry["path"])
	assert.Equal(t, "rid", entry["request_id"])
	assert.EqualValues(t, http.StatusInternalServerError, entry["status_code"])
}
