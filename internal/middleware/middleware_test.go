package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(Logger(logger), Metrics)
	r.Get("/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/boom", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})
	return r
}

func logLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLogger_RecordsRouteAndStatus(t *testing.T) {
	tests := []struct {
		path   string
		status float64
		level  string
		route  string
	}{
		{"/orders/ORD-1", 200, "INFO", "/orders/{id}"},
		{"/missing", 404, "WARN", "/missing"},
		{"/boom", 500, "ERROR", "/boom"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			var buf bytes.Buffer
			h := newRouter(slog.New(slog.NewJSONHandler(&buf, nil)))

			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			lines := logLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, tt.status, lines[0]["status"])
			assert.Equal(t, tt.level, lines[0]["level"])
			assert.Equal(t, tt.route, lines[0]["route"])
			assert.Equal(t, tt.path, lines[0]["path"])
		})
	}
}

func TestLogger_CountsBytes(t *testing.T) {
	var buf bytes.Buffer
	h := newRouter(slog.New(slog.NewJSONHandler(&buf, nil)))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/orders/ORD-1", nil))

	assert.Equal(t, "ok", rr.Body.String())
	lines := logLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, float64(2), lines[0]["bytes"])
}

func TestLogger_SkipsOpsRoutes(t *testing.T) {
	var buf bytes.Buffer
	h := newRouter(slog.New(slog.NewJSONHandler(&buf, nil)))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, buf.String())
}

func TestIsOps(t *testing.T) {
	assert.True(t, isOps("/metrics"))
	assert.True(t, isOps("/swagger/index.html"))
	assert.False(t, isOps("/metricsx"))
	assert.False(t, isOps("/products"))
}
