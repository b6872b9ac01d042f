package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(buf *bytes.Buffer) http.Handler {
	logger := slog.New(slog.NewJSONHandler(buf, nil))

	r := chi.NewRouter()
	r.Use(chimw.RequestID, Logger(logger), Metrics)
	r.Get("/api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"` + chi.URLParam(r, "id") + `"}`))
	})
	r.Post("/api/orders/create", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	return r
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name      string
		method    string
		path      string
		wantLevel string
		wantCode  int
		wantRoute string
		wantBytes int
	}{
		{
			name:      "implicit 200",
			method:    http.MethodGet,
			path:      "/api/orders/abc",
			wantLevel: "INFO",
			wantCode:  http.StatusOK,
			wantRoute: "/api/orders/{id}",
			wantBytes: len(`{"id":"abc"}`),
		},
		{
			name:      "server error",
			method:    http.MethodPost,
			path:      "/api/orders/create",
			wantLevel: "ERROR",
			wantCode:  http.StatusInternalServerError,
			wantRoute: "/api/orders/create",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := newRouter(&buf)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			require.Equal(t, tt.wantCode, rr.Code)

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, "http", entry["component"])
			assert.EqualValues(t, tt.wantCode, entry["status"])
			assert.Equal(t, tt.path, entry["path"])
			assert.Equal(t, tt.wantRoute, entry["route"])
			assert.EqualValues(t, tt.wantBytes, entry["bytes"])
			assert.NotEmpty(t, entry["request_id"])
		})
	}
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	h := newRouter(&bytes.Buffer{})
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/api/orders/{id}", "200")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"a", "b", "c"} {
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/orders/"+id, nil))
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpInFlight))
}
