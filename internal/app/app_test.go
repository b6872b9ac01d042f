package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingHandler struct{}

func (pingHandler) Init(r chi.Router) {
	r.Get("/api/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

type starterFunc func(ctx context.Context) error

func (f starterFunc) Start(ctx context.Context) error { return f(ctx) }

func testConfig() config.Config {
	cfg := config.New()
	cfg.HTTP.Host = "127.0.0.1"
	cfg.HTTP.Port = "0"
	cfg.Cors.AllowedOrigins = []string{"http://localhost:3000"}
	return cfg
}

func TestApplication_Router(t *testing.T) {
	a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())
	a.SetHTTPHandlers(pingHandler{})

	t.Run("handlers are mounted", func(t *testing.T) {
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
		assert.Equal(t, http.StatusTeapot, rr.Code)
	})

	t.Run("metrics", func(t *testing.T) {
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "storefront_http_requests_total")
	})

	t.Run("cors preflight allows patch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/ping", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
		rr := httptest.NewRecorder()
		a.router.ServeHTTP(rr, req)

		assert.Equal(t, "http://localhost:3000", rr.Header().Get("Access-Control-Allow-Origin"))
		assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
	})
}

func TestApplication_StartStop(t *testing.T) {
	t.Run("starters run before server", func(t *testing.T) {
		a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

		var started atomic.Int32
		a.SetStarters(
			starterFunc(func(context.Context) error { started.Add(1); return nil }),
			starterFunc(func(context.Context) error { started.Add(1); return nil }),
		)

		require.NoError(t, a.Start(context.Background()))
		assert.Equal(t, int32(2), started.Load())
		assert.NoError(t, a.Stop())
	})

	t.Run("failed starter aborts start", func(t *testing.T) {
		a := New(slog.New(slog.NewTextHandler(io.Discard, nil)), testConfig())

		starterErr := errors.New("redis unavailable")
		a.SetStarters(starterFunc(func(context.Context) error { return starterErr }))

		err := a.Start(context.Background())
		assert.ErrorIs(t, err, starterErr)
	})
}
