package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/atlanticdynamic/urlbridge/internal/routing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApp(t *testing.T) *app.App {
	t.Helper()
	a := app.New("main", &config.Config{Version: config.VersionLatest})

	detail := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := routing.ParamsFromContext(r.Context())
		fmt.Fprintf(w, "record %s", params["id"])
	})
	require.NoError(t, a.Handle("GET", "/records/:id", "records.detail", detail))

	// Registered for URL generation only; no handler.
	require.NoError(t, a.Handle("GET", "/static-info", "info.page", nil))

	return a
}

func TestNewRunner(t *testing.T) {
	t.Run("valid construction freezes the app", func(t *testing.T) {
		a := testApp(t)
		r, err := NewRunner(a, "127.0.0.1:0")
		require.NoError(t, err)
		assert.NotNil(t, r)
		assert.True(t, a.Routes().Frozen())
		assert.Equal(t, "server.Runner[main]", r.String())
	})

	t.Run("nil app rejected", func(t *testing.T) {
		_, err := NewRunner(nil, "127.0.0.1:0")
		assert.Error(t, err)
	})

	t.Run("empty address rejected", func(t *testing.T) {
		_, err := NewRunner(testApp(t), "")
		assert.Error(t, err)
	})
}

func TestHandlerDispatch(t *testing.T) {
	r, err := NewRunner(testApp(t), "127.0.0.1:0")
	require.NoError(t, err)
	handler := r.Handler()

	t.Run("parameters reach the handler", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/records/abc123", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "record abc123", rec.Body.String())
	})

	t.Run("unknown path is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/unknown", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("method mismatch is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/records/abc123", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("handler-less route is 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static-info", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
