package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/blueprints"
	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/atlanticdynamic/urlbridge/internal/server"
	"github.com/atlanticdynamic/urlbridge/internal/urls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoConfig() *config.Config {
	return &config.Config{
		Version: config.VersionLatest,
		Settings: map[string]string{
			uiBaseURLKey:  "https://ui.example.org",
			apiBaseURLKey: "https://api.example.org",
		},
		BlueprintPrefixes: map[string]string{
			"records":     "/records",
			"records-api": "/api/records",
		},
	}
}

func assembleDemo(t *testing.T) *server.Runner {
	t.Helper()
	registerDemoBlueprints()

	host := app.New("urlbridge.demo", demoConfig())
	require.NoError(t, blueprints.Load(host, demoUIGroup))

	factory := urls.NewFactory(uiBaseURLKey, apiBaseURLKey, []string{demoAPIGroup})
	require.NoError(t, urls.Install(host, factory))

	runner, err := server.NewRunner(host, "127.0.0.1:0")
	require.NoError(t, err)
	return runner
}

func TestDemoAssembly(t *testing.T) {
	handler := assembleDemo(t).Handler()

	t.Run("detail page links to the mirrored record API", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/records/abc123", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"https://api.example.org/api/records/abc123"`)
	})

	t.Run("listing page links to the mirrored search API", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/records?q=solar", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"https://api.example.org/search?q=solar"`)
	})

	t.Run("mirrored routes are not served locally", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/records/abc123", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
