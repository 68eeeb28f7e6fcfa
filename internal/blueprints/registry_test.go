package blueprints

import (
	"errors"
	"net/http"
	"testing"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Version: config.VersionLatest,
		BlueprintPrefixes: map[string]string{
			"records": "/records",
		},
	}
}

func noopHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
}

func recordsBlueprint() Blueprint {
	return Blueprint{
		Name: "records",
		Register: func(m *Mount) error {
			if err := m.Handle("GET", "/", "records.search", noopHandler()); err != nil {
				return err
			}
			return m.Handle("GET", "/:id", "records.detail", noopHandler())
		},
	}
}

func searchBlueprint() Blueprint {
	return Blueprint{
		Name: "search",
		Register: func(m *Mount) error {
			return m.Handle("GET", "/search", "search.results", noopHandler())
		},
	}
}

func TestRegistryGroups(t *testing.T) {
	reg := NewRegistry()
	reg.Register("ui", recordsBlueprint())
	reg.Register("api", searchBlueprint())
	reg.Register("ui", searchBlueprint())

	assert.Equal(t, []string{"api", "ui"}, reg.Groups())

	ui, ok := reg.Group("ui")
	require.True(t, ok)
	assert.Len(t, ui, 2)

	_, ok = reg.Group("absent")
	assert.False(t, ok)

	reg.Reset()
	assert.Empty(t, reg.Groups())
}

func TestRegistryGroupReturnsCopy(t *testing.T) {
	reg := NewRegistry()
	reg.Register("ui", recordsBlueprint())

	bps, ok := reg.Group("ui")
	require.True(t, ok)
	bps[0] = Blueprint{Name: "mutated"}

	again, ok := reg.Group("ui")
	require.True(t, ok)
	assert.Equal(t, "records", again[0].Name)
}

func TestLoad(t *testing.T) {
	t.Run("applies groups with configured prefixes", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("ui", recordsBlueprint(), searchBlueprint())

		a := app.New("main", testConfig())
		require.NoError(t, reg.Load(a, "ui"))

		got, err := a.Routes().Build("records.detail", map[string]string{"id": "abc123"}, "")
		require.NoError(t, err)
		assert.Equal(t, "/records/abc123", got)

		got, err = a.Routes().Build("records.search", nil, "")
		require.NoError(t, err)
		assert.Equal(t, "/records", got, "a '/' pattern mounts at the bare prefix")

		got, err = a.Routes().Build("search.results", nil, "")
		require.NoError(t, err)
		assert.Equal(t, "/search", got, "blueprints without a prefix mount at the root")
	})

	t.Run("unknown group is fatal", func(t *testing.T) {
		reg := NewRegistry()
		a := app.New("main", testConfig())

		err := reg.Load(a, "absent")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGroup)
	})

	t.Run("failing blueprint aborts the load", func(t *testing.T) {
		reg := NewRegistry()
		boom := errors.New("boom")
		reg.Register("ui", Blueprint{
			Name:     "broken",
			Register: func(m *Mount) error { return boom },
		})

		a := app.New("main", testConfig())
		err := reg.Load(a, "ui")
		require.Error(t, err)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("blueprint without register function", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register("ui", Blueprint{Name: "empty"})

		a := app.New("main", testConfig())
		err := reg.Load(a, "ui")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidBlueprint)
	})
}

func TestDefaultRegistry(t *testing.T) {
	t.Cleanup(Default.Reset)
	Default.Reset()

	Register("ui", searchBlueprint())

	a := app.New("main", testConfig())
	require.NoError(t, Load(a, "ui"))

	got, err := a.Routes().Build("search.results", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "/search", got)
}
