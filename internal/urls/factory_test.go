package urls

import (
	"testing"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/blueprints"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFactory(t *testing.T) {
	t.Run("produces a ready builder", func(t *testing.T) {
		host := app.New("main", testConfig())
		host.Freeze()

		factory := NewFactory(ownPrefixKey, otherPrefixKey, []string{"archive.views"},
			WithRegistry(otherAppRegistry(t)))

		builder, err := factory(host)
		require.NoError(t, err)

		got, err := builder.Build("search.results", nil, "")
		require.NoError(t, err)
		assert.Equal(t, "https://archive.example.org/search", got)
	})

	t.Run("setup failure propagates", func(t *testing.T) {
		host := app.New("main", testConfig())

		factory := NewFactory(ownPrefixKey, otherPrefixKey, []string{"no.such.group"},
			WithRegistry(blueprints.NewRegistry()))

		_, err := factory(host)
		require.Error(t, err)
		assert.ErrorIs(t, err, blueprints.ErrUnknownGroup)
	})
}

func TestInstall(t *testing.T) {
	t.Run("attaches the builder to the host", func(t *testing.T) {
		host := app.New("main", testConfig())
		require.NoError(t, host.Handle("GET", "/records/:id", "records.detail", noopHandler()))
		host.Freeze()

		factory := NewFactory(ownPrefixKey, otherPrefixKey, []string{"archive.views"},
			WithRegistry(otherAppRegistry(t)))
		require.NoError(t, Install(host, factory))

		require.NotNil(t, host.URLBuilder())
		got, err := host.URLFor("records.detail", map[string]string{"id": "abc123"})
		require.NoError(t, err)
		assert.Equal(t, "https://main.example.org/records/abc123", got)
	})

	t.Run("failed factory leaves the host without a builder", func(t *testing.T) {
		host := app.New("main", testConfig())

		factory := NewFactory(ownPrefixKey, otherPrefixKey, []string{"no.such.group"},
			WithRegistry(blueprints.NewRegistry()))

		err := Install(host, factory)
		require.Error(t, err)
		assert.Nil(t, host.URLBuilder())
	})
}
