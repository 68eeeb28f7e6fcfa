package urls

import (
	"testing"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/blueprints"
	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupAlignsBlueprintPrefixes(t *testing.T) {
	// The throwaway shell inherits the host's blueprint prefixes, so the
	// mirrored patterns match how the other application really mounts them.
	host := app.New("main", &config.Config{
		Version: config.VersionLatest,
		Settings: map[string]string{
			ownPrefixKey:   ownPrefix,
			otherPrefixKey: otherPrefix,
		},
		BlueprintPrefixes: map[string]string{
			"search": "/explore",
		},
	})
	host.Freeze()

	b := New(ownPrefixKey, otherPrefixKey, []string{"archive.views"},
		WithRegistry(otherAppRegistry(t)))
	require.NoError(t, b.Setup(host))

	got, err := b.Build("search.results", nil, "")
	require.NoError(t, err)
	assert.Equal(t, "https://archive.example.org/explore/search", got)
}

func TestSetupProducesFrozenMirror(t *testing.T) {
	_, b := newTestBuilder(t)
	assert.True(t, b.mirror.Frozen())
}

func TestSetupDiscoveryFailureIsFatal(t *testing.T) {
	host := app.New("main", testConfig())

	b := New(ownPrefixKey, otherPrefixKey, []string{"archive.views", "missing.group"},
		WithRegistry(otherAppRegistry(t)))

	err := b.Setup(host)
	require.Error(t, err)
	assert.ErrorIs(t, err, blueprints.ErrUnknownGroup)
	assert.Nil(t, b.MirrorRules(), "a failed setup must not leave a partial mirror")
}
