// Package urls implements cross-application URL building. An AppsBuilder
// answers URL requests for the hosting application's own endpoints and, on a
// miss, for the endpoints of a second application whose routes were mirrored
// at setup time. The second application itself is never loaded.
package urls

import (
	"log/slog"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/blueprints"
	"github.com/atlanticdynamic/urlbridge/internal/routing"
)

// Interface guard: AppsBuilder is attachable to an application shell.
var _ app.URLBuilder = (*AppsBuilder)(nil)

// AppsBuilder builds absolute URLs with knowledge of a dual-application
// deployment. It holds the names of the two settings keys carrying the
// external prefixes and the entry point groups describing the other
// application's routes.
type AppsBuilder struct {
	cfgAppPrefix   string
	cfgOtherPrefix string
	groups         []string

	registry *blueprints.Registry
	logger   *slog.Logger

	// Set by Setup; immutable afterwards.
	host   *app.App
	mirror *routing.Table
}

// Option configures an AppsBuilder during construction.
type Option func(*AppsBuilder)

// WithLogger sets the logger used during setup.
func WithLogger(logger *slog.Logger) Option {
	return func(b *AppsBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithRegistry selects the blueprint registry used to discover the other
// application's routes. Defaults to blueprints.Default.
func WithRegistry(registry *blueprints.Registry) Option {
	return func(b *AppsBuilder) {
		if registry != nil {
			b.registry = registry
		}
	}
}

// New creates an AppsBuilder. cfgAppPrefix and cfgOtherPrefix name the
// settings keys holding the external prefix of the current and the other
// application; groups name the entry point groups the other application's
// routes are discovered from. The builder is unusable until Setup has run.
func New(cfgAppPrefix, cfgOtherPrefix string, groups []string, opts ...Option) *AppsBuilder {
	b := &AppsBuilder{
		cfgAppPrefix:   cfgAppPrefix,
		cfgOtherPrefix: cfgOtherPrefix,
		groups:         groups,
		registry:       blueprints.Default,
		logger:         slog.Default().WithGroup("urls"),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces one absolute URL for an endpoint. Two phases, first match
// wins:
//
//  1. The host application's own routing table, read fresh on every call.
//     On success the result carries the current application's external
//     prefix.
//  2. Only when phase 1 failed with a build failure (not any other error),
//     the mirrored table of the other application, carrying the other
//     application's external prefix.
//
// A phase-2 failure propagates to the caller: a URL that builds from
// neither table is a programming error, not a recoverable condition.
// Absoluteness comes purely from concatenating the configured prefix with
// the relative path; no scheme or host detection happens here.
func (b *AppsBuilder) Build(endpoint string, values map[string]string, method string) (string, error) {
	if b.host == nil || b.mirror == nil {
		return "", ErrNotSetup
	}

	relative, err := b.host.Routes().Build(endpoint, values, method)
	if err == nil {
		return b.prefixed(b.cfgAppPrefix, relative)
	}
	if !routing.IsBuildError(err) {
		return "", err
	}

	relative, err = b.mirror.Build(endpoint, values, method)
	if err != nil {
		return "", err
	}
	return b.prefixed(b.cfgOtherPrefix, relative)
}

// prefixed prepends the external prefix named by settingKey. The setting is
// looked up on every call; nothing is cached between calls, so configuration
// stays the single source of truth.
func (b *AppsBuilder) prefixed(settingKey, relative string) (string, error) {
	prefix, err := b.host.Config().Setting(settingKey)
	if err != nil {
		return "", err
	}
	return prefix + relative, nil
}

// MirrorRules returns a copy of the mirrored rules, or nil before Setup.
// The mirror carries patterns and endpoint names only; there is nothing
// dispatchable to return.
func (b *AppsBuilder) MirrorRules() []routing.Rule {
	if b.mirror == nil {
		return nil
	}
	return b.mirror.Rules()
}

// String returns the name of this component.
func (b *AppsBuilder) String() string {
	return "urls.AppsBuilder"
}
