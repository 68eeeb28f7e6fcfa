// Package blueprints implements the entry-point-group mechanism used to
// assemble applications. A blueprint contributes routes to an application
// shell; blueprints are registered under named groups, and an application is
// assembled by loading one or more groups into a shell.
//
// The same mechanism serves two callers: assembling the live application,
// and assembling the throwaway shell the URL mirror is copied from.
package blueprints

import (
	"fmt"
	"net/http"

	"github.com/atlanticdynamic/urlbridge/internal/app"
)

// Blueprint is a named, reusable contributor of routes.
type Blueprint struct {
	// Name identifies the blueprint; it selects the URL prefix the
	// blueprint mounts under (config blueprint_prefixes table).
	Name string

	// Register is called with a Mount scoped to the blueprint's prefix.
	Register func(m *Mount) error
}

// Mount scopes route registration to a blueprint's configured URL prefix.
type Mount struct {
	app    *app.App
	prefix string
}

// App returns the shell being assembled.
func (m *Mount) App() *app.App {
	return m.app
}

// Prefix returns the mount prefix, which may be empty.
func (m *Mount) Prefix() string {
	return m.prefix
}

// Handle registers a route under the mount prefix.
func (m *Mount) Handle(method, pattern, endpoint string, handler http.Handler) error {
	return m.app.Handle(method, joinPattern(m.prefix, pattern), endpoint, handler)
}

// joinPattern prepends the mount prefix to a route pattern. The prefix is
// validated at config load to have no trailing slash.
func joinPattern(prefix, pattern string) string {
	if prefix == "" {
		return pattern
	}
	if pattern == "/" {
		return prefix
	}
	return prefix + pattern
}

// validate checks a blueprint before it is applied.
func (b Blueprint) validate() error {
	if b.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidBlueprint)
	}
	if b.Register == nil {
		return fmt.Errorf("%w: blueprint %q has no register function", ErrInvalidBlueprint, b.Name)
	}
	return nil
}
