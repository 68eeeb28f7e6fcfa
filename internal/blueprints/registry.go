package blueprints

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/atlanticdynamic/urlbridge/internal/app"
)

// Registry maintains blueprint groups. Registration normally happens from
// package init or early in main; the mutex makes the registry safe anyway,
// since it is process-wide state.
type Registry struct {
	mu     sync.RWMutex
	groups map[string][]Blueprint
}

// NewRegistry creates an empty blueprint registry.
func NewRegistry() *Registry {
	return &Registry{
		groups: make(map[string][]Blueprint),
	}
}

// Register appends blueprints to a named group, creating it if needed.
func (r *Registry) Register(group string, bps ...Blueprint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups[group] = append(r.groups[group], bps...)
}

// Group returns the blueprints of a group in registration order.
func (r *Registry) Group(group string) ([]Blueprint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	bps, ok := r.groups[group]
	if !ok {
		return nil, false
	}
	out := make([]Blueprint, len(bps))
	copy(out, bps)
	return out, true
}

// Groups returns the sorted names of all registered groups.
func (r *Registry) Groups() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.groups))
	for name := range r.groups {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Reset drops every group. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.groups = make(map[string][]Blueprint)
}

// Load applies every blueprint of every named group to the shell, in
// registration order. An unknown group or a failing blueprint aborts the
// load immediately: route discovery errors are fatal setup-time failures.
func (r *Registry) Load(a *app.App, groups ...string) error {
	logger := slog.Default().WithGroup("blueprints")

	for _, group := range groups {
		bps, ok := r.Group(group)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownGroup, group)
		}

		for _, bp := range bps {
			if err := bp.validate(); err != nil {
				return fmt.Errorf("group %q: %w", group, err)
			}

			mount := &Mount{
				app:    a,
				prefix: a.Config().BlueprintPrefix(bp.Name),
			}
			if err := bp.Register(mount); err != nil {
				return fmt.Errorf("registering blueprint %q from group %q: %w", bp.Name, group, err)
			}

			logger.Debug("Loaded blueprint",
				"group", group,
				"blueprint", bp.Name,
				"prefix", mount.prefix)
		}
	}

	return nil
}

// Default is the process-wide registry. Blueprint providers register into it
// from init; application assembly loads from it.
var Default = NewRegistry()

// Register appends blueprints to a named group of the Default registry.
func Register(group string, bps ...Blueprint) {
	Default.Register(group, bps...)
}

// Load applies groups from the Default registry to the shell.
func Load(a *app.App, groups ...string) error {
	return Default.Load(a, groups...)
}
