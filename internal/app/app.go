// Package app provides the application shell: a named container holding the
// process configuration, the application's own routing table, the handlers
// for those routes, and the URL builder attached at assembly time.
//
// A shell is assembled single-threaded before serving begins. Once Freeze is
// called the route table is sealed and the shell is safe for concurrent use.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/atlanticdynamic/urlbridge/internal/routing"
	"github.com/gofrs/uuid/v5"
)

// URLBuilder produces one absolute URL for an endpoint name and parameter
// values. The method hint may be empty. Implementations are swappable; the
// shell only depends on this single capability.
type URLBuilder interface {
	Build(endpoint string, values map[string]string, method string) (string, error)
}

// App is an application shell.
type App struct {
	id       uuid.UUID
	name     string
	cfg      *config.Config
	table    *routing.Table
	handlers map[string]http.Handler
	urls     URLBuilder
	logger   *slog.Logger
}

// Option configures an App during construction.
type Option func(*App)

// WithLogger sets the logger used by the shell.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an application shell with an empty route table.
func New(name string, cfg *config.Config, opts ...Option) *App {
	a := &App{
		id:       uuid.Must(uuid.NewV6()),
		name:     name,
		cfg:      cfg,
		handlers: make(map[string]http.Handler),
		logger:   slog.Default().WithGroup("app"),
	}

	table, err := routing.NewTable()
	if err != nil {
		// NewTable without rules cannot fail; keep the invariant visible.
		panic(err)
	}
	a.table = table

	for _, opt := range opts {
		opt(a)
	}

	a.logger = a.logger.With("app", name, "instance", a.id)
	return a
}

// ID returns the shell's instance identifier, used for log correlation.
func (a *App) ID() uuid.UUID {
	return a.id
}

// Name returns the application name.
func (a *App) Name() string {
	return a.name
}

// Config returns the process-wide configuration handle.
func (a *App) Config() *config.Config {
	return a.cfg
}

// Routes returns the application's own routing table.
func (a *App) Routes() *routing.Table {
	return a.table
}

// Handle registers a route and its handler in the own table. An empty method
// registers the route for any method. The handler may be nil for routes that
// only exist for URL generation.
func (a *App) Handle(method, pattern, endpoint string, handler http.Handler) error {
	rule := routing.Rule{
		Pattern:  pattern,
		Endpoint: endpoint,
	}
	if method != "" {
		rule.Methods = []string{method}
	}

	if err := a.table.Add(rule); err != nil {
		return fmt.Errorf("registering route for app %q: %w", a.name, err)
	}

	if handler != nil {
		a.handlers[endpoint] = handler
	}

	a.logger.Debug("Registered route",
		"endpoint", endpoint,
		"pattern", pattern,
		"method", method)
	return nil
}

// Handler returns the handler registered for an endpoint.
func (a *App) Handler(endpoint string) (http.Handler, bool) {
	h, ok := a.handlers[endpoint]
	return h, ok
}

// Freeze seals the route table. Registration after Freeze fails.
func (a *App) Freeze() {
	a.table.Freeze()
}

// SetURLBuilder attaches the URL builder used by URLFor. Called once during
// application assembly.
func (a *App) SetURLBuilder(b URLBuilder) {
	a.urls = b
}

// URLBuilder returns the attached builder, or nil when none is attached.
func (a *App) URLBuilder() URLBuilder {
	return a.urls
}

// urlForOptions collects optional URLFor arguments.
type urlForOptions struct {
	method string
}

// URLForOption configures a URLFor call.
type URLForOption func(*urlForOptions)

// WithMethod restricts URL building to rules answering for the given method.
func WithMethod(method string) URLForOption {
	return func(o *urlForOptions) {
		o.method = method
	}
}

// URLFor builds an absolute URL for an endpoint through the attached
// URLBuilder. It is the application-code entry point used in place of
// relative URL helpers whenever cross-application URLs may be needed.
func (a *App) URLFor(endpoint string, values map[string]string, opts ...URLForOption) (string, error) {
	if a.urls == nil {
		return "", fmt.Errorf("%w: app %q", ErrNoURLBuilder, a.name)
	}

	o := urlForOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	return a.urls.Build(endpoint, values, o.method)
}

// String returns the name of this component.
func (a *App) String() string {
	return fmt.Sprintf("app.App[%s]", a.name)
}
