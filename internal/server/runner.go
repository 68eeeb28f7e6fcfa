// Package server serves an assembled application shell over HTTP as a
// go-supervisor runnable. Requests are dispatched through the application's
// own routing table and handler map; mirrored tables carry no handlers and
// can never be served.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/routing"
	"github.com/robbyt/go-supervisor/runnables/httpserver"
	"github.com/robbyt/go-supervisor/supervisor"
)

// Interface guard
var _ supervisor.Runnable = (*Runner)(nil)

// TimeoutOptions contains timeout configuration for the HTTP server
type TimeoutOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	DrainTimeout time.Duration
}

// Runner serves one application shell on one address.
type Runner struct {
	app      *app.App
	address  string
	logger   *slog.Logger
	timeouts TimeoutOptions
	server   *httpserver.Runner
}

// Option configures a Runner during construction.
type Option func(*Runner)

// WithLogger sets the logger used by the runner.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTimeouts sets the HTTP server timeouts.
func WithTimeouts(timeouts TimeoutOptions) Option {
	return func(r *Runner) {
		r.timeouts = timeouts
	}
}

// NewRunner creates a runner for a fully assembled shell. The shell's route
// table is frozen here if the caller has not already done so: serving and
// route registration never overlap.
func NewRunner(a *app.App, address string, opts ...Option) (*Runner, error) {
	if a == nil {
		return nil, fmt.Errorf("cannot serve a nil app")
	}
	if address == "" {
		return nil, fmt.Errorf("listen address is required")
	}

	r := &Runner{
		app:     a,
		address: address,
		logger:  slog.Default().WithGroup("server").With("app", a.Name()),
	}
	for _, opt := range opts {
		opt(r)
	}

	a.Freeze()

	if err := r.initializeServer(); err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP server runner: %w", err)
	}
	return r, nil
}

// initializeServer creates the underlying httpserver.Runner with a single
// catch-all route backed by the shell's routing table.
func (r *Runner) initializeServer() error {
	configCallback := func() (*httpserver.Config, error) {
		route, err := httpserver.NewRouteFromHandlerFunc(
			fmt.Sprintf("app:%s", r.app.Name()),
			"/",
			r.Handler().ServeHTTP,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create dispatch route: %w", err)
		}

		options := []httpserver.ConfigOption{}
		if r.timeouts.ReadTimeout > 0 {
			options = append(options, httpserver.WithReadTimeout(r.timeouts.ReadTimeout))
		}
		if r.timeouts.WriteTimeout > 0 {
			options = append(options, httpserver.WithWriteTimeout(r.timeouts.WriteTimeout))
		}
		if r.timeouts.IdleTimeout > 0 {
			options = append(options, httpserver.WithIdleTimeout(r.timeouts.IdleTimeout))
		}
		if r.timeouts.DrainTimeout > 0 {
			options = append(options, httpserver.WithDrainTimeout(r.timeouts.DrainTimeout))
		}

		config, err := httpserver.NewConfig(r.address, []httpserver.Route{*route}, options...)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server config: %w", err)
		}
		return config, nil
	}

	server, err := httpserver.NewRunner(httpserver.WithConfigCallback(configCallback))
	if err != nil {
		return fmt.Errorf("failed to create HTTP server runner: %w", err)
	}

	r.server = server
	return nil
}

// Handler returns the dispatch handler for the shell. Exposed for tests and
// for embedding the shell into an existing server.
func (r *Runner) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		endpoint, params, ok := r.app.Routes().Match(req.Method, req.URL.Path)
		if !ok {
			http.NotFound(w, req)
			return
		}

		handler, ok := r.app.Handler(endpoint)
		if !ok {
			// A rule without a handler exists for URL generation only.
			http.NotFound(w, req)
			return
		}

		r.logger.Debug("Dispatching request",
			"endpoint", endpoint,
			"path", req.URL.Path,
			"method", req.Method)

		ctx := routing.NewContextWithParams(req.Context(), params)
		handler.ServeHTTP(w, req.WithContext(ctx))
	})
}

// String returns a unique identifier for this runner
func (r *Runner) String() string {
	return fmt.Sprintf("server.Runner[%s]", r.app.Name())
}

// Run starts the HTTP server
func (r *Runner) Run(ctx context.Context) error {
	r.logger.Info("Starting HTTP server",
		"address", r.address,
		"routes", r.app.Routes().Len())
	return r.server.Run(ctx)
}

// Stop stops the HTTP server
func (r *Runner) Stop() {
	r.logger.Info("Stopping HTTP server", "address", r.address)
	r.server.Stop()
}
