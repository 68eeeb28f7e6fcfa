package urls

import "github.com/atlanticdynamic/urlbridge/internal/app"

// Factory produces a ready-to-use URL builder for a host application. The
// hosting framework holds a Factory rather than a concrete type, so a
// different URL generation strategy can be swapped in without touching any
// call site. The only contract is app.URLBuilder.
type Factory func(host *app.App) (app.URLBuilder, error)

// NewFactory creates a Factory producing AppsBuilders configured with the
// two prefix settings keys and the other application's entry point groups.
// The returned factory performs the one-time mirror setup before handing
// the builder back.
func NewFactory(cfgAppPrefix, cfgOtherPrefix string, groups []string, opts ...Option) Factory {
	return func(host *app.App) (app.URLBuilder, error) {
		b := New(cfgAppPrefix, cfgOtherPrefix, groups, opts...)
		if err := b.Setup(host); err != nil {
			return nil, err
		}
		return b, nil
	}
}

// Install runs the factory for the host shell and attaches the produced
// builder to it. Must be invoked during application assembly, before
// request serving begins.
func Install(host *app.App, factory Factory) error {
	b, err := factory(host)
	if err != nil {
		return err
	}
	host.SetURLBuilder(b)
	return nil
}
