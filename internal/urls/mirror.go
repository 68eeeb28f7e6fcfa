package urls

import (
	"fmt"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/atlanticdynamic/urlbridge/internal/routing"
)

// mirrorShellName names the throwaway shell the mirror is copied from.
const mirrorShellName = "urlbridge.mirror"

// Setup builds the route mirror for the other application and binds the
// builder to its host shell. It runs exactly once, during application
// assembly and outside any request; it must not depend on request state.
//
// The procedure mirrors how a real application is assembled: a throwaway
// shell is created with a minimal configuration carrying only the host's
// blueprint URL prefixes (so the mirrored patterns align with the other
// application's real mounting), the configured entry point groups are
// loaded into it, and each resulting rule's pattern and endpoint name are
// copied into an independent frozen table. Handlers registered by the
// blueprints stay behind on the shell and are discarded with it.
//
// Discovery errors propagate unchanged: a broken entry point group is a
// fatal application-startup failure.
func (b *AppsBuilder) Setup(host *app.App) error {
	shellCfg := &config.Config{
		Version:           config.VersionLatest,
		BlueprintPrefixes: host.Config().Clone().BlueprintPrefixes,
	}
	shell := app.New(mirrorShellName, shellCfg, app.WithLogger(b.logger))

	if err := b.registry.Load(shell, b.groups...); err != nil {
		return fmt.Errorf("discovering routes for mirror: %w", err)
	}

	mirror, err := routing.NewTable(shell.Routes().Rules()...)
	if err != nil {
		return fmt.Errorf("copying routes into mirror: %w", err)
	}
	mirror.Freeze()

	b.host = host
	b.mirror = mirror

	b.logger.Info("Route mirror ready",
		"host", host.Name(),
		"groups", b.groups,
		"rules", mirror.Len())
	return nil
}
