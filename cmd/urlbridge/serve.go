package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/blueprints"
	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/atlanticdynamic/urlbridge/internal/server"
	"github.com/atlanticdynamic/urlbridge/internal/urls"
	"github.com/robbyt/go-supervisor/supervisor"
	"github.com/urfave/cli/v3"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Serve the bundled demo application with cross-application URLs",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
		},
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "Address to bind the HTTP server (host:port)",
			Aliases: []string{"l"},
			Value:   "127.0.0.1:8080",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		configPath := cmd.String("config")
		if configPath == "" {
			return cli.Exit("The --config flag is required", 1)
		}

		cfg, err := config.NewConfig(configPath)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to load config: %w", err), 1)
		}

		SetupLogger(cfg.Logging.Format.String(), cfg.Logging.Level.String())
		logger := slog.Default()

		registerDemoBlueprints()

		host := app.New("urlbridge.demo", cfg,
			app.WithLogger(logger.With("component", "app")))
		if err := blueprints.Load(host, demoUIGroup); err != nil {
			return cli.Exit(fmt.Errorf("failed to assemble application: %w", err), 1)
		}

		factory := urls.NewFactory(uiBaseURLKey, apiBaseURLKey, []string{demoAPIGroup},
			urls.WithLogger(logger.With("component", "urls")))
		if err := urls.Install(host, factory); err != nil {
			return cli.Exit(fmt.Errorf("failed to install URL builder: %w", err), 1)
		}

		runner, err := server.NewRunner(host, cmd.String("listen"),
			server.WithLogger(logger.With("component", "server")))
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create server runner: %w", err), 1)
		}

		super, err := supervisor.New(
			supervisor.WithRunnables(runner),
			supervisor.WithLogHandler(logger.Handler()),
			supervisor.WithContext(ctx),
		)
		if err != nil {
			return cli.Exit(fmt.Errorf("failed to create supervisor: %w", err), 1)
		}
		if err := super.Run(); err != nil {
			return cli.Exit(fmt.Errorf("failed to run server: %w", err), 1)
		}

		logger.Info("Server shutdown complete")
		return nil
	},
}
