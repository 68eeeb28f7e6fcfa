package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlanticdynamic/urlbridge/internal/app"
	"github.com/atlanticdynamic/urlbridge/internal/blueprints"
	"github.com/atlanticdynamic/urlbridge/internal/config"
	"github.com/atlanticdynamic/urlbridge/internal/fancy"
	"github.com/atlanticdynamic/urlbridge/internal/routing"
	"github.com/atlanticdynamic/urlbridge/internal/urls"
	"github.com/urfave/cli/v3"
)

var routesCmd = &cli.Command{
	Name:  "routes",
	Usage: "Show the demo application's own and mirrored route tables",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Usage:   "Path to TOML configuration file",
			Aliases: []string{"c"},
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

		registerDemoBlueprints()

		host := app.New("urlbridge.demo", cfg)
		if err := blueprints.Load(host, demoUIGroup); err != nil {
			return cli.Exit(fmt.Errorf("failed to assemble application: %w", err), 1)
		}

		builder := urls.New(uiBaseURLKey, apiBaseURLKey, []string{demoAPIGroup})
		if err := builder.Setup(host); err != nil {
			return cli.Exit(fmt.Errorf("failed to mirror routes: %w", err), 1)
		}

		fmt.Println(routesTree(host.Routes().Rules(), builder.MirrorRules()))
		return nil
	},
}

// routesTree renders both route tables. Mirrored rules carry no handlers, so
// they are listed under their own branch rather than mixed into the served
// table.
func routesTree(own, mirrored []routing.Rule) string {
	t := fancy.Tree()
	t.Root(fancy.RootStyle.Render("Routes"))

	ownTree := t.Child(fancy.BranchNode("Served", fmt.Sprintf("(%d)", len(own))))
	for _, rule := range own {
		ownTree.Child(ruleText(rule))
	}

	mirrorTree := t.Child(fancy.BranchNode("Mirrored", fmt.Sprintf("(%d)", len(mirrored))))
	for _, rule := range mirrored {
		mirrorTree.Child(ruleText(rule))
	}

	return t.String()
}

func ruleText(rule routing.Rule) string {
	methods := "ANY"
	if len(rule.Methods) > 0 {
		methods = strings.Join(rule.Methods, ",")
	}
	return fmt.Sprintf("%s %s %s",
		fancy.EndpointText(rule.Endpoint),
		fancy.RouteText(rule.Pattern),
		fancy.InfoStyle.Render(methods),
	)
}
