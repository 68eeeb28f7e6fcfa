package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "urlbridge",
		Version: Version,
		Usage:   "Cross-application URL building toolkit",
		Commands: []*cli.Command{
			versionCmd,
			validateCmd,
			routesCmd,
			serveCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
