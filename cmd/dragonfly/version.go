package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

// Set at build time with -ldflags "-X main.BuildTag=... -X main.BuildCommit=..."
var (
	BuildTag    = "dev"
	BuildCommit = "none"
)

func versionCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the version",
		Action: func(c *cli.Context) error {
			_, err := fmt.Fprintf(e.ui.Out, "dragonfly version %s (commit: %s)\n", BuildTag, BuildCommit)
			return err
		},
	}
}
