package main

import (
	"fmt"

	"github.com/revelaction/dragonfly/settings"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

func settingsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "print the effective settings",
		Action: func(c *cli.Context) error {
			mgr, err := settings.NewManager(c.String("config-dir"))
			if err != nil {
				return err
			}

			out, err := yaml.Marshal(e.settings)
			if err != nil {
				return err
			}
			fmt.Fprintf(e.ui.Out, "# %s\n%s", mgr.Path(), out)
			return nil
		},
	}
}
