package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/revelaction/dragonfly/annotation"
	"github.com/urfave/cli/v2"
)

func writeCommand(e *env) *cli.Command {
	flags := append(companionFlags(),
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory (default: settings)"},
	)

	return &cli.Command{
		Name:      "write",
		Usage:     "write the annotation file of a corpus file",
		ArgsUsage: "FILE",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("write: one FILE is required")
			}
			path := c.Args().First()

			doc, err := e.newReader(c, filepath.Dir(path)).Read(path)
			if err != nil {
				return err
			}

			out := e.settings.OutputDir
			if c.IsSet("out") {
				out = c.String("out")
			}

			written, err := annotation.NewWriter(out).Write(path, annotation.FromDoc(doc, e.settings.DefaultTag))
			if err != nil {
				return err
			}

			e.logger.Info("annotation written", "path", written, "sentences", doc.NumSentences)
			fmt.Fprintf(e.ui.Out, "Wrote %s\n", written)
			return nil
		},
	}
}
