package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/revelaction/dragonfly/file"
	"github.com/revelaction/dragonfly/render"
	"github.com/urfave/cli/v2"
)

func loadCommand(e *env) *cli.Command {
	flags := append(companionFlags(),
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "text", Usage: "output format: text or json"},
		&cli.IntFlag{Name: "start", Usage: "index of the first sentence to print"},
		&cli.IntFlag{Name: "n", Value: -1, Usage: "number of sentences to print (-1: all)"},
		&cli.BoolFlag{Name: "no-color", Usage: "do not color the entity tags"},
		&cli.StringFlag{Name: "ext", Usage: "extension of the corpus files of a PATH directory (default: settings)"},
		&cli.StringFlag{Name: "file", Usage: "file of a PATH directory to load, by name or part of it (default: the first one)"},
	)

	return &cli.Command{
		Name:      "load",
		Usage:     "load a corpus file with its companion files and print it",
		ArgsUsage: "PATH",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("load: one PATH file or directory is required")
			}

			format := c.String("format")
			if !slices.Contains(render.SupportedFormats(), format) {
				return fmt.Errorf("unknown format %q, supported: %v", format, render.SupportedFormats())
			}

			ext := e.settings.FileExt
			if c.IsSet("ext") {
				ext = c.String("ext")
			}
			lister, err := file.NewLister(c.Args().First(), ext)
			if err != nil {
				return err
			}

			index, err := selectFile(lister, c.String("file"))
			if err != nil {
				return err
			}
			path := lister.Filename(index)

			doc, err := e.newReader(c, filepath.Dir(path)).Read(path)
			if err != nil {
				return err
			}

			if format == "json" {
				return render.NewJSONRenderer(e.ui.Out).Render(doc)
			}

			r := render.NewRenderer(e.ui.Out)
			r.ColumnWidth = e.settings.ColumnWidth
			r.HasColor = !c.Bool("no-color")
			r.Doc(doc, c.Int("start"), c.Int("n"))

			if lister.HasNext(index) {
				fmt.Fprintf(e.ui.Out, "➡  next: %s\n", filepath.Base(lister.Filename(index+1)))
			}
			return nil
		},
	}
}

// selectFile returns the index of name in lister, or 0 if name is empty.
func selectFile(lister *file.Lister, name string) (int, error) {
	if lister.Len() == 0 {
		return 0, fmt.Errorf("no corpus files in %s", lister.Path)
	}
	if name == "" {
		return 0, nil
	}
	index, ok := lister.IndexOf(name)
	if !ok {
		return 0, fmt.Errorf("file %q not found in %s", name, lister.Path)
	}
	return index, nil
}
