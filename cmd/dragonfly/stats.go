package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/revelaction/dragonfly/file"
	"github.com/revelaction/dragonfly/stat"
	"github.com/urfave/cli/v2"
)

func statsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "stats",
		Usage:     "count the BIO tagged entities of token<TAB>tag files",
		ArgsUsage: "PATH",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ext", Usage: "extension of the files of a PATH directory (default: all files)"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print every entity with its count"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("stats: one PATH file or directory is required")
			}

			lister, err := file.NewLister(c.Args().First(), c.String("ext"))
			if err != nil {
				return err
			}

			es := stat.NewEntityStats()
			for _, path := range lister.Filenames() {
				if err := aggregateFile(es, path); err != nil {
					return err
				}
				e.logger.Debug("stats aggregated", "file", path)
			}

			printEntityStats(e.ui, es, c.Bool("verbose"))
			return nil
		},
	}
}

func aggregateFile(es *stat.EntityStats, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := es.Aggregate(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

func printEntityStats(ui UI, es *stat.EntityStats, verbose bool) {
	fmt.Fprintf(ui.Out, "%d Documents\n", es.NumDocs)
	fmt.Fprintf(ui.Out, "%d Entity Tags\n", es.NumEntities())
	fmt.Fprintf(ui.Out, "%d Unique Entity Tags\n", es.NumUniqueEntities())
	for _, ts := range es.Ordered() {
		fmt.Fprintf(ui.Out, "%s: %d Entities\n", ts.Type, ts.NumEntities)
		fmt.Fprintf(ui.Out, "%s: %d Unique Entities\n", ts.Type, len(ts.Entities))
	}

	if !verbose {
		return
	}

	fmt.Fprintln(ui.Out, "---------------------------------")
	for _, ts := range es.Ordered() {
		fmt.Fprintf(ui.Out, "%s\n\n", ts.Type)
		for _, c := range ts.MostCommon() {
			fmt.Fprintf(ui.Out, "%s\t%d\n", c.Name, c.Count)
		}
	}
}
