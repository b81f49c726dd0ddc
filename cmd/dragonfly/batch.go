package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/dragonfly/file"
	"github.com/revelaction/dragonfly/stat"
	"github.com/urfave/cli/v2"
)

func batchCommand(e *env) *cli.Command {
	flags := append(companionFlags(),
		&cli.StringFlag{Name: "ext", Usage: "extension of the corpus files (default: settings)"},
		&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "number of files read at the same time (default: settings)"},
		&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not show the progress bar"},
	)

	return &cli.Command{
		Name:      "batch",
		Usage:     "load every corpus file of a directory and print a summary",
		ArgsUsage: "INPUT",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("batch: one INPUT file or directory is required")
			}
			input := c.Args().First()

			ext := e.settings.FileExt
			if c.IsSet("ext") {
				ext = c.String("ext")
			}
			workers := e.settings.Workers
			if c.IsSet("workers") {
				workers = c.Int("workers")
			}

			lister, err := file.NewLister(input, ext)
			if err != nil {
				return err
			}
			if lister.Len() == 0 {
				fmt.Fprintf(e.ui.Out, "No %s files in %s\n", ext, input)
				return nil
			}

			inputDir := input
			if !lister.IsDir {
				inputDir = filepath.Dir(input)
			}

			var onDone func(string)
			stop := func() {}
			if !c.Bool("quiet") {
				progress := uiprogress.New()
				progress.Out = e.ui.Err
				bar := progress.AddBar(lister.Len())
				bar.AppendCompleted()
				bar.PrependElapsed()
				progress.Start()
				stop = progress.Stop
				onDone = func(string) { bar.Incr() }
			}

			reader := e.newReader(c, inputDir)
			results, err := reader.ReadAll(c.Context, lister.Filenames(), workers, onDone)
			stop()
			if err != nil {
				return err
			}

			hdl := stat.NewHandler()
			failed := 0
			for _, res := range results {
				if res.Err != nil {
					failed++
					fmt.Fprintf(e.ui.Out, "%s: error: %v\n", filepath.Base(res.Path), res.Err)
					continue
				}
				doc := res.Doc
				hdl.Aggregate(doc)
				fmt.Fprintf(e.ui.Out, "%s: %d sentences, %d tokens%s\n",
					filepath.Base(doc.Filename), doc.NumSentences, doc.NumTokens, attachedSummary(doc.HasAnnotations, doc.HasTranslation, doc.HasCharVis))
			}

			stats := hdl.Get()
			fmt.Fprintf(e.ui.Out, "Num docs %d, num sentences %d, num tokens %d, num tokens per sentence %d\n",
				stats.NumDocs, stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)
			fmt.Fprintf(e.ui.Out, "Annotated %d, translated %d, with char weights %d\n",
				stats.NumAnnotated, stats.NumTranslated, stats.NumCharVis)

			if failed > 0 {
				return fmt.Errorf("%d of %d files could not be read", failed, len(results))
			}
			return nil
		},
	}
}

func attachedSummary(anno, eng, cm bool) string {
	s := ""
	if anno {
		s += " +anno"
	}
	if eng {
		s += " +eng"
	}
	if cm {
		s += " +cm"
	}
	return s
}
