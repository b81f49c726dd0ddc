package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/revelaction/dragonfly/dict"
	"github.com/revelaction/dragonfly/edit"
	"github.com/urfave/cli/v2"
)

func dictCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "dict",
		Usage: "manage the translation dictionaries",
		Flags: dictFlags(),
		Subcommands: []*cli.Command{
			{
				Name:      "import",
				Usage:     "add the source<TAB>translation<TAB>type lines of FILE to the dictionary of LANG",
				ArgsUsage: "LANG FILE",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "overwrite", Usage: "replace the entries already in the dictionary"},
				},
				Action: e.withDict(func(c *cli.Context, m *dict.Manager) error {
					if c.NArg() != 2 {
						return errors.New("dict import: LANG and FILE are required")
					}
					lang, path := c.Args().Get(0), c.Args().Get(1)

					f, err := os.Open(path)
					if err != nil {
						return err
					}
					defer f.Close()

					importFn := m.Import
					if c.Bool("overwrite") {
						importFn = m.ImportOverwrite
					}
					n, err := importFn(lang, f)
					if err != nil {
						return err
					}
					fmt.Fprintf(e.ui.Out, "Imported %d entries into %s\n", n, lang)
					return nil
				}),
			},
			{
				Name:      "export",
				Usage:     "write the dictionary of LANG as source<TAB>translation<TAB>type lines",
				ArgsUsage: "LANG [FILE]",
				Action: e.withDict(func(c *cli.Context, m *dict.Manager) (err error) {
					if c.NArg() < 1 || c.NArg() > 2 {
						return errors.New("dict export: LANG is required")
					}
					lang := c.Args().Get(0)

					var w io.Writer = e.ui.Out
					if c.NArg() == 2 {
						var f *os.File
						f, err = os.Create(c.Args().Get(1))
						if err != nil {
							return err
						}
						defer func() {
							if cerr := f.Close(); err == nil {
								err = cerr
							}
						}()
						w = f
					}

					n, err := m.Export(lang, w)
					if err != nil {
						return err
					}
					e.logger.Info("dictionary exported", "lang", lang, "entries", n)
					return nil
				}),
			},
			{
				Name:      "add",
				Usage:     "add or replace one entry; TYPE may be abbreviated",
				ArgsUsage: "LANG SOURCE TRANSLATION TYPE",
				Action: e.withDict(func(c *cli.Context, m *dict.Manager) error {
					if c.NArg() != 4 {
						return errors.New("dict add: LANG, SOURCE, TRANSLATION and TYPE are required")
					}
					args := c.Args()
					entry, err := m.Add(args.Get(0), args.Get(1), args.Get(2), args.Get(3))
					if err != nil {
						return err
					}
					fmt.Fprintf(e.ui.Out, "%s\t%s\t%s\n", args.Get(1), entry.Translation, entry.Type)
					return nil
				}),
			},
			{
				Name:      "ls",
				Usage:     "list the dictionaries, or the entries of LANG",
				ArgsUsage: "[LANG]",
				Action: e.withDict(func(c *cli.Context, m *dict.Manager) error {
					if c.NArg() == 1 {
						_, err := m.Export(c.Args().First(), e.ui.Out)
						return err
					}

					langs, err := m.Languages()
					if err != nil {
						return err
					}
					for _, lang := range langs {
						d, err := m.Get(lang)
						if err != nil {
							return err
						}
						fmt.Fprintf(e.ui.Out, "%s\t%d\n", lang, len(d))
					}
					return nil
				}),
			},
			{
				Name:      "edit",
				Usage:     "edit the dictionary of LANG interactively",
				ArgsUsage: "LANG",
				Action: e.withDict(func(c *cli.Context, m *dict.Manager) error {
					if c.NArg() != 1 {
						return errors.New("dict edit: LANG is required")
					}
					return edit.NewHandler(m, c.Args().First(), e.ui.Out).Run()
				}),
			},
		},
	}
}

// withDict opens the dictionary repository around action.
func (e *env) withDict(action func(*cli.Context, *dict.Manager) error) cli.ActionFunc {
	return func(c *cli.Context) (err error) {
		m, closeRepo, err := e.newDictManager(c)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := closeRepo(); err == nil {
				err = cerr
			}
		}()
		return action(c, m)
	}
}
