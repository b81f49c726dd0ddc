package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/revelaction/dragonfly/logging"
	"github.com/revelaction/dragonfly/settings"
	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "dragonfly: %v\n", err)
}

// env holds the settings and logger loaded before any command runs.
type env struct {
	ui       UI
	settings settings.Settings
	logger   *slog.Logger
}

func newApp(ui UI) *cli.App {
	e := &env{ui: ui}

	return &cli.App{
		Name:      "dragonfly",
		Usage:     "load, check and annotate tab separated corpora",
		Writer:    ui.Out,
		ErrWriter: ui.Err,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Usage:   "directory of the settings file",
				Value:   settings.DefaultDir(),
				EnvVars: []string{"DRAGONFLY_CONFIG_DIR"},
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error (overrides the settings)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "text or json (overrides the settings)",
			},
		},
		Before: e.before,
		Commands: []*cli.Command{
			loadCommand(e),
			batchCommand(e),
			writeCommand(e),
			statsCommand(e),
			dictCommand(e),
			settingsCommand(e),
			versionCommand(e),
		},
		// errors are printed by main
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func (e *env) before(c *cli.Context) error {
	mgr, err := settings.NewManager(c.String("config-dir"))
	if err != nil {
		return err
	}

	s, err := mgr.Load()
	if err != nil {
		return err
	}
	if c.IsSet("log-level") {
		s.LogLevel = c.String("log-level")
	}
	if c.IsSet("log-format") {
		s.LogFormat = c.String("log-format")
	}

	logger, err := logging.New(e.ui.Err, s.LogLevel, s.LogFormat)
	if err != nil {
		return err
	}

	e.settings = s
	e.logger = logger
	e.logger.Debug("settings loaded", "path", mgr.Path())
	return nil
}
