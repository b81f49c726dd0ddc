package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/revelaction/dragonfly/corpus"
	"github.com/revelaction/dragonfly/dict"
	"github.com/revelaction/dragonfly/file"
	"github.com/revelaction/dragonfly/settings"
	"github.com/revelaction/dragonfly/storage/filesystem"
	"github.com/revelaction/dragonfly/storage/sqlite/zombiezen"
	"github.com/revelaction/dragonfly/tsv"
	"github.com/urfave/cli/v2"
)

const dictDBName = "dict.db"

// companionFlags are the flags of the commands reading corpus files.
func companionFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "anno-dir", Usage: "directory of the .anno files (default: settings, else the input directory)"},
		&cli.StringFlag{Name: "eng-dir", Usage: "directory of the .eng files (default: settings, else the input directory)"},
		&cli.StringFlag{Name: "cm-dir", Usage: "directory of the .cm files (default: settings, else the input directory)"},
	}
}

// companionDir returns the flag value, else the settings value, else inputDir.
func companionDir(c *cli.Context, flag, configured, inputDir string) string {
	if c.IsSet(flag) {
		return c.String(flag)
	}
	if configured != "" {
		return configured
	}
	return inputDir
}

// newReader returns a corpus reader looking for companions of the files in
// inputDir.
func (e *env) newReader(c *cli.Context, inputDir string) *corpus.Reader {
	companions := file.NewCompanions(
		companionDir(c, "anno-dir", e.settings.AnnotationDir, inputDir),
		companionDir(c, "eng-dir", e.settings.TranslationDir, inputDir),
		companionDir(c, "cm-dir", e.settings.CharVisDir, inputDir),
		e.logger,
	)
	return corpus.NewReader(tsv.NewParser(e.logger), companions, e.logger)
}

// dictFlags are the flags of the dict command and its subcommands.
func dictFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "dict-dir", Usage: "directory of the dictionaries (default: settings)"},
		&cli.StringFlag{Name: "backend", Usage: "json or sqlite (default: settings)"},
	}
}

// newDictManager opens the dictionary repository of the settings, or of the
// flags if given. closeRepo releases the repository.
func (e *env) newDictManager(c *cli.Context) (m *dict.Manager, closeRepo func() error, err error) {
	dir := e.settings.DictDir
	if c.IsSet("dict-dir") {
		dir = c.String("dict-dir")
	}
	backend := e.settings.DictBackend
	if c.IsSet("backend") {
		backend = c.String("backend")
	}

	repo, closeRepo, err := newDictRepository(c.Context, backend, dir, e.settings.Workers)
	if err != nil {
		return nil, nil, err
	}
	return dict.NewManager(repo, e.logger), closeRepo, nil
}

func newDictRepository(ctx context.Context, backend, dir string, poolSize int) (dict.Repository, func() error, error) {
	switch backend {
	case settings.DictBackendJSON:
		return filesystem.NewDictStore(dir), func() error { return nil }, nil

	case settings.DictBackendSQLite:
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
		pool, err := zombiezen.NewPool(filepath.Join(dir, dictDBName), poolSize)
		if err != nil {
			return nil, nil, err
		}
		if err := zombiezen.CreateSchemas(ctx, pool, zombiezen.DictSchema); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("failed to create dictionary tables: %w", err)
		}
		return zombiezen.NewDictStore(pool), pool.Close, nil
	}

	return nil, nil, fmt.Errorf("unknown dictionary backend: %s", backend)
}
