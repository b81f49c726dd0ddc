// Package file locates the companion files of a corpus file and lists the
// corpus files of a directory.
package file

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Companion file suffixes.
const (
	AnnotationExt  = ".anno"
	TranslationExt = ".eng"
	CharVisExt     = ".cm"

	// stripped from the base name before looking up the char weights
	conllSuffix = ".conll.txt"
)

// Companions finds the annotation, translation and char weight files of a
// corpus file by its base name. A missing or empty companion is not an
// error: the lookup reports it as absent.
type Companions struct {
	AnnotationDir  string
	TranslationDir string
	CharVisDir     string

	logger *slog.Logger
}

func NewCompanions(annotationDir, translationDir, charVisDir string, logger *slog.Logger) *Companions {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Companions{
		AnnotationDir:  annotationDir,
		TranslationDir: translationDir,
		CharVisDir:     charVisDir,
		logger:         logger,
	}
}

// AnnotationPath returns the path of the .anno file of filename if it exists.
func (c *Companions) AnnotationPath(filename string) (string, bool) {
	path := filepath.Join(c.AnnotationDir, filepath.Base(filename)+AnnotationExt)
	if !isFile(path) {
		c.logger.Info("no annotation file", "file", filename, "path", path)
		return "", false
	}
	return path, true
}

// Translation returns the lines of the .eng file of filename.
func (c *Companions) Translation(filename string) ([]string, bool, error) {
	path := filepath.Join(c.TranslationDir, filepath.Base(filename)+TranslationExt)
	return c.lines(filename, path, "translation")
}

// CharVis returns the char weight rows of the .cm file of filename, one row
// per non reference sentence.
func (c *Companions) CharVis(filename string) ([]string, bool, error) {
	base := strings.Replace(filepath.Base(filename), conllSuffix, "", 1)
	path := filepath.Join(c.CharVisDir, base+CharVisExt)
	return c.lines(filename, path, "char weights")
}

func (c *Companions) lines(filename, path, kind string) ([]string, bool, error) {
	if !isFile(path) {
		c.logger.Info("no "+kind+" file", "file", filename, "path", path)
		return nil, false, nil
	}

	lines, err := ReadLines(path)
	if err != nil {
		return nil, false, err
	}
	if len(lines) == 0 {
		c.logger.Info("empty "+kind+" file", "file", filename, "path", path)
		return nil, false, nil
	}
	return lines, true, nil
}

// ReadLines returns the lines of path without their line terminators.
func ReadLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(content) == 0 {
		return nil, nil
	}

	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
