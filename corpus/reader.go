// Package corpus loads corpus files into documents and attaches their
// companion files.
package corpus

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/revelaction/dragonfly/file"
	sent "github.com/revelaction/dragonfly/sentence"
	"github.com/revelaction/dragonfly/tsv"
	"golang.org/x/sync/errgroup"
)

type Reader struct {
	parser     *tsv.Parser
	companions *file.Companions
	logger     *slog.Logger
}

func NewReader(parser *tsv.Parser, companions *file.Companions, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{parser: parser, companions: companions, logger: logger}
}

// Read parses path into a Doc and attaches its annotations, translation and
// char weights, in that order. Missing companion files are skipped. An
// annotation file that does not match the document is an error.
func (r *Reader) Read(path string) (*sent.Doc, error) {
	table, err := r.parser.ParseFile(path)
	if err != nil {
		return nil, err
	}

	doc := sent.NewDoc(path, table.Sentences)
	logger := r.logger.With("file", path)
	logger.Debug("parsed", "sentences", doc.NumSentences, "tokens", doc.NumTokens, "columns", table.NumColumns)

	if r.companions == nil {
		return doc, nil
	}

	if annoPath, ok := r.companions.AnnotationPath(path); ok {
		anno, err := r.parser.ParseFile(annoPath)
		if err != nil {
			return nil, err
		}
		if err := doc.Attach(anno.Sentences); err != nil {
			return nil, fmt.Errorf("%s: %w", annoPath, err)
		}
		logger.Debug("annotations attached", "path", annoPath)
	}

	lines, ok, err := r.companions.Translation(path)
	if err != nil {
		return nil, err
	}
	if ok {
		doc.AttachTranslation(lines)
		logger.Debug("translation attached", "lines", len(lines))
	}

	weights, ok, err := r.companions.CharVis(path)
	if err != nil {
		return nil, err
	}
	if ok {
		// the doc stays usable without char weights
		if err := doc.AttachCharVis(weights); err != nil {
			logger.Warn("char weights not attached", "error", err)
		} else {
			logger.Debug("char weights attached", "rows", len(weights))
		}
	}

	return doc, nil
}

// Result is the outcome of reading one path. Exactly one of Doc and Err is
// set.
type Result struct {
	Path string
	Doc  *sent.Doc
	Err  error
}

// ReadAll reads paths with at most workers concurrent reads. The results
// are returned in the order of paths. A failed read is recorded in its
// Result and does not stop the others; only the cancellation of ctx does.
// onDone, if not nil, is called after each read and must be safe for
// concurrent use.
func (r *Reader) ReadAll(ctx context.Context, paths []string, workers int, onDone func(path string)) ([]Result, error) {
	results := make([]Result, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := r.Read(path)
			if err != nil {
				r.logger.Warn("read failed", "file", path, "error", err)
			}
			results[i] = Result{Path: path, Doc: doc, Err: err}
			if onDone != nil {
				onDone(path)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
