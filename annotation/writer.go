// Package annotation writes token tags as .anno files, the format read back
// by Doc.Attach.
package annotation

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/revelaction/dragonfly/file"
	sent "github.com/revelaction/dragonfly/sentence"
)

// Line is one output line: a TokenLine or a SentenceBreak.
type Line interface {
	line()
}

type TokenLine struct {
	Token string
	Tag   string
}

// SentenceBreak is written as a blank line.
type SentenceBreak struct{}

func (TokenLine) line()     {}
func (SentenceBreak) line() {}

// Encode writes lines to w as token<TAB>tag lines.
func Encode(w io.Writer, lines []Line) error {
	bw := bufio.NewWriter(w)
	for _, l := range lines {
		var err error
		switch v := l.(type) {
		case TokenLine:
			_, err = fmt.Fprintf(bw, "%s\t%s\n", v.Token, v.Tag)
		case SentenceBreak:
			err = bw.WriteByte('\n')
		default:
			err = fmt.Errorf("unknown line type %T", l)
		}
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// FromDoc returns the lines of the tokens of doc and their annotations, with
// a break after each sentence. Tokens without annotation get defaultTag.
func FromDoc(doc *sent.Doc, defaultTag string) []Line {
	var lines []Line
	for _, s := range doc.Sentences {
		if s.Len() == 0 {
			continue
		}
		col := s.Columns[0]
		for i, tok := range col.Strings {
			tag := defaultTag
			if len(col.Annotations) == len(col.Strings) {
				tag = col.Annotations[i]
			}
			lines = append(lines, TokenLine{Token: tok, Tag: tag})
		}
		lines = append(lines, SentenceBreak{})
	}
	return lines
}

// Writer writes .anno files in Dir.
type Writer struct {
	Dir string
}

func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Path returns the .anno path of filename.
func (w *Writer) Path(filename string) string {
	return filepath.Join(w.Dir, filepath.Base(filename)+file.AnnotationExt)
}

// Write writes lines to the .anno file of filename and returns its path.
func (w *Writer) Write(filename string, lines []Line) (path string, err error) {
	path = w.Path(filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(f, lines); err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return path, nil
}
