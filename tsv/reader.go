// Package tsv parses tab separated corpus files into sentences.
//
// Each line holds one token, one column per annotation layer, with the
// original tokens in the first column. Sentences are separated by a blank
// line. There is no quote processing: the tab is the only delimiter.
package tsv

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	sent "github.com/revelaction/dragonfly/sentence"
	"golang.org/x/text/cases"
)

const (
	Delimiter = "\t"

	// DefaultMaxLineSize is the longest line the parser accepts.
	DefaultMaxLineSize = 1024 * 1024
)

var headerTokens = map[string]bool{"tok": true, "token": true, "tokens": true}

// Stats counts how the rows of a file were classified.
type Stats struct {
	Rows      int
	DataRows  int
	BlankRows int

	// Non blank rows with the wrong number of fields. They end the current
	// sentence like a blank row does.
	MalformedRows int
}

// Table is the result of parsing one file.
type Table struct {
	Labels     []string
	NumColumns int
	HasHeader  bool
	Sentences  []*sent.Sentence
	Stats      Stats
}

// Parser builds a Table from a TSV stream.
type Parser struct {
	MaxLineSize int

	logger *slog.Logger
}

func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{MaxLineSize: DefaultMaxLineSize, logger: logger}
}

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := p.parse(f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

func (p *Parser) Parse(r io.Reader) (*Table, error) {
	return p.parse(r, "")
}

func (p *Parser) parse(r io.Reader, name string) (*Table, error) {
	logger := p.logger
	if name != "" {
		logger = logger.With("file", name)
	}

	scanner := bufio.NewScanner(r)
	maxSize := p.MaxLineSize
	if maxSize <= 0 {
		maxSize = DefaultMaxLineSize
	}
	scanner.Buffer(make([]byte, 0, min(64*1024, maxSize)), maxSize)

	t := &Table{}

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		logger.Warn("empty input, no sentences")
		return t, nil
	}

	line := 1
	first := split(scanner.Text())
	t.Stats.Rows++
	if len(first) == 0 {
		logger.Warn("first row is blank, no sentences")
		return t, nil
	}

	t.NumColumns = len(first)
	t.HasHeader = isHeader(first)
	t.Labels = columnLabels(first, t.HasHeader)

	var data [][]string
	if !t.HasHeader {
		data = append(data, first)
		t.Stats.DataRows++
	}

	for scanner.Scan() {
		line++
		t.Stats.Rows++
		row := split(scanner.Text())

		if t.isData(row) {
			data = append(data, row)
			t.Stats.DataRows++
			continue
		}

		if isBlank(row) {
			t.Stats.BlankRows++
		} else {
			t.Stats.MalformedRows++
			logger.Debug("malformed row treated as sentence break", "line", line, "fields", len(row), "want", t.NumColumns)
		}

		// sentence break
		if len(data) > 0 {
			t.Sentences = append(t.Sentences, t.sentence(data))
			data = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("line %d: %w", line+1, err)
	}

	// last sentence might not have an empty line after it
	if len(data) > 0 {
		t.Sentences = append(t.Sentences, t.sentence(data))
	}

	if t.Stats.MalformedRows > 0 {
		logger.Warn("rows with wrong number of fields treated as sentence breaks", "rows", t.Stats.MalformedRows, "columns", t.NumColumns)
	}

	return t, nil
}

// isData reports whether row has the right number of columns and data in
// at least one of them.
func (t *Table) isData(row []string) bool {
	if len(row) != t.NumColumns {
		return false
	}
	return !isBlank(row)
}

func (t *Table) sentence(data [][]string) *sent.Sentence {
	s := sent.New(len(t.Sentences))
	for i, label := range t.Labels {
		s.Add(sent.NewColumn(i, label))
	}
	for _, row := range data {
		for i, value := range row {
			s.Update(i, value)
		}
	}
	return s
}

func split(line string) []string {
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return nil
	}
	return strings.Split(line, Delimiter)
}

func isBlank(row []string) bool {
	for _, f := range row {
		if f != "" {
			return false
		}
	}
	return true
}

func isHeader(row []string) bool {
	return headerTokens[cases.Fold().String(row[0])]
}

func columnLabels(row []string, useValues bool) []string {
	labels := make([]string, len(row))
	for i, value := range row {
		if useValues {
			labels[i] = strings.TrimSpace(value)
		} else {
			labels[i] = fmt.Sprintf("column %d", i+1)
		}
	}
	return labels
}
