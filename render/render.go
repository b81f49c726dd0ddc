package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	sent "github.com/revelaction/dragonfly/sentence"
)

const DefaultColumnWidth = 10

var (
	Black   = "\033[1;30m"
	Red     = "\033[1;31m"
	Green   = "\033[1;32m"
	Yellow  = "\033[0;33m"
	Purple  = "\033[1;34m"
	Magenta = "\033[1;35m"
	Teal    = "\033[1;36m"
	Gray    = "\033[0;37m"
	White   = "\033[1;37m"
	Off     = "\033[0m"
)

// entity type to color
var tagColors = map[string]string{
	"PER": Yellow,
	"ORG": Teal,
	"GPE": Green,
	"LOC": Purple,
}

func SupportedFormats() []string {
	return []string{"text", "json"}
}

// Renderer writes a Doc as a table: one token per line, one column per
// annotation layer, followed by the tag and the char weights if attached.
type Renderer struct {
	W io.Writer

	HasColor bool

	// Width of each column, in terminal cells.
	ColumnWidth int
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{W: w, ColumnWidth: DefaultColumnWidth}
}

// Doc writes count sentences of doc starting at start. A negative count
// writes all the remaining sentences.
func (r *Renderer) Doc(doc *sent.Doc, start, count int) {
	if start < 0 {
		start = 0
	}
	if start >= len(doc.Sentences) {
		return
	}

	sentences := doc.Sentences[start:]
	if count >= 0 && count < len(sentences) {
		sentences = sentences[:count]
	}

	for _, s := range sentences {
		fmt.Fprintf(r.W, "✍  %d\n", s.Id)
		r.Sentence(s)
		fmt.Fprintln(r.W)
	}

	if doc.HasTranslation {
		for _, line := range doc.Translation {
			fmt.Fprintf(r.W, "🌐 %s\n", line)
		}
	}
}

// Sentence writes the rows of s.
func (r *Renderer) Sentence(s *sent.Sentence) {
	if s.Len() == 0 {
		return
	}

	var header strings.Builder
	for _, c := range s.Columns {
		header.WriteString(r.cell(c.Label))
	}
	fmt.Fprintf(r.W, "%s%s%s\n", r.color(Gray), strings.TrimRight(header.String(), " "), r.color(Off))

	tokens := s.Columns[0]
	for i := 0; i < s.Len(); i++ {
		var row strings.Builder
		for _, c := range s.Columns {
			if i < c.Len() {
				row.WriteString(r.cell(c.Strings[i]))
			}
		}

		if len(tokens.Annotations) == s.Len() {
			tag := tokens.Annotations[i]
			row.WriteString(r.colorTag(tag, r.cell(tag)))
		}

		if i < len(s.CharEntity) {
			row.WriteString(strings.Join(s.CharEntity[i], ""))
		}

		fmt.Fprintln(r.W, strings.TrimRight(row.String(), " "))
	}
}

// Text returns the tokens of s separated by a space, the annotated entities
// colored.
func (r *Renderer) Text(s *sent.Sentence) string {
	tokens := s.Tokens()
	annotations := []string{}
	if len(s.Columns) > 0 {
		annotations = s.Columns[0].Annotations
	}

	words := make([]string, len(tokens))
	for i, tok := range tokens {
		if len(annotations) == len(tokens) {
			tok = r.colorTag(annotations[i], tok)
		}
		words[i] = tok
	}
	return strings.Join(words, " ")
}

func (r *Renderer) cell(s string) string {
	w := r.ColumnWidth
	if w <= 0 {
		w = DefaultColumnWidth
	}
	// keep one space between columns
	s = runewidth.Truncate(s, w-1, "…")
	return runewidth.FillRight(s, w)
}

func (r *Renderer) colorTag(tag, text string) string {
	if !r.HasColor || len(tag) < 3 {
		return text
	}
	c, ok := tagColors[strings.ToUpper(tag[2:])]
	if !ok {
		c = Magenta
	}
	return c + text + Off
}

func (r *Renderer) color(c string) string {
	if !r.HasColor {
		return ""
	}
	return c
}
