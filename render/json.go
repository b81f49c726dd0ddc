package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/dragonfly/sentence"
)

// JSONRenderer writes Docs as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Render serializes doc, with its attached data, as one JSON object.
func (r *JSONRenderer) Render(doc *sent.Doc) error {
	enc := json.NewEncoder(r.W)
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}
