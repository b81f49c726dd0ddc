package sentence

import (
	"fmt"
)

// Doc contains the sentences of one source file and the data attached to
// them. A Doc is only modified through the Attach methods, each of which
// either succeeds entirely or leaves the Doc as it was.
type Doc struct {
	Filename  string      `json:"filename"`
	Sentences []*Sentence `json:"sentences"`

	NumSentences int `json:"num_sentences"`
	NumTokens    int `json:"num_tokens"`

	HasAnnotations bool `json:"has_annotations"`
	HasTranslation bool `json:"has_translation"`
	HasCharVis     bool `json:"has_char_vis"`

	// Raw translation lines, nil until attached.
	Translation []string `json:"translation,omitempty"`
}

func NewDoc(filename string, sentences []*Sentence) *Doc {
	return &Doc{
		Filename:     filename,
		Sentences:    sentences,
		NumSentences: len(sentences),
		NumTokens:    countTokens(sentences),
	}
}

// Attach validates the sentences of an annotation file against the doc and
// copies the tags of their second column into the annotations of column 0.
func (d *Doc) Attach(annotations []*Sentence) error {
	if err := d.validateAnnotations(annotations); err != nil {
		return err
	}

	for i, s := range d.Sentences {
		s.Attach(annotations[i].Columns[1])
	}

	d.HasAnnotations = true
	return nil
}

// AttachTranslation stores the translation lines. Translations are free text
// and are not validated.
func (d *Doc) AttachTranslation(lines []string) {
	d.Translation = lines
	d.HasTranslation = true
}

// AttachCharVis maps one flat weight row per non reference sentence onto the
// tokens of the doc. See Align.
func (d *Doc) AttachCharVis(weights []string) error {
	entities, err := Align(d.Sentences, weights)
	if err != nil {
		return err
	}

	for i, s := range d.Sentences {
		s.CharEntity = entities[i]
	}

	d.HasCharVis = true
	return nil
}

func (d *Doc) validateAnnotations(annotations []*Sentence) error {
	if len(annotations) != d.NumSentences {
		return fmt.Errorf("%w: %d annotated sentences, document has %d", ErrAlignmentMismatch, len(annotations), d.NumSentences)
	}

	if d.NumSentences == 0 {
		return nil
	}

	// first word must match
	want, got := firstToken(d.Sentences[0]), firstToken(annotations[0])
	if want == nil || got == nil || *want != *got {
		return fmt.Errorf("%w: first token differs", ErrAlignmentMismatch)
	}

	for i, a := range annotations {
		// tag annotations are stored in the second column
		if len(a.Columns) < 2 {
			return fmt.Errorf("%w: sentence %d has no tag column", ErrAlignmentMismatch, i)
		}
		if a.Columns[1].Len() != d.Sentences[i].Len() {
			return fmt.Errorf("%w: sentence %d has %d tags for %d tokens", ErrAlignmentMismatch, i, a.Columns[1].Len(), d.Sentences[i].Len())
		}
	}

	return nil
}

func firstToken(s *Sentence) *string {
	if s == nil || s.Len() == 0 {
		return nil
	}
	return &s.Columns[0].Strings[0]
}

func countTokens(sentences []*Sentence) int {
	total := 0
	for _, s := range sentences {
		total += s.Len()
	}
	return total
}
