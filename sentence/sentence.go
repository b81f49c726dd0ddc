package sentence

// Column is one labeled layer of a sentence: the original tokens, a PoS
// column, a gazetteer column, etc.
type Column struct {
	Id    int    `json:"id"`
	Label string `json:"label"`

	// The token strings of the column, in line order.
	Strings []string `json:"strings"`

	// Either empty or the same length as Strings.
	Annotations []string `json:"annotations,omitempty"`
}

// NewColumn returns an empty column.
func NewColumn(id int, label string) *Column {
	return &Column{Id: id, Label: label, Strings: []string{}}
}

func (c *Column) Len() int {
	return len(c.Strings)
}

// Sentence represents a single sentence with its multiple columns of
// information. Column 0 always holds the original tokens.
type Sentence struct {
	Id      int       `json:"id"`
	Columns []*Column `json:"columns"`

	// Per token character weights, set by Doc.AttachCharVis.
	CharEntity [][]string `json:"char_entity,omitempty"`
}

func New(id int) *Sentence {
	return &Sentence{Id: id}
}

// Len returns the number of tokens of the sentence.
func (s *Sentence) Len() int {
	if len(s.Columns) == 0 {
		return 0
	}
	return s.Columns[0].Len()
}

// Tokens returns the original tokens (column 0).
func (s *Sentence) Tokens() []string {
	if len(s.Columns) == 0 {
		return nil
	}
	return s.Columns[0].Strings
}

func (s *Sentence) Add(c *Column) {
	s.Columns = append(s.Columns, c)
}

// Update appends str to the column at index.
func (s *Sentence) Update(index int, str string) {
	s.Columns[index].Strings = append(s.Columns[index].Strings, str)
}

// Attach stores the strings of c as the annotations of the tokens column.
func (s *Sentence) Attach(c *Column) {
	anno := make([]string, len(c.Strings))
	copy(anno, c.Strings)
	s.Columns[0].Annotations = anno
}
