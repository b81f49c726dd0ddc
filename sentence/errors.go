package sentence

import (
	"errors"
	"fmt"
)

var (
	// ErrAlignmentMismatch is returned when an annotation file does not
	// describe the same source text as the document.
	ErrAlignmentMismatch = errors.New("annotations do not match input file")

	// ErrAlignmentLengthMismatch is returned when a weight row does not
	// cover exactly the characters and separators of its sentence.
	ErrAlignmentLengthMismatch = errors.New("char weights do not match sentence length")
)

// AlignmentLengthMismatchError reports the sentence whose weight row has the
// wrong length. Got is -1 when the row is missing.
type AlignmentLengthMismatchError struct {
	Sentence int
	Want     int
	Got      int
}

func (e *AlignmentLengthMismatchError) Error() string {
	if e.Got < 0 {
		return fmt.Sprintf("sentence %d: no char weight row", e.Sentence)
	}
	return fmt.Sprintf("sentence %d: char weight row has %d symbols, want %d", e.Sentence, e.Got, e.Want)
}

func (e *AlignmentLengthMismatchError) Is(target error) bool {
	return target == ErrAlignmentLengthMismatch
}
