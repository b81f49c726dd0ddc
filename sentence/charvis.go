package sentence

import (
	"unicode/utf8"
)

// NeutralWeight is the weight given to every character of the reference
// sentence.
const NeutralWeight = "0"

// Align maps flat weight rows onto the tokens of sentences.
//
// Sentence 0 is the reference sentence and gets NeutralWeight for every
// character. Sentence i > 0 reads weights[i-1], where the weights of
// consecutive tokens are separated by exactly one symbol. Row lengths are
// checked for every sentence before any result is built.
func Align(sentences []*Sentence, weights []string) ([][][]string, error) {
	for i := 1; i < len(sentences); i++ {
		want := expectedLen(sentences[i].Tokens())
		if i-1 >= len(weights) {
			return nil, &AlignmentLengthMismatchError{Sentence: i, Want: want, Got: -1}
		}
		if got := utf8.RuneCountInString(weights[i-1]); got != want {
			return nil, &AlignmentLengthMismatchError{Sentence: i, Want: want, Got: got}
		}
	}

	result := make([][][]string, len(sentences))
	for i, s := range sentences {
		tokens := s.Tokens()
		charWeights := make([][]string, 0, len(tokens))

		if i == 0 {
			for _, tok := range tokens {
				w := make([]string, utf8.RuneCountInString(tok))
				for j := range w {
					w[j] = NeutralWeight
				}
				charWeights = append(charWeights, w)
			}
			result[i] = charWeights
			continue
		}

		row := []rune(weights[i-1])
		offset := 0
		for _, tok := range tokens {
			n := utf8.RuneCountInString(tok)
			charWeights = append(charWeights, symbols(row[offset:offset+n]))
			// one separator between tokens
			offset += n + 1
		}
		result[i] = charWeights
	}

	return result, nil
}

// expectedLen is the sum of the token lengths plus one separator between
// each pair of tokens.
func expectedLen(tokens []string) int {
	if len(tokens) == 0 {
		return 0
	}
	n := len(tokens) - 1
	for _, tok := range tokens {
		n += utf8.RuneCountInString(tok)
	}
	return n
}

func symbols(rs []rune) []string {
	s := make([]string, len(rs))
	for i, r := range rs {
		s[i] = string(r)
	}
	return s
}
