// Package dict manages per language translation dictionaries of named
// entities.
//
// A dictionary maps a lower-cased source string to its translation and its
// entity type.
package dict

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// EntityTypes are the valid entry types.
var EntityTypes = []string{"PER", "ORG", "GPE", "LOC", "NONE"}

// Entry is serialized as a [translation, type] JSON array.
type Entry struct {
	Translation string
	Type        string
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Translation, e.Type})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("dictionary entry has %d fields, want 2", len(pair))
	}
	e.Translation, e.Type = pair[0], pair[1]
	return nil
}

// Dict maps a source string to its entry.
type Dict map[string]Entry

// Sources returns the sources of d, sorted.
func (d Dict) Sources() []string {
	sources := make([]string, 0, len(d))
	for s := range d {
		sources = append(sources, s)
	}
	slices.Sort(sources)
	return sources
}

func IsEntityType(t string) bool {
	return slices.Contains(EntityTypes, t)
}

// GuessType maps t to an entity type: single letter abbreviations first,
// then the type at the smallest Hamming distance.
func GuessType(t string) string {
	switch t {
	case "P":
		return "PER"
	case "O":
		return "ORG"
	case "G":
		return "GPE"
	case "L":
		return "LOC"
	case "N":
		return "NONE"
	}

	best, bestDist := EntityTypes[0], -1
	for _, et := range EntityTypes {
		if d := hamming(et, t); bestDist < 0 || d < bestDist {
			best, bestDist = et, d
		}
	}
	return best
}

// hamming counts the differing positions of a and b, the shorter one padded
// with spaces.
func hamming(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := max(len(ra), len(rb))
	d := 0
	for i := 0; i < n; i++ {
		ca, cb := ' ', ' '
		if i < len(ra) {
			ca = ra[i]
		}
		if i < len(rb) {
			cb = rb[i]
		}
		if ca != cb {
			d++
		}
	}
	return d
}

// NormalizeType upper-cases t and guesses it if it is not an entity type.
func NormalizeType(t string) string {
	t = strings.ToUpper(t)
	if IsEntityType(t) {
		return t
	}
	return GuessType(t)
}
