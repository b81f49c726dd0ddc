package stat

import (
	"bufio"
	"io"
	"sort"
	"strings"
)

// Entity types counted by EntityStats.
var EntityTypes = []string{"GPE", "LOC", "ORG", "PER"}

const (
	colToken = 0
	colTag   = 1
)

// TypeStats counts the entities of one type.
type TypeStats struct {
	Type        string
	NumEntities int

	// entity name to number of mentions
	Entities map[string]int
}

type Count struct {
	Name  string
	Count int
}

func (ts *TypeStats) add(name string) {
	ts.NumEntities++
	ts.Entities[name]++
}

// MostCommon returns the entities sorted by count, then name.
func (ts *TypeStats) MostCommon() []Count {
	counts := make([]Count, 0, len(ts.Entities))
	for name, n := range ts.Entities {
		counts = append(counts, Count{Name: name, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	return counts
}

// EntityStats aggregates the BIO tagged entities of token/tag streams.
type EntityStats struct {
	NumDocs int
	Types   map[string]*TypeStats
}

func NewEntityStats() *EntityStats {
	types := make(map[string]*TypeStats, len(EntityTypes))
	for _, t := range EntityTypes {
		types[t] = &TypeStats{Type: t, Entities: map[string]int{}}
	}
	return &EntityStats{Types: types}
}

// Ordered returns the stats of each type in EntityTypes order.
func (es *EntityStats) Ordered() []*TypeStats {
	ts := make([]*TypeStats, 0, len(EntityTypes))
	for _, t := range EntityTypes {
		ts = append(ts, es.Types[t])
	}
	return ts
}

func (es *EntityStats) NumEntities() int {
	n := 0
	for _, ts := range es.Types {
		n += ts.NumEntities
	}
	return n
}

func (es *EntityStats) NumUniqueEntities() int {
	n := 0
	for _, ts := range es.Types {
		n += len(ts.Entities)
	}
	return n
}

// Add counts the entity made of rows. The type is taken from the tag of
// the first row.
func (es *EntityStats) Add(rows [][]string) {
	if len(rows) == 0 {
		return
	}
	if ts, ok := es.Types[entityType(rows)]; ok {
		ts.add(entityName(rows))
	}
}

// Aggregate reads one token<TAB>tag stream. Rows with less than two fields
// or without token separate sentences.
func (es *EntityStats) Aggregate(r io.Reader) error {
	es.NumDocs++

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	inTag := false
	var tagRows [][]string

	for scanner.Scan() {
		row := strings.Split(strings.TrimSuffix(scanner.Text(), "\r"), "\t")
		separator := len(row) < 2 || row[colToken] == ""

		if inTag {
			// tag ends at a sentence end, an O or a new B-
			if separator || !strings.HasPrefix(row[colTag], "I") {
				es.Add(tagRows)
				inTag = false
				tagRows = nil
			}
		}

		if separator {
			continue
		}

		switch {
		case strings.HasPrefix(row[colTag], "B"):
			inTag = true
			tagRows = [][]string{row}
		case strings.HasPrefix(row[colTag], "I") && inTag:
			tagRows = append(tagRows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// tag at end of stream
	if inTag {
		es.Add(tagRows)
	}
	return nil
}

func entityType(rows [][]string) string {
	tag := rows[0][colTag]
	if len(tag) <= 2 {
		return ""
	}
	return strings.ToUpper(tag[2:])
}

func entityName(rows [][]string) string {
	tokens := make([]string, len(rows))
	for i, row := range rows {
		tokens[i] = row[colToken]
	}
	return strings.ToLower(strings.Join(tokens, " "))
}
