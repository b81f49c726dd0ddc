package stat

import (
	"strings"
	"testing"

	sent "github.com/revelaction/dragonfly/sentence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bio = `Barack	B-PER
Obama	I-PER
visited	O
New	B-GPE
York	I-GPE

barack	B-PER
OBAMA	I-PER
and	O
the	O
UN	B-ORG
met	B-PER
Bob	I-PER
	O
stray	I-PER
Paris	B-LOC`

func TestEntityStatsAggregate(t *testing.T) {
	es := NewEntityStats()
	require.NoError(t, es.Aggregate(strings.NewReader(bio)))

	assert.Equal(t, 1, es.NumDocs)
	assert.Equal(t, 6, es.NumEntities())
	assert.Equal(t, 5, es.NumUniqueEntities())

	per := es.Types["PER"]
	assert.Equal(t, 3, per.NumEntities)
	assert.Equal(t, map[string]int{"barack obama": 2, "met bob": 1}, per.Entities)
	assert.Equal(t, []Count{{Name: "barack obama", Count: 2}, {Name: "met bob", Count: 1}}, per.MostCommon())

	assert.Equal(t, map[string]int{"new york": 1}, es.Types["GPE"].Entities)
	assert.Equal(t, map[string]int{"un": 1}, es.Types["ORG"].Entities)
	// entity at end of stream
	assert.Equal(t, map[string]int{"paris": 1}, es.Types["LOC"].Entities)
}

func TestEntityStatsUnknownType(t *testing.T) {
	es := NewEntityStats()
	require.NoError(t, es.Aggregate(strings.NewReader("x\tB-MISC\ny\tB\nz\tB-per\n")))

	assert.Equal(t, 1, es.NumEntities())
	assert.Equal(t, 1, es.Types["PER"].NumEntities)
}

func TestEntityStatsOrdered(t *testing.T) {
	var types []string
	for _, ts := range NewEntityStats().Ordered() {
		types = append(types, ts.Type)
	}
	assert.Equal(t, EntityTypes, types)
}

func TestHandlerAggregate(t *testing.T) {
	mk := func(tokens ...string) *sent.Sentence {
		s := sent.New(0)
		c := sent.NewColumn(0, "TOKEN")
		c.Strings = tokens
		s.Add(c)
		return s
	}

	d1 := sent.NewDoc("a", []*sent.Sentence{mk("a", "b"), mk("c", "d", "e", "f")})
	d1.HasAnnotations = true
	d2 := sent.NewDoc("b", []*sent.Sentence{mk("a", "b")})
	d2.HasTranslation = true

	h := NewHandler()
	h.Aggregate(d1)
	h.Aggregate(d2)

	stats := h.Get()
	assert.Equal(t, 2, stats.NumDocs)
	assert.Equal(t, 3, stats.NumSentences)
	assert.Equal(t, 8, stats.NumTokens)
	assert.Equal(t, 2, stats.TokensPerSentenceMean)
	assert.Equal(t, map[int]int{2: 2, 4: 1}, stats.TokensPerSentenceDis)
	assert.Equal(t, 1, stats.NumAnnotated)
	assert.Equal(t, 1, stats.NumTranslated)
	assert.Equal(t, 0, stats.NumCharVis)
}

func TestHandlerEmptyDoc(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sent.NewDoc("empty", nil))
	assert.Equal(t, 0, h.Get().TokensPerSentenceMean)
}
