package stat

import (
	sent "github.com/revelaction/dragonfly/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumDocs               int
	NumSentences          int
	NumTokens             int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	NumAnnotated  int
	NumTranslated int
	NumCharVis    int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{TokensPerSentenceDis: map[int]int{}}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds doc to the stats. It can be called for several docs.
func (h *Handler) Aggregate(doc *sent.Doc) {
	h.stats.NumDocs++
	h.stats.NumSentences += doc.NumSentences
	h.stats.NumTokens += doc.NumTokens

	for _, s := range doc.Sentences {
		h.stats.TokensPerSentenceDis[s.Len()]++
	}

	if doc.HasAnnotations {
		h.stats.NumAnnotated++
	}
	if doc.HasTranslation {
		h.stats.NumTranslated++
	}
	if doc.HasCharVis {
		h.stats.NumCharVis++
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
