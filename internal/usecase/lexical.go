package usecase

import (
	"math"
	"regexp"
	"strings"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// Document-frequency bound: terms appearing in more than this share of the
// corpus are discarded as uninformative. A term appearing in a single
// document is always kept.
const maxDocFreqRatio = 0.9

const (
	minNGram = 1
	maxNGram = 3
)

// wordRe matches word tokens, keeping tech-ish characters (c++, c#).
var wordRe = regexp.MustCompile(`[a-z0-9+#]+`)

// LexicalIndex is a weighted TF-IDF representation of the posting catalog,
// built once at startup from each posting's weighted text blob. It is
// read-only after construction and safe for concurrent queries.
type LexicalIndex struct {
	idf  map[string]float64
	docs []map[string]float64
}

// NewLexicalIndex builds the index over the full posting set. N-grams of
// length 1-3 are extracted from case-folded, stop-word-filtered tokens;
// term frequency is sub-linear (1+log tf) and vectors are L2-normalized.
func NewLexicalIndex(postings []domain.Posting) *LexicalIndex {
	n := len(postings)
	counts := make([]map[string]int, n)
	df := make(map[string]int)
	for i, p := range postings {
		counts[i] = termCounts(p.WeightedBlob)
		for term := range counts[i] {
			df[term]++
		}
	}

	// Smoothed inverse document frequency; high-frequency terms are dropped.
	idf := make(map[string]float64, len(df))
	for term, d := range df {
		if n > 1 && float64(d) > maxDocFreqRatio*float64(n) {
			continue
		}
		idf[term] = math.Log(float64(1+n)/float64(1+d)) + 1
	}

	ix := &LexicalIndex{idf: idf, docs: make([]map[string]float64, n)}
	for i := range counts {
		ix.docs[i] = ix.vectorize(counts[i])
	}
	return ix
}

// Query returns the cosine similarity of the query text against every
// posting, in posting order.
func (ix *LexicalIndex) Query(text string) []float64 {
	qv := ix.vectorize(termCounts(text))
	sims := make([]float64, len(ix.docs))
	for i, dv := range ix.docs {
		// Both vectors are unit length, so the dot product is the cosine.
		var dot float64
		for term, w := range qv {
			if dw, ok := dv[term]; ok {
				dot += w * dw
			}
		}
		sims[i] = dot
	}
	return sims
}

// vectorize turns raw term counts into a normalized TF-IDF vector,
// discarding terms outside the vocabulary.
func (ix *LexicalIndex) vectorize(counts map[string]int) map[string]float64 {
	vec := make(map[string]float64, len(counts))
	var norm float64
	for term, tf := range counts {
		idf, ok := ix.idf[term]
		if !ok {
			continue
		}
		w := (1 + math.Log(float64(tf))) * idf
		vec[term] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for term := range vec {
			vec[term] /= norm
		}
	}
	return vec
}

// termCounts tokenizes text and counts its 1- to 3-gram occurrences.
func termCounts(text string) map[string]int {
	words := wordRe.FindAllString(strings.ToLower(text), -1)
	tokens := words[:0:0]
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		if _, stop := englishStopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	counts := make(map[string]int)
	for size := minNGram; size <= maxNGram; size++ {
		for i := 0; i+size <= len(tokens); i++ {
			counts[strings.Join(tokens[i:i+size], " ")]++
		}
	}
	return counts
}
