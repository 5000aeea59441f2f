package usecase

import (
	"context"
	"log/slog"
	"math"
	"sort"
	"strings"

	"github.com/fairyhunter13/internship-recommender/internal/adapter/observability"
	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// cosineEps guards against zero-length embedding vectors.
const cosineEps = 1e-9

// RerankByEmbedding reorders the filtered candidates by embedding cosine
// similarity against the user's aggregate text and returns the top K.
// Any provider failure degrades to the first K candidates in incoming order;
// there are no retries and no partial results.
func RerankByEmbedding(ctx context.Context, ai domain.AIClient, profile domain.UserProfile, candidates []domain.ScoredCandidate, topK int) []domain.ScoredCandidate {
	if len(candidates) == 0 {
		return nil
	}
	if topK > len(candidates) {
		topK = len(candidates)
	}

	texts := make([]string, 0, len(candidates)+1)
	texts = append(texts, userAggregateText(profile))
	for _, c := range candidates {
		texts = append(texts, c.Posting.TextBlob)
	}

	vecs, err := ai.Embed(ctx, texts)
	if err != nil || len(vecs) != len(texts) {
		slog.Warn("semantic rerank degraded to lexical order", slog.Any("error", err))
		observability.PipelineStageFallbacks.WithLabelValues("rerank").Inc()
		return candidates[:topK]
	}

	userVec := vecs[0]
	type ranked struct {
		cand domain.ScoredCandidate
		sim  float64
	}
	rankedList := make([]ranked, len(candidates))
	for i, c := range candidates {
		rankedList[i] = ranked{cand: c, sim: cosineSimilarity(userVec, vecs[i+1])}
	}
	sort.SliceStable(rankedList, func(a, b int) bool { return rankedList[a].sim > rankedList[b].sim })

	out := make([]domain.ScoredCandidate, topK)
	for i := 0; i < topK; i++ {
		out[i] = rankedList[i].cand
	}
	return out
}

func userAggregateText(profile domain.UserProfile) string {
	parts := append([]string{profile.Education}, profile.Skills...)
	parts = append(parts, profile.SectorInterests...)
	return strings.Join(parts, " ")
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	return dot / (math.Sqrt(nb)*(math.Sqrt(na)+cosineEps) + cosineEps)
}
