package usecase

import (
	"context"
	"log/slog"

	"github.com/fairyhunter13/internship-recommender/internal/adapter/observability"
	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// RecommendService owns the catalog, the lexical index, the synonym table,
// the result cache, and the AI client. It is constructed once at startup and
// passed by reference into request handlers; the catalog and index are
// read-only after construction.
type RecommendService struct {
	postings []domain.Posting
	index    *LexicalIndex
	synonyms SynonymTable
	cache    *ResultCache
	ai       domain.AIClient
}

// NewRecommendService builds the service, indexing the full posting set.
func NewRecommendService(postings []domain.Posting, synonyms SynonymTable, ai domain.AIClient, cacheSize int) *RecommendService {
	return &RecommendService{
		postings: postings,
		index:    NewLexicalIndex(postings),
		synonyms: synonyms,
		cache:    NewResultCache(cacheSize),
		ai:       ai,
	}
}

// Postings exposes the immutable catalog.
func (s *RecommendService) Postings() []domain.Posting { return s.postings }

// Recommend runs the full pipeline for one profile and requested count.
// It is a total function: provider outages degrade stages to their fallback
// paths, and the result is served from the cache when the fingerprint is
// warm without any provider calls.
func (s *RecommendService) Recommend(ctx context.Context, profile domain.UserProfile, topN int) []domain.Recommendation {
	key := Fingerprint(profile, topN)
	if cached, ok := s.cache.Get(key); ok {
		slog.Debug("serving recommendations from cache", slog.String("fingerprint", key[:12]))
		observability.RecommendationCacheHits.Inc()
		return cached
	}
	observability.RecommendationCacheMisses.Inc()

	coarse := RankCoarse(s.index, s.postings, profile, s.synonyms, CoarsePoolSize(topN))
	filtered := FilterCandidates(coarse, profile, topN)
	reranked := RerankByEmbedding(ctx, s.ai, profile, filtered, topN)
	refined := RefineWithExplanations(ctx, s.ai, profile, reranked)

	s.cache.Set(key, refined)
	return refined
}
