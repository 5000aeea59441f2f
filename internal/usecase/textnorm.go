// Package usecase contains the recommendation pipeline: lexical retrieval,
// heuristic rescoring, candidate filtering, semantic reranking, explanation
// generation, and the fingerprint-keyed result cache.
package usecase

import (
	"regexp"
	"strings"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// neutralQuery replaces an empty query so similarity stays computable.
const neutralQuery = "internship general"

// tokenCleanRe keeps tech-ish tokens (c++, c#, node.js) while stripping the rest.
var tokenCleanRe = regexp.MustCompile(`[^a-z0-9+.# ]+`)

var (
	remoteQueryTokens = []string{"remote", "work from home", "wfh", "hybrid"}
	// healthGoalKeywords trigger the healthcare expansion when found in career goals.
	healthGoalKeywords = []string{"health", "healthcare", "biotech", "medical", "medtech"}
	// healthPostingKeywords is the wider set matched against posting title/sector.
	healthPostingKeywords = []string{"health", "healthcare", "bio", "biotech", "medical", "medtech", "clinic", "hospital"}
)

// normalizeTokens lowercases and cleans each item and joins them with spaces.
func normalizeTokens(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, x := range items {
		x = strings.ToLower(strings.TrimSpace(x))
		x = tokenCleanRe.ReplaceAllString(x, " ")
		cleaned = append(cleaned, x)
	}
	return strings.Join(cleaned, " ")
}

func containsAny(haystack string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(haystack, k) {
			return true
		}
	}
	return false
}

func mentionsHealthGoals(careerGoals string) bool {
	cg := strings.ToLower(careerGoals)
	return cg != "" && containsAny(cg, healthGoalKeywords)
}

// BuildQuery assembles the lexical query text for a profile: education words,
// synonym-expanded skills, sector interests, then preference and career-goal
// tokens. An empty result falls back to the neutral placeholder.
func BuildQuery(profile domain.UserProfile, synonyms SynonymTable) string {
	expanded := synonyms.Expand(profile.Skills)

	var extra []string
	if profile.Preferences.Remote {
		extra = append(extra, remoteQueryTokens...)
	}
	if mentionsHealthGoals(profile.CareerGoals) {
		extra = append(extra, healthGoalKeywords...)
	}

	parts := []string{
		strings.ToLower(profile.Education),
		normalizeTokens(expanded),
		normalizeTokens(profile.SectorInterests),
		normalizeTokens(extra),
	}
	query := strings.TrimSpace(strings.Join(parts, " "))
	if query == "" {
		return neutralQuery
	}
	return query
}
