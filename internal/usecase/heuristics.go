package usecase

import (
	"sort"
	"strings"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// Additive heuristic adjustments layered on the base cosine similarity.
// Each rule fires at most once per posting; scores are never clamped.
const (
	sectorExactBonus   = 0.20
	sectorPartialBonus = 0.10
	locationExactBonus = 0.10
	locationPartBonus  = 0.05
	skillHitBonus      = 0.12
	skillHitCap        = 0.48
	remoteBonus        = 0.12
	remotePenalty      = 0.08
	healthBonus        = 0.08
)

// HeuristicScore returns the adjusted score for one posting given its base
// lexical similarity and the user profile.
func HeuristicScore(base float64, p *domain.Posting, profile domain.UserProfile) float64 {
	score := base

	sectors := lowerTrimmed(profile.SectorInterests)
	if len(sectors) > 0 {
		switch {
		case containsExact(sectors, p.SectorLC):
			score += sectorExactBonus
		case anySubstring(p.SectorLC, sectors):
			score += sectorPartialBonus
		}
	}

	loc := strings.ToLower(strings.TrimSpace(profile.Location))
	if loc != "" {
		switch {
		case loc == p.LocationLC:
			score += locationExactBonus
		case strings.Contains(p.LocationLC, loc) || strings.Contains(loc, p.LocationLC):
			score += locationPartBonus
		}
	}

	hits := countSkillHits(profile.Skills, p)
	bonus := skillHitBonus * float64(hits)
	if bonus > skillHitCap {
		bonus = skillHitCap
	}
	score += bonus

	if profile.Preferences.Remote {
		if p.IsRemote() {
			score += remoteBonus
		} else {
			score -= remotePenalty
		}
	}

	if mentionsHealthGoals(profile.CareerGoals) {
		text := p.TitleLC + " " + p.SectorLC
		if containsAny(text, healthPostingKeywords) {
			score += healthBonus
		}
	}

	return score
}

// RankCoarse scores every posting lexically plus heuristically and returns
// the top poolSize candidates. Equal scores retain catalog order.
func RankCoarse(index *LexicalIndex, postings []domain.Posting, profile domain.UserProfile, synonyms SynonymTable, poolSize int) []domain.ScoredCandidate {
	sims := index.Query(BuildQuery(profile, synonyms))
	scored := make([]domain.ScoredCandidate, len(postings))
	for i := range postings {
		scored[i] = domain.ScoredCandidate{
			Posting: &postings[i],
			Score:   HeuristicScore(sims[i], &postings[i], profile),
		}
	}
	sort.SliceStable(scored, func(a, b int) bool { return scored[a].Score > scored[b].Score })
	if poolSize < len(scored) {
		scored = scored[:poolSize]
	}
	return scored
}

// CoarsePoolSize is roughly 5x the requested result count, minimum 25.
func CoarsePoolSize(topN int) int {
	if n := topN * 5; n > 25 {
		return n
	}
	return 25
}

// countSkillHits counts the user skills found as substrings of the posting's
// skills text or title.
func countSkillHits(skills []string, p *domain.Posting) int {
	haystack := p.SkillsText + " " + p.TitleLC
	hits := 0
	for _, s := range skills {
		if s == "" {
			continue
		}
		if strings.Contains(haystack, strings.ToLower(s)) {
			hits++
		}
	}
	return hits
}

func lowerTrimmed(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = strings.ToLower(strings.TrimSpace(s))
	}
	return out
}

func containsExact(items []string, v string) bool {
	for _, s := range items {
		if s == v {
			return true
		}
	}
	return false
}

func anySubstring(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
