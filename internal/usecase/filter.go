package usecase

import (
	"strings"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// avoidInfraPhrase in the career goals switches on the infrastructure
// exclusion rule.
const avoidInfraPhrase = "not seeking roles related to devops"

var (
	infraKeywords = []string{"devops", "kubernetes", "k8s", "docker", "cloud", "infrastructure"}
	// financeGoalKeywords trigger the finance-focus branch from career goals.
	financeGoalKeywords = []string{"finance", "fintech", "risk", "fraud", "trading", "credit", "aml"}
	// financePostingKeywords are matched against posting title/sector.
	financePostingKeywords = []string{"finance", "fintech", "bank", "risk", "fraud", "credit", "aml"}
)

// FilterCandidates applies the hard inclusion/exclusion rules to the coarse
// pool. If every posting is eliminated it falls back to the first topN
// candidates unfiltered, so a non-empty coarse pool never filters to nothing.
//
// The finance-focus branch appends matching postings and short-circuits the
// remaining checks for that candidate (see DESIGN.md on the duplicate-append
// question).
func FilterCandidates(coarse []domain.ScoredCandidate, profile domain.UserProfile, topN int) []domain.ScoredCandidate {
	sectors := lowerTrimmed(profile.SectorInterests)
	goals := strings.ToLower(profile.CareerGoals)
	avoidInfra := strings.Contains(goals, avoidInfraPhrase)
	financeFocus := containsAny(goals, financeGoalKeywords)
	prefersRemote := profile.Preferences.Remote

	filtered := make([]domain.ScoredCandidate, 0, len(coarse))
	for _, c := range coarse {
		p := c.Posting
		sectorOK := len(sectors) == 0 || containsExact(sectors, p.SectorLC) || anySubstring(p.SectorLC, sectors)
		hits := countSkillHits(profile.Skills, p)

		// At least one skill overlap or a sector match.
		if !sectorOK && hits == 0 {
			continue
		}
		if avoidInfra {
			text := p.TitleLC + " " + p.SkillsText + " " + p.SectorLC
			if containsAny(text, infraKeywords) {
				continue
			}
		}
		// Non-remote postings survive a remote preference only on strong
		// skill overlap.
		if prefersRemote && !p.IsRemote() && hits < 2 {
			continue
		}
		if financeFocus {
			text := p.TitleLC + " " + p.SectorLC
			if containsAny(text, financePostingKeywords) {
				filtered = append(filtered, c)
				continue
			}
		}
		filtered = append(filtered, c)
	}

	if len(filtered) == 0 {
		if topN > len(coarse) {
			topN = len(coarse)
		}
		filtered = append(filtered, coarse[:topN]...)
	}
	return filtered
}
