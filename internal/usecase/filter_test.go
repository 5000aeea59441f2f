package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

func candidates(t *testing.T, seeds ...domain.Posting) []domain.ScoredCandidate {
	t.Helper()
	postings := makePostings(t, seeds...)
	out := make([]domain.ScoredCandidate, len(postings))
	for i := range postings {
		out[i] = domain.ScoredCandidate{Posting: &postings[i], Score: 1.0 - float64(i)*0.01}
	}
	return out
}

func ids(cands []domain.ScoredCandidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Posting.ID
	}
	return out
}

func TestFilterKeepsSectorOrSkillMatches(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "sector", Sector: "Finance"},
		domain.Posting{ID: "skill", Sector: "Marketing", Skills: []string{"Python"}},
		domain.Posting{ID: "neither", Sector: "Marketing", Skills: []string{"SEO"}},
	)
	profile := domain.UserProfile{
		Skills:          []string{"Python"},
		SectorInterests: []string{"Finance"},
	}

	got := FilterCandidates(coarse, profile, 5)
	assert.Equal(t, []string{"sector", "skill"}, ids(got))
}

func TestFilterEmptyInterestsKeepEverything(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "a", Sector: "Marketing"},
		domain.Posting{ID: "b", Sector: "Finance"},
	)
	got := FilterCandidates(coarse, domain.UserProfile{}, 5)
	assert.Len(t, got, 2)
}

func TestFilterInfraAvoidance(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "devops", Title: "DevOps Intern", Sector: "Technology", Skills: []string{"Kubernetes"}},
		domain.Posting{ID: "cloud", Title: "Backend Intern", Sector: "Technology", Skills: []string{"Cloud", "Go"}},
		domain.Posting{ID: "safe", Title: "Data Intern", Sector: "Technology", Skills: []string{"Python"}},
	)
	profile := domain.UserProfile{
		SectorInterests: []string{"Technology"},
		CareerGoals:     "I am not seeking roles related to DevOps or infrastructure.",
	}

	got := FilterCandidates(coarse, profile, 5)
	assert.Equal(t, []string{"safe"}, ids(got))
}

func TestFilterInfraKeywordsAloneDoNotExclude(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "devops", Title: "DevOps Intern", Sector: "Technology"},
	)
	// Mentioning devops without the exact opt-out phrase changes nothing.
	profile := domain.UserProfile{
		SectorInterests: []string{"Technology"},
		CareerGoals:     "open to devops work",
	}

	got := FilterCandidates(coarse, profile, 5)
	assert.Equal(t, []string{"devops"}, ids(got))
}

func TestFilterRemotePreferenceNeedsTwoSkillHits(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "remote", Location: "Remote", Sector: "Technology", Skills: []string{"Python"}},
		domain.Posting{ID: "onsite-strong", Location: "Delhi", Sector: "Technology", Skills: []string{"Python", "SQL"}},
		domain.Posting{ID: "onsite-weak", Location: "Delhi", Sector: "Technology", Skills: []string{"Python"}},
	)
	profile := domain.UserProfile{
		Skills:          []string{"Python", "SQL"},
		SectorInterests: []string{"Technology"},
		Preferences:     domain.Preferences{Remote: true},
	}

	got := FilterCandidates(coarse, profile, 5)
	assert.Equal(t, []string{"remote", "onsite-strong"}, ids(got))
}

func TestFilterFinanceFocusKeepsFinancePostings(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "fin", Title: "Risk Analytics Intern", Sector: "Fintech", Skills: []string{"Python"}},
		domain.Posting{ID: "tech", Title: "Backend Intern", Sector: "Technology", Skills: []string{"Python"}},
	)
	profile := domain.UserProfile{
		Skills:          []string{"Python"},
		SectorInterests: []string{"Technology", "Fintech"},
		CareerGoals:     "grow in risk and fraud analytics",
	}

	got := FilterCandidates(coarse, profile, 5)
	// Both survive; the finance branch must not drop non-finance matches.
	assert.Equal(t, []string{"fin", "tech"}, ids(got))
}

func TestFilterFallbackWhenEverythingEliminated(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "a", Sector: "Marketing", Skills: []string{"SEO"}},
		domain.Posting{ID: "b", Sector: "Design", Skills: []string{"Figma"}},
		domain.Posting{ID: "c", Sector: "Sales"},
	)
	profile := domain.UserProfile{
		Skills:          []string{"Python"},
		SectorInterests: []string{"Finance"},
	}

	got := FilterCandidates(coarse, profile, 2)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestFilterFallbackClampsToPoolSize(t *testing.T) {
	coarse := candidates(t,
		domain.Posting{ID: "a", Sector: "Marketing"},
	)
	profile := domain.UserProfile{
		Skills:          []string{"Python"},
		SectorInterests: []string{"Finance"},
	}

	got := FilterCandidates(coarse, profile, 5)
	assert.Equal(t, []string{"a"}, ids(got))
}
