package usecase

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

func recs(ids ...string) []domain.Recommendation {
	out := make([]domain.Recommendation, len(ids))
	for i, id := range ids {
		out[i] = domain.Recommendation{ID: id}
	}
	return out
}

func TestResultCacheHitAndMiss(t *testing.T) {
	c := NewResultCache(2)
	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("k1", recs("a"))
	got, ok := c.Get("k1")
	require.True(t, ok)
	assert.Equal(t, recs("a"), got)
}

func TestResultCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := NewResultCache(2)
	c.Set("k1", recs("a"))
	c.Set("k2", recs("b"))
	c.Set("k3", recs("c"))

	_, ok := c.Get("k1")
	assert.False(t, ok, "oldest entry must be evicted")
	_, ok = c.Get("k2")
	assert.True(t, ok)
	_, ok = c.Get("k3")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestResultCacheGetPromotes(t *testing.T) {
	c := NewResultCache(2)
	c.Set("k1", recs("a"))
	c.Set("k2", recs("b"))

	// Touching k1 makes k2 the eviction victim.
	_, ok := c.Get("k1")
	require.True(t, ok)
	c.Set("k3", recs("c"))

	_, ok = c.Get("k1")
	assert.True(t, ok)
	_, ok = c.Get("k2")
	assert.False(t, ok)
}

func TestResultCacheOverwrite(t *testing.T) {
	c := NewResultCache(2)
	c.Set("k1", recs("a"))
	c.Set("k1", recs("b"))

	got, ok := c.Get("k1")
	require.True(t, ok)
	assert.Equal(t, recs("b"), got)
	assert.Equal(t, 1, c.Len())
}

func TestResultCacheMinimumCapacity(t *testing.T) {
	c := NewResultCache(0)
	c.Set("k1", recs("a"))
	c.Set("k2", recs("b"))
	assert.Equal(t, 1, c.Len())
}

func TestFingerprintDeterministic(t *testing.T) {
	p := domain.UserProfile{
		Education:       "B.Tech",
		Skills:          []string{"Python", "SQL"},
		SectorInterests: []string{"Finance"},
		Location:        "Mumbai",
		Preferences:     domain.Preferences{Remote: true},
		CareerGoals:     "fintech",
	}
	assert.Equal(t, Fingerprint(p, 5), Fingerprint(p, 5))
	assert.Len(t, Fingerprint(p, 5), 64)
}

func TestFingerprintIgnoresName(t *testing.T) {
	a := domain.UserProfile{Name: "Asha", Skills: []string{"Python"}}
	b := domain.UserProfile{Name: "Ravi", Skills: []string{"Python"}}
	assert.Equal(t, Fingerprint(a, 5), Fingerprint(b, 5))
}

func TestFingerprintSensitiveToInputs(t *testing.T) {
	base := domain.UserProfile{Skills: []string{"Python"}}
	perturbed := []domain.UserProfile{
		{Skills: []string{"SQL"}},
		{Skills: []string{"Python"}, Location: "Delhi"},
		{Skills: []string{"Python"}, Preferences: domain.Preferences{Remote: true}},
		{Skills: []string{"Python"}, CareerGoals: "fintech"},
	}
	for i, p := range perturbed {
		assert.NotEqual(t, Fingerprint(base, 5), Fingerprint(p, 5), fmt.Sprintf("case %d", i))
	}
	assert.NotEqual(t, Fingerprint(base, 5), Fingerprint(base, 6), "top_n must affect the key")
}
