package usecase

import (
	"container/list"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// ResultCache is a fixed-capacity LRU cache of explained recommendation
// lists keyed by profile fingerprint. It is safe for concurrent use; the
// cache is the only state shared across requests.
type ResultCache struct {
	mu       sync.Mutex
	capacity int
	ll       *list.List
	entries  map[string]*list.Element
}

type cacheEntry struct {
	key   string
	value []domain.Recommendation
}

// NewResultCache builds a cache holding at most capacity entries.
// Capacity below one is raised to one.
func NewResultCache(capacity int) *ResultCache {
	if capacity < 1 {
		capacity = 1
	}
	return &ResultCache{
		capacity: capacity,
		ll:       list.New(),
		entries:  make(map[string]*list.Element, capacity),
	}
}

// Get returns the cached list for key and promotes the entry to
// most-recently-used. The second return reports presence.
func (c *ResultCache) Get(key string) ([]domain.Recommendation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	c.ll.MoveToFront(el)
	return el.Value.(*cacheEntry).value, true
}

// Set inserts or overwrites the entry for key as most-recently-used,
// evicting the least-recently-used entry past capacity.
func (c *ResultCache) Set(key string, value []domain.Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).value = value
		c.ll.MoveToFront(el)
		return
	}
	c.entries[key] = c.ll.PushFront(&cacheEntry{key: key, value: value})
	if c.ll.Len() > c.capacity {
		oldest := c.ll.Back()
		c.ll.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}
}

// Len reports the current number of entries.
func (c *ResultCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ll.Len()
}

// Fingerprint digests the ranking-relevant profile fields plus the requested
// count. Field order and irrelevant fields (display name) never affect it:
// the payload is serialized with deterministic key ordering before hashing.
func Fingerprint(profile domain.UserProfile, topN int) string {
	payload := map[string]any{
		"education":        profile.Education,
		"skills":           profile.Skills,
		"sector_interests": profile.SectorInterests,
		"location":         profile.Location,
		"preferences":      map[string]any{"remote": profile.Preferences.Remote},
		"career_goals":     profile.CareerGoals,
		"top_n":            topN,
	}
	// json.Marshal emits map keys in sorted order, so the digest is stable.
	b, _ := json.Marshal(payload)
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:])
}
