// Package domain holds the core entities and ports of the internship
// recommender. It has no dependencies on adapters or frameworks.
package domain

import (
	"context"
	"errors"
	"strings"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrNotFound            = errors.New("not found")
	ErrProviderUnavailable = errors.New("provider unavailable")
	ErrInternal            = errors.New("internal error")
)

// Posting is a single catalog entry. The *LC, SkillsText, TextBlob and
// WeightedBlob fields are derived at catalog load time and never mutated
// afterwards; postings are immutable for the lifetime of the process.
type Posting struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Company  string   `json:"company"`
	Location string   `json:"location"`
	Sector   string   `json:"sector"`
	Skills   []string `json:"skills"`
	ApplyURL string   `json:"apply_url"`

	TitleLC      string `json:"title_lc,omitempty"`
	SectorLC     string `json:"sector_lc,omitempty"`
	LocationLC   string `json:"location_lc,omitempty"`
	SkillsText   string `json:"skills_text,omitempty"`
	TextBlob     string `json:"text_blob,omitempty"`
	WeightedBlob string `json:"weighted_blob,omitempty"`
}

// ComputeDerived fills the lowercased helper fields and the text blobs.
// Title tokens carry weight 3 in the weighted blob, skills weight 2,
// sector and location weight 1.
func (p *Posting) ComputeDerived() {
	lcSkills := make([]string, len(p.Skills))
	for i, s := range p.Skills {
		lcSkills[i] = strings.ToLower(s)
	}
	p.SkillsText = strings.Join(lcSkills, " ")
	p.TitleLC = strings.ToLower(p.Title)
	p.SectorLC = strings.ToLower(p.Sector)
	p.LocationLC = strings.ToLower(p.Location)
	p.TextBlob = strings.TrimSpace(p.TitleLC + " " + p.SkillsText + " " + p.SectorLC + " " + p.LocationLC)
	p.WeightedBlob = strings.TrimSpace(
		strings.Repeat(p.TitleLC+" ", 3) +
			strings.Repeat(p.SkillsText+" ", 2) +
			p.SectorLC + " " + p.LocationLC)
}

// IsRemote reports whether the posting location reads as remote-friendly.
func (p *Posting) IsRemote() bool {
	return IsRemoteLocation(p.LocationLC)
}

// IsRemoteLocation matches the lenient remote/WFH/hybrid keyword set.
func IsRemoteLocation(locLC string) bool {
	return strings.Contains(locLC, "remote") ||
		strings.Contains(locLC, "work from home") ||
		strings.Contains(locLC, "wfh") ||
		strings.Contains(locLC, "hybrid")
}

// Preferences carries the soft user preferences that influence ranking.
type Preferences struct {
	Remote bool `json:"remote"`
}

// UserProfile is a value type; it has no identity beyond its field values.
type UserProfile struct {
	Name            string      `json:"name"`
	Education       string      `json:"education"`
	Skills          []string    `json:"skills"`
	SectorInterests []string    `json:"sector_interests"`
	Location        string      `json:"location"`
	Preferences     Preferences `json:"preferences"`
	CareerGoals     string      `json:"career_goals"`
}

// ScoredCandidate pairs a posting with its heuristic score for one request.
type ScoredCandidate struct {
	Posting *Posting
	Score   float64
}

// Recommendation is the final annotated response item.
type Recommendation struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location"`
	Sector      string   `json:"sector"`
	Skills      []string `json:"skills"`
	ApplyURL    string   `json:"apply_url"`
	Explanation string   `json:"explanation"`
}

// AIClient (port)

// AIClient abstracts the external embedding and generative-model providers.
type AIClient interface {
	// Embed returns one embedding vector per input text, in input order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	// ChatJSON issues a single chat completion and returns the raw message
	// content. Implementations try configured providers in order and return
	// ErrProviderUnavailable when none is configured.
	ChatJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// ProfileSource (port)

// ProfileSource loads the stored default user profile.
type ProfileSource interface {
	Load() (UserProfile, error)
}
