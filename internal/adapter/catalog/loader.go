// Package catalog loads the flat-file posting catalog and the stored
// default user profile. Both are owned collaborators of the pipeline:
// failure to load at startup is fatal.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fairyhunter13/internship-recommender/internal/domain"
)

// LoadPostings reads the posting catalog from a JSON array file and computes
// every derived field. Postings are immutable after this point.
func LoadPostings(path string) ([]domain.Posting, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("op=catalog.LoadPostings: %w", err)
	}
	var postings []domain.Posting
	if err := json.Unmarshal(b, &postings); err != nil {
		return nil, fmt.Errorf("op=catalog.LoadPostings: decode %s: %w", path, err)
	}
	if len(postings) == 0 {
		return nil, fmt.Errorf("op=catalog.LoadPostings: %s holds no postings", path)
	}
	for i := range postings {
		postings[i].ComputeDerived()
	}
	return postings, nil
}

// ProfileFile serves the stored default profile, re-reading the file on
// every Load so edits show up without a restart.
type ProfileFile struct {
	Path string
}

// NewProfileFile returns a ProfileFile source for path.
func NewProfileFile(path string) *ProfileFile { return &ProfileFile{Path: path} }

// Load implements domain.ProfileSource.
func (f *ProfileFile) Load() (domain.UserProfile, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("op=catalog.ProfileFile.Load: %w", err)
	}
	var profile domain.UserProfile
	if err := json.Unmarshal(b, &profile); err != nil {
		return domain.UserProfile{}, fmt.Errorf("op=catalog.ProfileFile.Load: decode %s: %w", f.Path, err)
	}
	return profile, nil
}
