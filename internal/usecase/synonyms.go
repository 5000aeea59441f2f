package usecase

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed synonyms.yaml
var defaultSynonymsYAML []byte

// SynonymTable maps a canonical skill term to equivalent or adjacent terms.
// It is read-only after construction and safe for concurrent use.
type SynonymTable map[string][]string

// LoadSynonyms returns the synonym table. When path is empty the built-in
// table is used; otherwise the file at path replaces it wholesale.
func LoadSynonyms(path string) (SynonymTable, error) {
	raw := defaultSynonymsYAML
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("op=usecase.LoadSynonyms: %w", err)
		}
		raw = b
	}
	var t SynonymTable
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("op=usecase.LoadSynonyms: %w", err)
	}
	return t, nil
}

// Expand maps each skill through the table. Unmapped terms pass through
// unchanged. Expansion is order-preserving and deduplicating.
func (t SynonymTable) Expand(skills []string) []string {
	expanded := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		key := strings.ToLower(strings.TrimSpace(s))
		terms, ok := t[key]
		if !ok {
			terms = []string{key}
		}
		for _, term := range terms {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			expanded = append(expanded, term)
		}
	}
	return expanded
}
