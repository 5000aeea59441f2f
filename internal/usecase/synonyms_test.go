package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSynonymsDefault(t *testing.T) {
	tbl, err := LoadSynonyms("")
	require.NoError(t, err)
	assert.Contains(t, tbl, "react")
	assert.Contains(t, tbl, "machine learning")
	assert.Equal(t, []string{"kubernetes", "k8s"}, tbl["kubernetes"])
}

func TestLoadSynonymsOverrideReplacesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synonyms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("golang: [golang, go]\n"), 0o600))

	tbl, err := LoadSynonyms(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"golang", "go"}, tbl["golang"])
	// The built-in entries must not leak through an override.
	assert.NotContains(t, tbl, "react")
}

func TestLoadSynonymsMissingFile(t *testing.T) {
	_, err := LoadSynonyms(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestExpandOrderAndDedup(t *testing.T) {
	tbl := SynonymTable{
		"react": {"react", "reactjs", "frontend"},
		"css":   {"css", "frontend"},
	}
	got := tbl.Expand([]string{"React", "CSS", "Figma"})
	// Order-preserving, deduplicating, unmapped terms pass through.
	assert.Equal(t, []string{"react", "reactjs", "frontend", "css", "figma"}, got)
}

func TestExpandEmpty(t *testing.T) {
	tbl := SynonymTable{}
	assert.Empty(t, tbl.Expand(nil))
}
