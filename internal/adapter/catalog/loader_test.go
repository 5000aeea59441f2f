package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadPostingsComputesDerivedFields(t *testing.T) {
	path := writeFile(t, "catalog.json", `[
		{"id":"1","title":"Data Intern","company":"FinEdge","location":"Remote","sector":"Finance","skills":["SQL","Python"],"apply_url":"https://example.com/1"}
	]`)

	postings, err := LoadPostings(path)
	require.NoError(t, err)
	require.Len(t, postings, 1)

	p := postings[0]
	assert.Equal(t, "data intern", p.TitleLC)
	assert.Equal(t, "sql python", p.SkillsText)
	assert.Equal(t, "data intern sql python finance remote", p.TextBlob)
	assert.True(t, p.IsRemote())
}

func TestLoadPostingsMissingFile(t *testing.T) {
	_, err := LoadPostings(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadPostingsCorruptJSON(t *testing.T) {
	path := writeFile(t, "catalog.json", `{"not":"an array"}`)
	_, err := LoadPostings(path)
	assert.Error(t, err)
}

func TestLoadPostingsEmptyCatalog(t *testing.T) {
	path := writeFile(t, "catalog.json", `[]`)
	_, err := LoadPostings(path)
	assert.Error(t, err)
}

func TestProfileFileLoad(t *testing.T) {
	path := writeFile(t, "user.json", `{
		"name":"Asha","education":"B.Tech","skills":["Python"],
		"sector_interests":["Finance"],"location":"Mumbai",
		"preferences":{"remote":true},"career_goals":"fintech"
	}`)

	src := NewProfileFile(path)
	profile, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, "Asha", profile.Name)
	assert.True(t, profile.Preferences.Remote)
}

func TestProfileFileReloadsOnEveryLoad(t *testing.T) {
	path := writeFile(t, "user.json", `{"name":"Asha"}`)
	src := NewProfileFile(path)

	first, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, "Asha", first.Name)

	require.NoError(t, os.WriteFile(path, []byte(`{"name":"Ravi"}`), 0o600))
	second, err := src.Load()
	require.NoError(t, err)
	assert.Equal(t, "Ravi", second.Name, "edits must show up without a restart")
}

func TestProfileFileMissing(t *testing.T) {
	src := NewProfileFile(filepath.Join(t.TempDir(), "nope.json"))
	_, err := src.Load()
	assert.Error(t, err)
}
