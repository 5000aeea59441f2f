package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONListDirect(t *testing.T) {
	items, ok := ExtractJSONList(`[{"id":"1"},{"id":"2"}]`)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestExtractJSONListFenced(t *testing.T) {
	text := "```json\n[{\"id\":\"1\"}]\n```"
	items, ok := ExtractJSONList(text)
	require.True(t, ok)
	assert.Len(t, items, 1)
}

func TestExtractJSONListArraySubstring(t *testing.T) {
	text := `Here are your recommendations: [{"id":"1"},{"id":"2"}] hope that helps!`
	items, ok := ExtractJSONList(text)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestExtractJSONListObjectWrapper(t *testing.T) {
	for _, key := range []string{"items", "data", "result", "recommendations"} {
		text := `{"` + key + `":[{"id":"1"}]}`
		items, ok := ExtractJSONList(text)
		require.True(t, ok, "wrapper key %q", key)
		assert.Len(t, items, 1)
	}
}

func TestExtractJSONListWrappedInProse(t *testing.T) {
	text := `Sure! {"recommendations": [{"id":"1"},{"id":"2"},{"id":"3"}]} Done.`
	items, ok := ExtractJSONList(text)
	require.True(t, ok)
	assert.Len(t, items, 3)
}

func TestExtractJSONListFailure(t *testing.T) {
	for _, text := range []string{
		"",
		"no json here",
		`{"unknown_key": {"a": 1}}`,
		"[broken",
	} {
		_, ok := ExtractJSONList(text)
		assert.False(t, ok, "input %q", text)
	}
}
