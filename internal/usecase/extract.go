package usecase

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// wrapperKeys are the object keys checked, in order, when the model wraps
// its array in an envelope object.
var wrapperKeys = []string{"items", "data", "result", "recommendations"}

// parseStrategy attempts to pull a JSON array out of raw model output.
type parseStrategy struct {
	name  string
	parse func(text string) ([]json.RawMessage, bool)
}

// parseStrategies are tried in fixed order; the first success wins.
var parseStrategies = []parseStrategy{
	{"direct", parseDirect},
	{"fence_stripped", parseFenceStripped},
	{"array_substring", parseArraySubstring},
	{"object_wrapper", parseObjectWrapper},
}

// ExtractJSONList best-effort parses a JSON array from free-form model
// output. It returns false only when every strategy fails.
func ExtractJSONList(text string) ([]json.RawMessage, bool) {
	for _, s := range parseStrategies {
		if items, ok := s.parse(text); ok {
			slog.Debug("model output parsed", slog.String("strategy", s.name), slog.Int("items", len(items)))
			return items, true
		}
	}
	return nil, false
}

func parseDirect(text string) ([]json.RawMessage, bool) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		return nil, false
	}
	return items, true
}

// parseFenceStripped drops Markdown code-fence lines and retries.
func parseFenceStripped(text string) ([]json.RawMessage, bool) {
	stripped := strings.TrimSpace(text)
	if !strings.HasPrefix(stripped, "```") || !strings.HasSuffix(stripped, "```") {
		return nil, false
	}
	kept := make([]string, 0)
	for _, ln := range strings.Split(stripped, "\n") {
		if strings.HasPrefix(ln, "```") {
			continue
		}
		kept = append(kept, ln)
	}
	return parseDirect(strings.TrimSpace(strings.Join(kept, "\n")))
}

// parseArraySubstring parses the first top-level [...] span.
func parseArraySubstring(text string) ([]json.RawMessage, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}
	return parseDirect(text[start : end+1])
}

// parseObjectWrapper parses a {...} span and extracts a list from a known
// wrapper key.
func parseObjectWrapper(text string) ([]json.RawMessage, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end <= start {
		return nil, false
	}
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text[start:end+1]), &obj); err != nil {
		return nil, false
	}
	for _, key := range wrapperKeys {
		raw, ok := obj[key]
		if !ok {
			continue
		}
		if items, ok := parseDirect(string(raw)); ok {
			return items, true
		}
	}
	return nil, false
}
