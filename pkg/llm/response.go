package llm

import "strings"

// ExtractJSONObject returns the first JSON object embedded in a model
// response, tolerating markdown fences and prose around it. Prompts ask for
// bare JSON, but models occasionally wrap it anyway. Returns the trimmed
// input when no braces are found so json.Unmarshal produces a useful error.
func ExtractJSONObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return strings.TrimSpace(s)
	}
	return s[start : end+1]
}
