// Package llm - jsonutil.go provides shared utilities for normalizing model
// JSON output before parsing.
package llm

import (
	"regexp"
	"strings"
)

var (
	controlChars  = regexp.MustCompile(`[\x00-\x1f\x7f]`)
	trailingComma = regexp.MustCompile(`,\s*([}\]])`)
)

// CleanJSONBlock removes markdown code block wrappers from JSON responses.
// Models often wrap JSON in ```json ... ``` blocks even when instructed not to.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		return strings.TrimSpace(text)
	}

	return text
}

// NormalizeJSON repairs the common defects in model-produced JSON: it
// extracts the outermost object, replaces smart quotes, strips control
// characters, trims trailing commas, and escapes stray backslashes.
// Returns "" when the text contains no JSON object at all.
func NormalizeJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	raw = raw[start : end+1]

	raw = strings.NewReplacer("“", `"`, "”", `"`, "’", "'").Replace(raw)
	raw = controlChars.ReplaceAllString(raw, "")
	raw = trailingComma.ReplaceAllString(raw, "$1")
	raw = escapeStrayBackslashes(raw)

	return raw
}

// escapeStrayBackslashes doubles any backslash that does not begin a valid
// JSON escape sequence.
func escapeStrayBackslashes(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		if i+1 < len(s) && strings.IndexByte(`"\/bfnrtu`, s[i+1]) >= 0 {
			sb.WriteByte(c)
			sb.WriteByte(s[i+1])
			i++
			continue
		}
		sb.WriteString(`\\`)
	}

	return sb.String()
}
