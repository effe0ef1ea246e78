package identity

import (
	"context"
	"regexp"
	"strings"
	"unicode"
)

// nameScanLines is how many non-blank lines from the top of the document the
// rule-based name heuristic inspects.
const nameScanLines = 10

// taggerSnippetLimit caps how much text is sent to the entity tagger.
const taggerSnippetLimit = 500

// ignoredNameWords are heading words that disqualify a line as a name.
var ignoredNameWords = map[string]bool{
	"resume":     true,
	"curriculum": true,
	"vitae":      true,
	"cv":         true,
	"profile":    true,
}

// nameNoise strips digits and contact punctuation before word splitting.
var nameNoise = regexp.MustCompile(`[\d+().@\-]`)

// ExtractName finds the candidate's name in the first lines of the document.
// A line qualifies when, after stripping digits and punctuation, it holds 2-5
// purely alphabetic words none of which is a reserved heading word. When no
// line qualifies and a tagger is available, the first PERSON span with 2-5
// tokens from the document's first 500 characters is used instead.
// Returns "" when nothing is found.
func ExtractName(ctx context.Context, text string, tagger EntityTagger) string {
	if name := nameFromLines(text); name != "" {
		return name
	}
	return nameFromTagger(ctx, text, tagger)
}

func nameFromLines(text string) string {
	seen := 0
	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		seen++
		if seen > nameScanLines {
			break
		}

		stripped := nameNoise.ReplaceAllString(clean, "")
		words := alphabeticWords(stripped)
		if len(words) < 2 || len(words) > 5 {
			continue
		}
		if containsIgnoredWord(words) {
			continue
		}

		for i, w := range words {
			words[i] = capitalize(w)
		}
		return strings.Join(words, " ")
	}
	return ""
}

func nameFromTagger(ctx context.Context, text string, tagger EntityTagger) string {
	if tagger == nil {
		return ""
	}

	snippet := text
	if len(snippet) > taggerSnippetLimit {
		snippet = snippet[:taggerSnippetLimit]
	}

	entities, err := tagger.Tag(ctx, snippet)
	if err != nil {
		return ""
	}

	for _, ent := range entities {
		if ent.Label != LabelPerson {
			continue
		}
		tokens := strings.Fields(ent.Text)
		if len(tokens) >= 2 && len(tokens) <= 5 {
			return strings.TrimSpace(ent.Text)
		}
	}
	return ""
}

// alphabeticWords splits on whitespace and keeps words made of letters only.
func alphabeticWords(s string) []string {
	var words []string
	for _, w := range strings.Fields(s) {
		if w != "" && isAlphabetic(w) {
			words = append(words, w)
		}
	}
	return words
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func containsIgnoredWord(words []string) bool {
	for _, w := range words {
		if ignoredNameWords[strings.ToLower(w)] {
			return true
		}
	}
	return false
}

// capitalize upper-cases the first letter and lower-cases the remainder.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	runes := []rune(w)
	head := string(unicode.ToUpper(runes[0]))
	return head + strings.ToLower(string(runes[1:]))
}
