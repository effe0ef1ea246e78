package identity

import (
	"regexp"
	"strings"
)

// phonePattern matches digit runs of plausible phone length with interleaved
// spaces, dots, hyphens, and parentheses, plus an optional leading +.
var phonePattern = regexp.MustCompile(`\+?\d[\d\s().-]{7,16}\d`)

// nonPhoneChars removes everything but digits and a leading +.
var nonPhoneChars = regexp.MustCompile(`[^\d+]`)

// ExtractPhone returns one normalized phone number from the text. Numbers are
// stripped of formatting; a +91 Indian mobile is preferred, then any bare
// 10-digit number, then the first candidate. Returns "" when none match.
func ExtractPhone(text string) string {
	clean := strings.ReplaceAll(text, "\n", " ")

	matches := phonePattern.FindAllString(clean, -1)
	if len(matches) == 0 {
		return ""
	}

	normalized := make([]string, len(matches))
	for i, m := range matches {
		normalized[i] = nonPhoneChars.ReplaceAllString(m, "")
	}

	for _, num := range normalized {
		if len(num) == 12 && strings.HasPrefix(num, "+91") {
			return num
		}
	}

	for _, num := range normalized {
		if len(num) == 10 {
			return num
		}
	}

	return normalized[0]
}
