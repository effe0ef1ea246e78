// Package education filters resume text down to lines describing degrees and
// schooling.
package education

import (
	"regexp"
	"strings"
)

// minLineLength drops fragments too short to describe a qualification.
const minLineLength = 4

// reservedHeadings are bare section-heading words that must never pass as
// education entries.
var reservedHeadings = map[string]bool{
	"education": true,
	"profile":   true,
	"summary":   true,
	"projects":  true,
	"skills":    true,
}

// degreePatterns match degree abbreviations (with optional internal dots and
// spaces) and written-out degree names.
var degreePatterns = []string{
	`\bB\.?\s*Tech\b`, `\bM\.?\s*Tech\b`,
	`\bB\.?\s*E\b`, `\bM\.?\s*E\b`,
	`\bB\.?\s*Sc\b`, `\bM\.?\s*Sc\b`,
	`\bB\.?\s*CA\b`, `\bM\.?\s*CA\b`,
	`\bB\.?\s*A\b`, `\bM\.?\s*A\b`,
	`\bB\.?\s*Com\b`, `\bM\.?\s*Com\b`,
	`\bMBA\b`, `\bBBA\b`,
	`\bPh\.?\s*D\b`,
	`\bBachelor of [A-Za-z ]+`,
	`\bMaster of [A-Za-z ]+`,
}

// schoolPatterns match school-level qualifications.
var schoolPatterns = []string{
	`\bHSC\b`, `\bSSC\b`, `\b12th\b`, `\b10th\b`,
	`\bIntermediate\b`,
	`\bHigher Secondary\b`,
	`\bHigh School\b`,
	`\bJunior College\b`,
}

var qualification = regexp.MustCompile(`(?i)` + strings.Join(append(append([]string{}, degreePatterns...), schoolPatterns...), "|"))

// lettersOnly guards against stray words like "Backend" that happen to hit a
// loose degree pattern: a real education line carries digits or punctuation.
var lettersOnly = regexp.MustCompile(`^[A-Za-z ]+$`)

var (
	bulletGlyphs = strings.NewReplacer("•", "-", "●", "-", "◆", "-", "■", "-", "\r", "\n")
	spaceRuns    = regexp.MustCompile(`[ \t]+`)
	anySpaceRuns = regexp.MustCompile(`\s+`)
)

// Extract returns the distinct education lines found in the text, cleaned and
// in first-seen order.
func Extract(text string) []string {
	if text == "" {
		return nil
	}

	t := bulletGlyphs.Replace(text)
	t = spaceRuns.ReplaceAllString(t, " ")

	var entries []string
	seen := make(map[string]bool)

	for _, line := range strings.Split(t, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" || len(clean) < minLineLength {
			continue
		}
		if reservedHeadings[strings.ToLower(clean)] {
			continue
		}
		if !qualification.MatchString(clean) {
			continue
		}
		if lettersOnly.MatchString(clean) {
			continue
		}

		clean = strings.TrimSpace(anySpaceRuns.ReplaceAllString(clean, " "))
		if !seen[clean] {
			seen[clean] = true
			entries = append(entries, clean)
		}
	}

	return entries
}
