// Package sections splits raw resume text into heading-keyed sections and
// resolves logical sections (skills, education, ...) through alias lists.
package sections

import (
	"regexp"
	"strings"
)

// maxHeadings bounds how many distinct headings segmentation will create.
// Ticker-like or malformed documents can otherwise explode into hundreds of
// one-line sections; past the bound, remaining lines fold into the current one.
const maxHeadings = 40

// HeaderSection is the implicit section holding lines that precede the first
// detected heading. Contact details almost always live here.
const HeaderSection = "header"

// Alias lists for logical sections. Declaration order is the match order.
var (
	SummaryAliases    = []string{"summary", "career objective", "objective"}
	SkillAliases      = []string{"skills", "technologies", "tools"}
	ProjectAliases    = []string{"projects", "challenges", "blogs"}
	ExperienceAliases = []string{"experience", "internships", "work experience"}
	EducationAliases  = []string{"education"}
)

// titleCaseHeading matches capitalized short-phrase headings such as
// "Work Experience" or "Skills & Tools" (letters, spaces, /, &, -; length >= 4).
var titleCaseHeading = regexp.MustCompile(`^[A-Z][A-Za-z /&-]{3,}$`)

// Map is the read-only result of segmentation: heading -> accumulated body.
// Heading keys keep document order so alias lookups are deterministic.
type Map struct {
	order []string
	body  map[string][]string
}

// Split segments raw text into sections in a single left-to-right pass.
// Every non-blank line belongs to exactly one section; the current section is
// HeaderSection until the first heading line is seen.
func Split(text string) *Map {
	m := &Map{body: make(map[string][]string)}
	current := HeaderSection
	m.add(current)

	for _, line := range strings.Split(text, "\n") {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}

		if isHeading(clean) && m.Len() <= maxHeadings {
			current = strings.ToLower(clean)
			m.add(current)
			continue
		}

		m.body[current] = append(m.body[current], clean)
	}

	return m
}

// isHeading reports whether a line opens a new section: entirely upper-case,
// or a capitalized short phrase, and at most 6 whitespace-delimited tokens.
func isHeading(line string) bool {
	if len(strings.Fields(line)) > 6 {
		return false
	}
	return isUpper(line) || titleCaseHeading.MatchString(line)
}

// isUpper reports whether the line contains at least one letter and no
// lower-case letters.
func isUpper(line string) bool {
	hasLetter := false
	for _, r := range line {
		switch {
		case r >= 'a' && r <= 'z':
			return false
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		}
	}
	return hasLetter
}

func (m *Map) add(key string) {
	if _, exists := m.body[key]; exists {
		return
	}
	m.order = append(m.order, key)
	m.body[key] = nil
}

// Len returns the number of sections, including the implicit header section.
func (m *Map) Len() int {
	return len(m.order)
}

// Headings returns the heading keys in document order.
func (m *Map) Headings() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Get returns the body of an exact heading key.
func (m *Map) Get(key string) (string, bool) {
	lines, ok := m.body[key]
	if !ok {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

// Lookup resolves a logical section through its alias list: every heading key
// is scanned in document order, and a key matches if any alias is a substring
// of it. Aliases are tried in declaration order; the first match wins.
// Returns "" when no heading matches.
func (m *Map) Lookup(aliases []string) string {
	for _, key := range m.order {
		for _, alias := range aliases {
			if strings.Contains(key, alias) {
				body, _ := m.Get(key)
				return body
			}
		}
	}
	return ""
}
