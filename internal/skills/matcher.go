package skills

import (
	"sort"
	"strings"
)

// Extract counts whole-word occurrences of every dictionary skill (canonical
// name and aliases alike, all attributed to the canonical name) in the text
// and converts the counts to relevance scores: the most frequent skill scores
// exactly 100 and every other score is floor-scaled proportionally. Soft
// skills present in the text are added afterwards with a flat score unless
// the dictionary pass already scored them higher. Skills with zero hits never
// appear in the result.
func Extract(text string) map[string]int {
	lower := strings.ToLower(text)

	counts := make(map[string]int)
	for _, entry := range compiled {
		total := 0
		for _, p := range entry.patterns {
			total += len(p.FindAllStringIndex(lower, -1))
		}
		if total > 0 {
			counts[entry.canonical] = total
		}
	}

	// Max defaults to 1 so an empty result does not divide by zero.
	max := 1
	for _, c := range counts {
		if c > max {
			max = c
		}
	}

	scores := make(map[string]int, len(counts))
	for skill, count := range counts {
		scores[skill] = count * 100 / max
	}

	for i, p := range softPatterns {
		if p.MatchString(lower) {
			if _, exists := scores[SoftSkills[i]]; !exists {
				scores[SoftSkills[i]] = softSkillScore
			}
		}
	}

	return scores
}

// Scored is a skill with its relevance score, used for ordered display.
type Scored struct {
	Name  string
	Score int
}

// Ranked returns the score map as a slice sorted by descending score, with
// name order breaking ties so output is stable.
func Ranked(scores map[string]int) []Scored {
	ranked := make([]Scored, 0, len(scores))
	for name, score := range scores {
		ranked = append(ranked, Scored{Name: name, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Name < ranked[j].Name
	})
	return ranked
}
