package skills

import (
	"sort"
	"strings"
)

// MatchResult is the outcome of scoring resume skills against a job
// description.
type MatchResult struct {
	Score   int
	Matched []string
	Missing []string
}

// ATSScore derives the job-relevant skill set from the job description using
// the same dictionary as Extract, then scores the resume as the floor
// percentage of that set it covers. An empty job skill set scores zero with
// no matched or missing skills.
func ATSScore(resumeSkills map[string]int, jobDescription string) MatchResult {
	jobText := strings.ToLower(jobDescription)

	jobSet := make(map[string]bool)
	for _, entry := range compiled {
		for _, p := range entry.patterns {
			if p.MatchString(jobText) {
				jobSet[entry.canonical] = true
				break
			}
		}
	}

	if len(jobSet) == 0 {
		return MatchResult{Score: 0, Matched: []string{}, Missing: []string{}}
	}

	matched := make([]string, 0, len(jobSet))
	missing := make([]string, 0, len(jobSet))
	for skill := range jobSet {
		if _, ok := resumeSkills[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return MatchResult{
		Score:   len(matched) * 100 / len(jobSet),
		Matched: matched,
		Missing: missing,
	}
}
