package pipeline

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// merge combines the rule-based pass with the structured-extraction fallback.
// The rule result wins whenever it is non-empty or non-zero; the fallback only
// fills holes. A nil fallback leaves the rule result untouched.
func merge(rule ruleResult, fallback *types.FallbackResult) *types.ResumeRecord {
	if fallback == nil {
		fallback = &types.FallbackResult{}
	}

	record := &types.ResumeRecord{
		Name:            firstNonEmpty(rule.Name, fallback.Name),
		Email:           firstNonEmpty(rule.Email, fallback.Email),
		Phone:           firstNonEmpty(rule.Phone, fallback.Phone),
		Skills:          mergeSkills(rule.Skills, fallback.Skills),
		ExperienceYears: rule.ExperienceYears,
		Education:       rule.Education,
		Projects:        rule.Projects,
		Summary:         rule.Summary,
	}

	if record.ExperienceYears <= 0 {
		record.ExperienceYears = fallback.ExperienceYears
	}
	if len(record.Education) == 0 {
		record.Education = renderEducation(fallback.Education)
	}
	if len(record.Projects) == 0 {
		record.Projects = convertProjects(fallback.Projects)
	}

	return record
}

// mergeSkills assigns every fallback skill a flat score, then overlays the
// rule-derived scores. Rule scores win on key collision.
func mergeSkills(rule map[string]int, fallback []string) map[string]int {
	merged := make(map[string]int, len(rule)+len(fallback))
	for _, s := range fallback {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			merged[s] = 100
		}
	}
	for skill, score := range rule {
		merged[skill] = score
	}
	return merged
}

func renderEducation(entries []types.FallbackEducation) []string {
	var rendered []string
	for i := range entries {
		if line := entries[i].Render(); line != "" {
			rendered = append(rendered, line)
		}
	}
	return rendered
}

func convertProjects(entries []types.FallbackProject) []types.ProjectRecord {
	var converted []types.ProjectRecord
	for _, p := range entries {
		converted = append(converted, types.ProjectRecord{
			Title:        p.Title,
			Description:  p.Description,
			LanguageUsed: strings.Join(p.TechStack, ", "),
			Stack:        normalizeStack(p.TechStack),
		})
	}
	return converted
}

// normalizeStack lower-cases, trims, de-duplicates, and sorts stack entries.
func normalizeStack(stack []string) []string {
	seen := make(map[string]bool, len(stack))
	var out []string
	for _, s := range stack {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}
