// Package skills detects technology skills in free text using a fixed alias
// dictionary, scores them by relative frequency, and computes ATS match
// scores against job descriptions.
package skills

import (
	"regexp"
	"sort"
)

// Dictionary maps category -> canonical skill name -> alias list. The category
// level is authoring ergonomics only; counting and scoring treat this as a
// flat canonical -> aliases mapping. Loaded once, never mutated.
var Dictionary = map[string]map[string][]string{
	"frontend": {
		"html":       {"html5"},
		"css":        {"css3"},
		"javascript": {"js", "ecmascript"},
		"typescript": {"ts"},
		"react":      {"reactjs", "react.js"},
		"angular":    {"angularjs"},
		"vue":        {"vuejs"},
		"bootstrap":  {},
		"tailwind":   {"tailwindcss"},
		"jquery":     {},
		"next.js":    {"nextjs"},
		"vite":       {},
	},
	"backend": {
		"node":    {"nodejs", "node.js"},
		"express": {"expressjs", "express.js"},
		"php":     {},
		"laravel": {},
		"python":  {},
		"django":  {},
		"flask":   {},
		"fastapi": {},
		"java":    {"core java", "advanced java"},
		"spring":  {"spring boot"},
		"c":       {},
		"c++":     {"cpp"},
		"c#":      {"csharp", ".net"},
		"golang":  {"go"},
		"ruby":    {},
		"rails":   {"ruby on rails"},
	},
	"databases": {
		"mysql":      {},
		"postgresql": {"postgres"},
		"mongodb":    {"mongo"},
		"sqlserver":  {"mssql"},
		"sqlite":     {},
		"sql":        {},
		"oracle":     {},
		"redis":      {},
	},
	"devops_cloud": {
		"docker":     {},
		"kubernetes": {"k8s"},
		"aws":        {"amazon web service"},
		"azure":      {},
		"gcp":        {"google cloud"},
		"jenkins":    {},
		"ci/cd":      {"cicd"},
		"terraform":  {},
		"ansible":    {},
		"prometheus": {},
	},
	"mobile": {
		"react native": {"react-native"},
		"flutter":      {},
		"swift":        {},
		"kotlin":       {},
	},
	"data_ml": {
		"pandas":       {},
		"numpy":        {},
		"scikit-learn": {"sklearn"},
		"tensorflow":   {},
		"pytorch":      {"torch"},
		"spark":        {"pyspark"},
		"hadoop":       {},
		"ml":           {"machine learning"},
		"ai":           {"artificial intelligence"},
		"nlp":          {"natural language processing"},
	},
	"tools": {
		"git":        {},
		"github":     {},
		"gitlab":     {},
		"jira":       {},
		"confluence": {},
		"linux":      {},
	},
}

// SoftSkills are phrases granted a flat score when present and not already
// scored higher by the dictionary pass.
var SoftSkills = []string{
	"leadership", "communication", "problem solving",
	"quick learner", "collaboration", "time management",
	"project management", "email marketing",
}

// softSkillScore is the flat score for detected soft skills.
const softSkillScore = 40

// skillEntry is one canonical skill with its compiled match patterns.
type skillEntry struct {
	canonical string
	patterns  []*regexp.Regexp
}

// compiled holds every canonical skill with word-boundary patterns for the
// canonical name and each alias, in stable (sorted) canonical order.
var compiled = compileDictionary()

// softPatterns holds compiled word-boundary patterns for SoftSkills.
var softPatterns = compileSoftSkills()

func compileDictionary() []skillEntry {
	var entries []skillEntry
	for _, category := range Dictionary {
		for canonical, aliases := range category {
			terms := append([]string{canonical}, aliases...)
			patterns := make([]*regexp.Regexp, len(terms))
			for i, term := range terms {
				patterns[i] = wordPattern(term)
			}
			entries = append(entries, skillEntry{canonical: canonical, patterns: patterns})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].canonical < entries[j].canonical
	})
	return entries
}

func compileSoftSkills() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(SoftSkills))
	for i, s := range SoftSkills {
		patterns[i] = wordPattern(s)
	}
	return patterns
}

// wordPattern anchors a literal term (possibly multi-word) at word boundaries.
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
}
