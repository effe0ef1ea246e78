// Package types defines the shared data structures exchanged between pipeline stages.
package types

import (
	"encoding/json"
	"strings"
)

// ProjectRecord is a single project reconstructed from the projects section.
type ProjectRecord struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	LanguageUsed string   `json:"language_used"` // raw, unsplit stack text for display
	Stack        []string `json:"stack"`         // lowercase, deduplicated, sorted
}

// JobMatch details which job-description skills the resume covers.
type JobMatch struct {
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}

// ResumeRecord is the final structured profile produced for one document.
// It is built fresh per parse invocation and never mutated after return.
type ResumeRecord struct {
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	Skills          map[string]int  `json:"skills"`
	ExperienceYears float64         `json:"experience_years"`
	Education       []string        `json:"education"`
	Projects        []ProjectRecord `json:"projects"`
	Summary         string          `json:"summary"`
	File            string          `json:"file,omitempty"`
	ATSScore        int             `json:"ats_score"`
	JobMatch        JobMatch        `json:"job_match"`
}

// FallbackProject is a project entry from the structured-extraction fallback.
type FallbackProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech_stack"`
}

// FallbackEducation is an education entry from the structured-extraction
// fallback. Models return either a bare string or an object with
// degree/institution/date fields, so it unmarshals from both shapes.
type FallbackEducation struct {
	Degree      string `json:"degree"`
	Name        string `json:"name"`
	Institution string `json:"institution"`
	University  string `json:"university"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`

	// Raw holds the original value when the entry was a plain string.
	Raw string `json:"-"`
}

// UnmarshalJSON accepts either a JSON string or a structured object.
func (e *FallbackEducation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Raw = s
		return nil
	}

	type alias FallbackEducation
	var obj alias
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = FallbackEducation(obj)
	return nil
}

// Render flattens the entry to a single "degree - institution (start – end)"
// line, omitting any missing component and its separator.
func (e *FallbackEducation) Render() string {
	if e.Raw != "" {
		return e.Raw
	}

	degree := e.Degree
	if degree == "" {
		degree = e.Name
	}
	institution := e.Institution
	if institution == "" {
		institution = e.University
	}

	var years string
	switch {
	case e.StartDate != "" && e.EndDate != "":
		years = "(" + e.StartDate + " – " + e.EndDate + ")"
	case e.StartDate != "":
		years = "(" + e.StartDate + ")"
	case e.EndDate != "":
		years = "(" + e.EndDate + ")"
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{degree, institution} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, strings.TrimSpace(p))
		}
	}
	joined := strings.Join(parts, " - ")
	if years != "" {
		if joined == "" {
			return years
		}
		joined += " " + years
	}
	return joined
}

// FallbackResult is the strict-schema output of the structured-extraction
// fallback. Missing data is represented by empty values, never nil maps the
// merger would have to special-case.
type FallbackResult struct {
	Name            string              `json:"name"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	Skills          []string            `json:"skills"`
	ExperienceYears float64             `json:"experience_years"`
	Education       []FallbackEducation `json:"education"`
	Projects        []FallbackProject   `json:"projects"`
}
