// Package pipeline orchestrates the extraction stages that turn raw resume
// text into a structured candidate profile.
package pipeline

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-parser/internal/document"
	"github.com/jonathan/resume-parser/internal/education"
	"github.com/jonathan/resume-parser/internal/experience"
	"github.com/jonathan/resume-parser/internal/identity"
	"github.com/jonathan/resume-parser/internal/projects"
	"github.com/jonathan/resume-parser/internal/sections"
	"github.com/jonathan/resume-parser/internal/skills"
	"github.com/jonathan/resume-parser/internal/types"
)

// summaryLimit bounds the summary carried into the final record.
const summaryLimit = 500

// StructuredExtractor is the LLM-backed fallback invoked when the rule-based
// pass finds no skills or no projects.
type StructuredExtractor interface {
	Extract(ctx context.Context, text string) (*types.FallbackResult, error)
}

// Runner wires the extraction stages together. The tagger and extractor are
// optional; a nil collaborator simply disables its fallback.
type Runner struct {
	tagger    identity.EntityTagger
	extractor StructuredExtractor
	log       *zap.Logger
}

// NewRunner creates a pipeline runner.
func NewRunner(tagger identity.EntityTagger, extractor StructuredExtractor, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{tagger: tagger, extractor: extractor, log: log}
}

// ruleResult is the output of the rule-based pass, kept separate from the
// final record so the merger can distinguish rule values from fallback ones.
type ruleResult struct {
	Name            string
	Email           string
	Phone           string
	Skills          map[string]int
	ExperienceYears float64
	Education       []string
	Projects        []types.ProjectRecord
	Summary         string
}

// ParseFile extracts text from the document at path and runs the pipeline on
// it. A text-source failure is the only fatal error; it propagates as a
// document.UnreadableError.
func (r *Runner) ParseFile(ctx context.Context, path, jobDescription string) (*types.ResumeRecord, error) {
	source := document.ForFile(path)
	text, err := source.Extract(ctx, path)
	if err != nil {
		return nil, err
	}

	record := r.Run(ctx, text, jobDescription)
	record.File = path
	return record, nil
}

// Run executes the full pipeline on raw resume text. It never fails: every
// extractor degrades to an empty value when it finds nothing, and fallback
// errors are swallowed after logging.
func (r *Runner) Run(ctx context.Context, text, jobDescription string) *types.ResumeRecord {
	log := r.log.With(zap.String("run_id", uuid.NewString()))

	secs := sections.Split(text)
	log.Debug("segmented", zap.Int("sections", secs.Len()), zap.Strings("headings", secs.Headings()))

	summaryText := secs.Lookup(sections.SummaryAliases)
	skillText := secs.Lookup(sections.SkillAliases)
	projectText := secs.Lookup(sections.ProjectAliases)
	experienceText := secs.Lookup(sections.ExperienceAliases)
	educationText := secs.Lookup(sections.EducationAliases)

	parsed := projects.Parse(projectText)
	if len(parsed) == 0 {
		// No projects section, or one the parser could not read. Retry over
		// the whole document.
		parsed = projects.Parse(text)
	}

	rule := ruleResult{
		Name:            identity.ExtractName(ctx, text, r.tagger),
		Email:           identity.ExtractEmail(text),
		Phone:           identity.ExtractPhone(text),
		Skills:          skills.Extract(skillText),
		ExperienceYears: experience.Years(experienceText),
		Education:       education.Extract(educationText),
		Projects:        parsed,
		Summary:         truncate(summaryText, summaryLimit),
	}
	log.Debug("rule pass done",
		zap.Int("skills", len(rule.Skills)),
		zap.Float64("experience_years", rule.ExperienceYears),
		zap.Int("education", len(rule.Education)),
		zap.Int("projects", len(rule.Projects)),
	)

	var fallback *types.FallbackResult
	if len(rule.Skills) == 0 || len(rule.Projects) == 0 {
		fallback = r.runFallback(ctx, text, log)
	}

	record := merge(rule, fallback)

	match := skills.ATSScore(record.Skills, jobDescription)
	record.ATSScore = match.Score
	record.JobMatch = types.JobMatch{
		MatchedSkills: match.Matched,
		MissingSkills: match.Missing,
	}

	log.Info("parsed",
		zap.Int("skills", len(record.Skills)),
		zap.Int("projects", len(record.Projects)),
		zap.Int("ats_score", record.ATSScore),
	)
	return record
}

// runFallback invokes the structured extractor once. Any failure degrades to
// a nil result; the rule-based output stands on its own.
func (r *Runner) runFallback(ctx context.Context, text string, log *zap.Logger) *types.FallbackResult {
	if r.extractor == nil {
		return nil
	}

	result, err := r.extractor.Extract(ctx, text)
	if err != nil {
		log.Warn("structured extraction fallback failed", zap.Error(err))
		return nil
	}

	log.Debug("fallback pass done",
		zap.Int("skills", len(result.Skills)),
		zap.Int("projects", len(result.Projects)),
	)
	return result
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
