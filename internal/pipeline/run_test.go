package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/document"
	"github.com/jonathan/resume-parser/internal/types"
)

const sampleResume = `JANE DOE
jane.doe@gmail.com
+91 9876543210

SUMMARY
Backend developer with a love for distributed systems.

SKILLS
Python, Flask, Docker

EXPERIENCE
Software Engineer, Acme
Jan 2020 - Jan 2022

EDUCATION
B.Tech in Computer Science, IIT Delhi

PROJECTS
1) Title: Food Ordering System
Description: A food app
Languages used: Python, Flask
`

// stubExtractor is a canned StructuredExtractor.
type stubExtractor struct {
	result *types.FallbackResult
	err    error
	calls  int
}

func (s *stubExtractor) Extract(ctx context.Context, text string) (*types.FallbackResult, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func TestRun(t *testing.T) {
	extractor := &stubExtractor{}
	runner := NewRunner(nil, extractor, nil)

	record := runner.Run(context.Background(), sampleResume, "Looking for Python and React developers")

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "jane.doe@gmail.com", record.Email)
	assert.Equal(t, "+919876543210", record.Phone)
	assert.Equal(t, map[string]int{"python": 100, "flask": 100, "docker": 100}, record.Skills)
	assert.InDelta(t, 2.0, record.ExperienceYears, 0.001)
	assert.Equal(t, []string{"B.Tech in Computer Science, IIT Delhi"}, record.Education)
	require.Len(t, record.Projects, 1)
	assert.Equal(t, "Food Ordering System", record.Projects[0].Title)
	assert.Equal(t, "A food app", record.Projects[0].Description)
	assert.Equal(t, []string{"flask", "python"}, record.Projects[0].Stack)
	assert.Equal(t, "Backend developer with a love for distributed systems.", record.Summary)

	assert.Equal(t, 50, record.ATSScore)
	assert.Equal(t, []string{"python"}, record.JobMatch.MatchedSkills)
	assert.Equal(t, []string{"react"}, record.JobMatch.MissingSkills)

	// Rule pass found skills and projects, so the fallback stays idle.
	assert.Zero(t, extractor.calls)
}

func TestRunFallbackTriggered(t *testing.T) {
	extractor := &stubExtractor{result: &types.FallbackResult{
		Name:     "Jane Doe",
		Skills:   []string{"React"},
		Projects: []types.FallbackProject{{Title: "Portfolio", TechStack: []string{"React"}}},
	}}
	runner := NewRunner(nil, extractor, nil)

	record := runner.Run(context.Background(), "Contact: 12345", "")

	assert.Equal(t, 1, extractor.calls)
	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, map[string]int{"react": 100}, record.Skills)
	require.Len(t, record.Projects, 1)
	assert.Equal(t, "Portfolio", record.Projects[0].Title)
}

func TestRunFallbackFailureDegrades(t *testing.T) {
	extractor := &stubExtractor{err: errors.New("quota exceeded")}
	runner := NewRunner(nil, extractor, nil)

	record := runner.Run(context.Background(), "Contact: 12345", "")

	assert.Equal(t, 1, extractor.calls)
	assert.Empty(t, record.Skills)
	assert.Empty(t, record.Projects)
	assert.Zero(t, record.ATSScore)
}

func TestRunWithoutExtractor(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	record := runner.Run(context.Background(), "Contact: 12345", "")

	require.NotNil(t, record)
	assert.Empty(t, record.Skills)
}

func TestRunEmptyJobDescription(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	record := runner.Run(context.Background(), sampleResume, "")

	assert.Zero(t, record.ATSScore)
	assert.Empty(t, record.JobMatch.MatchedSkills)
	assert.Empty(t, record.JobMatch.MissingSkills)
}

func TestRunTruncatesSummary(t *testing.T) {
	long := "SUMMARY\n" + strings.Repeat("a", 600)
	runner := NewRunner(nil, nil, nil)

	record := runner.Run(context.Background(), long, "")

	assert.Len(t, record.Summary, 500)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleResume), 0o644))

	runner := NewRunner(nil, nil, nil)
	record, err := runner.ParseFile(context.Background(), path, "")
	require.NoError(t, err)

	assert.Equal(t, path, record.File)
	assert.Equal(t, "Jane Doe", record.Name)
}

func TestParseFileUnreadable(t *testing.T) {
	runner := NewRunner(nil, nil, nil)

	_, err := runner.ParseFile(context.Background(), filepath.Join(t.TempDir(), "missing.txt"), "")
	require.Error(t, err)

	var ue *document.UnreadableError
	assert.ErrorAs(t, err, &ue)
}
