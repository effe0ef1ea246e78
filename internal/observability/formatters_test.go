package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ResumeRecord{
		Name:            "Jane Doe",
		Email:           "jane@gmail.com",
		Phone:           "+919876543210",
		ExperienceYears: 2.5,
		Education:       []string{"B.Tech in Computer Science"},
		Projects: []types.ProjectRecord{
			{Title: "Chat App", Stack: []string{"go", "redis"}},
		},
	}

	p.PrintProfile(record)
	output := buf.String()

	assert.Contains(t, output, "PARSED PROFILE")
	assert.Contains(t, output, "Jane Doe")
	assert.Contains(t, output, "jane@gmail.com")
	assert.Contains(t, output, "2.50 years")
	assert.Contains(t, output, "B.Tech in Computer Science")
	assert.Contains(t, output, "Chat App")
	assert.Contains(t, output, "go, redis")
}

func TestPrintProfile_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfileMissingFields(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.ResumeRecord{})

	assert.Contains(t, buf.String(), "Name:   -")
}

func TestPrintSkillRanking(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillRanking(map[string]int{"python": 100, "docker": 50})
	output := buf.String()

	assert.Contains(t, output, "SKILL RANKING")
	assert.Contains(t, output, "Total skills detected: 2")
	assert.Contains(t, output, "python")
	assert.Contains(t, output, "docker")
}

func TestPrintSkillRanking_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkillRanking(nil)

	assert.Empty(t, buf.String())
}

func TestPrintJobMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	record := &types.ResumeRecord{
		ATSScore: 33,
		JobMatch: types.JobMatch{
			MatchedSkills: []string{"react"},
			MissingSkills: []string{"mongodb", "node"},
		},
	}

	p.PrintJobMatch(record)
	output := buf.String()

	assert.Contains(t, output, "JOB MATCH")
	assert.Contains(t, output, "33/100")
	assert.Contains(t, output, "react")
	assert.Contains(t, output, "mongodb, node")
}

func TestPrintJobMatch_NoJobSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobMatch(&types.ResumeRecord{})

	assert.Contains(t, buf.String(), "No job skills detected.")
}
