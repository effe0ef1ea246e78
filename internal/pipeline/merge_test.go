package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/types"
)

func TestMergeRuleWins(t *testing.T) {
	rule := ruleResult{
		Name:            "Jane Doe",
		Email:           "jane@gmail.com",
		Phone:           "+919876543210",
		Skills:          map[string]int{"react": 60},
		ExperienceYears: 2.5,
		Education:       []string{"B.Tech in Computer Science"},
		Projects:        []types.ProjectRecord{{Title: "Chat App"}},
		Summary:         "Backend developer.",
	}
	fallback := &types.FallbackResult{
		Name:            "Wrong Name",
		Email:           "other@example.com",
		Phone:           "0000000000",
		Skills:          []string{"React", "Vue"},
		ExperienceYears: 9,
		Education:       []types.FallbackEducation{{Raw: "Some School"}},
		Projects:        []types.FallbackProject{{Title: "Other"}},
	}

	record := merge(rule, fallback)

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, "jane@gmail.com", record.Email)
	assert.Equal(t, "+919876543210", record.Phone)
	assert.Equal(t, map[string]int{"react": 60, "vue": 100}, record.Skills)
	assert.InDelta(t, 2.5, record.ExperienceYears, 0.001)
	assert.Equal(t, []string{"B.Tech in Computer Science"}, record.Education)
	require.Len(t, record.Projects, 1)
	assert.Equal(t, "Chat App", record.Projects[0].Title)
	assert.Equal(t, "Backend developer.", record.Summary)
}

func TestMergeFallbackFillsHoles(t *testing.T) {
	rule := ruleResult{Skills: map[string]int{}}
	fallback := &types.FallbackResult{
		Name:            "Jane Doe",
		Email:           "jane@gmail.com",
		Phone:           "+919876543210",
		Skills:          []string{"React"},
		ExperienceYears: 1.5,
		Education: []types.FallbackEducation{
			{Degree: "B.Tech", Institution: "IIT Delhi", StartDate: "2019", EndDate: "2023"},
			{Raw: "Higher Secondary"},
		},
		Projects: []types.FallbackProject{
			{Title: "Chat App", Description: "Realtime chat", TechStack: []string{"Go", "Redis", "go"}},
		},
	}

	record := merge(rule, fallback)

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, map[string]int{"react": 100}, record.Skills)
	assert.InDelta(t, 1.5, record.ExperienceYears, 0.001)
	assert.Equal(t, []string{"B.Tech - IIT Delhi (2019 – 2023)", "Higher Secondary"}, record.Education)
	require.Len(t, record.Projects, 1)
	assert.Equal(t, "Chat App", record.Projects[0].Title)
	assert.Equal(t, "Go, Redis, go", record.Projects[0].LanguageUsed)
	assert.Equal(t, []string{"go", "redis"}, record.Projects[0].Stack)
}

func TestMergeSkillsRuleScoreWinsOnCollision(t *testing.T) {
	merged := mergeSkills(map[string]int{"react": 60}, []string{"React"})
	assert.Equal(t, map[string]int{"react": 60}, merged)
}

func TestMergeNilFallback(t *testing.T) {
	rule := ruleResult{
		Name:   "Jane Doe",
		Skills: map[string]int{"python": 100},
	}

	record := merge(rule, nil)

	assert.Equal(t, "Jane Doe", record.Name)
	assert.Equal(t, map[string]int{"python": 100}, record.Skills)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.Projects)
}

func TestMergeSummaryNeverFromFallback(t *testing.T) {
	record := merge(ruleResult{}, &types.FallbackResult{Name: "Jane"})
	assert.Empty(t, record.Summary)
}

func TestNormalizeStack(t *testing.T) {
	assert.Equal(t, []string{"flask", "python"}, normalizeStack([]string{" Python", "Flask ", "python", ""}))
	assert.Nil(t, normalizeStack(nil))
}
