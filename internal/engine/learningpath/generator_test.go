// internal/engine/learningpath/generator_test.go
package learningpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/catalog"
	"career-workers/internal/models"
)

func missingSkills(names ...string) []models.MissingSkill {
	out := make([]models.MissingSkill, 0, len(names))
	for _, n := range names {
		out = append(out, models.MissingSkill{Name: n, Importance: 7, EstimatedHours: 40})
	}
	return out
}

func TestGenerate_Caps(t *testing.T) {
	gen := New(catalog.Default())

	missing := missingSkills("a", "b", "c", "d", "e", "f", "g")
	improve := []models.SkillImprovement{
		{Skill: models.Skill{Name: "h", Proficiency: 2}, TargetProficiency: 4, ImprovementNeeded: 2, EstimatedHours: 60},
		{Skill: models.Skill{Name: "i", Proficiency: 3}, TargetProficiency: 4, ImprovementNeeded: 1, EstimatedHours: 60},
		{Skill: models.Skill{Name: "j", Proficiency: 3}, TargetProficiency: 4, ImprovementNeeded: 1, EstimatedHours: 60},
		{Skill: models.Skill{Name: "k", Proficiency: 3}, TargetProficiency: 4, ImprovementNeeded: 1, EstimatedHours: 60},
	}

	modules := gen.Generate(missing, improve, models.PriorityTiers{})

	require.Len(t, modules, 8)
	for _, m := range modules[:5] {
		assert.Equal(t, models.ModuleBeginner, m.Level)
	}
	for _, m := range modules[5:] {
		assert.Equal(t, models.ModuleIntermediate, m.Level)
	}
	assert.Equal(t, "a", modules[0].SkillName)
	assert.Equal(t, "h", modules[5].SkillName)
}

func TestGenerate_ResourceFallbackChain(t *testing.T) {
	gen := New(catalog.Default())

	t.Run("exact level match", func(t *testing.T) {
		modules := gen.Generate(nil, []models.SkillImprovement{
			{Skill: models.Skill{Name: "python", Proficiency: 3}, EstimatedHours: 60},
		}, models.PriorityTiers{})
		require.Len(t, modules, 1)
		assert.Equal(t, "Intermediate Python", modules[0].Resources[0].Title)
	})

	t.Run("falls back to beginner resources", func(t *testing.T) {
		modules := gen.Generate(nil, []models.SkillImprovement{
			{Skill: models.Skill{Name: "javascript", Proficiency: 3}, EstimatedHours: 60},
		}, models.PriorityTiers{})
		require.Len(t, modules, 1)
		assert.Equal(t, "JavaScript Fundamentals", modules[0].Resources[0].Title)
	})

	t.Run("placeholders for uncatalogued skill", func(t *testing.T) {
		modules := gen.Generate(missingSkills("quantum annealing"), nil, models.PriorityTiers{})
		require.Len(t, modules, 1)
		require.Len(t, modules[0].Resources, 3)
		assert.Equal(t, "course", modules[0].Resources[0].Type)
		assert.Equal(t, "Introduction to quantum annealing", modules[0].Resources[0].Title)
		assert.Equal(t, "documentation", modules[0].Resources[1].Type)
		assert.Equal(t, "practice", modules[0].Resources[2].Type)
	})
}

func TestGenerate_SubMilestonesAndAssessments(t *testing.T) {
	gen := New(catalog.Default())

	t.Run("beginner module has three sub-milestones", func(t *testing.T) {
		modules := gen.Generate(missingSkills("docker"), nil, models.PriorityTiers{})
		require.Len(t, modules, 1)
		require.Len(t, modules[0].Milestones, 3)
		assert.Equal(t, "Understand fundamentals", modules[0].Milestones[0].Title)
		assert.Equal(t, "Build project", modules[0].Milestones[2].Title)
	})

	t.Run("intermediate module adds advanced techniques", func(t *testing.T) {
		modules := gen.Generate(nil, []models.SkillImprovement{
			{Skill: models.Skill{Name: "sql", Proficiency: 3}, EstimatedHours: 60},
		}, models.PriorityTiers{})
		require.Len(t, modules, 1)
		require.Len(t, modules[0].Milestones, 4)
		assert.Equal(t, "Advanced techniques", modules[0].Milestones[3].Title)
	})

	t.Run("two assessments per module", func(t *testing.T) {
		modules := gen.Generate(missingSkills("go"), nil, models.PriorityTiers{})
		require.Len(t, modules, 1)
		require.Len(t, modules[0].Assessments, 2)
		assert.Equal(t, "quiz", modules[0].Assessments[0].Type)
		assert.Equal(t, "project", modules[0].Assessments[1].Type)
	})
}

func TestGenerate_PriorityFromTiers(t *testing.T) {
	gen := New(catalog.Default())

	tiers := models.PriorityTiers{
		High:   []string{"kubernetes"},
		Medium: []string{"terraform"},
	}
	modules := gen.Generate(missingSkills("kubernetes", "terraform", "jira"), nil, tiers)

	require.Len(t, modules, 3)
	assert.Equal(t, models.PriorityHigh, modules[0].Priority)
	assert.Equal(t, models.PriorityMedium, modules[1].Priority)
	assert.Equal(t, models.PriorityLow, modules[2].Priority)
}

func TestGenerate_EmptyInputs(t *testing.T) {
	gen := New(catalog.Default())
	assert.Empty(t, gen.Generate(nil, nil, models.PriorityTiers{}))
}
