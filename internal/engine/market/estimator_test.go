// internal/engine/market/estimator_test.go
package market

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"career-workers/internal/catalog"
	"career-workers/internal/models"
)

func skillNames(names ...string) []models.Skill {
	skills := make([]models.Skill, 0, len(names))
	for _, n := range names {
		skills = append(skills, models.Skill{Name: n, Proficiency: 3})
	}
	return skills
}

func TestEstimate_Competitiveness(t *testing.T) {
	estimator := New(catalog.Default())

	tests := []struct {
		name       string
		skillCount int
		years      int
		leadership int
		expected   float64
	}{
		{name: "zero everything", skillCount: 0, years: 0, leadership: 0, expected: 0},
		// 0.4*(15/15) + 0.3*(10/10) + 0.3*(5/5) = 1.0
		{name: "all ceilings", skillCount: 15, years: 10, leadership: 5, expected: 1.0},
		// ceilings clamp: 30 skills scores the same as 15
		{name: "above ceilings clamps", skillCount: 30, years: 20, leadership: 9, expected: 1.0},
		// 0.4*(6/15) + 0.3*(5/10) + 0.3*(1/5) = 0.16 + 0.15 + 0.06 = 0.37
		{name: "mid profile", skillCount: 6, years: 5, leadership: 1, expected: 0.37},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			skills := make([]models.Skill, tt.skillCount)
			pos := estimator.Estimate(
				models.RoleClassification{PrimaryRole: "software-engineer", Confidence: 0.9},
				skills,
				models.ExperienceSummary{TotalYears: tt.years, LeadershipIndicators: tt.leadership},
			)
			assert.InDelta(t, tt.expected, pos.Competitiveness, 1e-9)
		})
	}
}

func TestEstimate_SalaryRange(t *testing.T) {
	estimator := New(catalog.Default())

	t.Run("known role scales with experience", func(t *testing.T) {
		pos := estimator.Estimate(
			models.RoleClassification{PrimaryRole: "software-engineer", Confidence: 0.9},
			skillNames("go"),
			models.ExperienceSummary{TotalYears: 5},
		)
		// base 95000 * 1.5 = 142500
		assert.Equal(t, 142500, pos.SalaryRange.Median)
		assert.Equal(t, 114000, pos.SalaryRange.Min)
		assert.Equal(t, 185250, pos.SalaryRange.Max)
	})

	t.Run("unknown role uses default base", func(t *testing.T) {
		pos := estimator.Estimate(
			models.RoleClassification{PrimaryRole: "astronaut", Confidence: 0.9},
			nil,
			models.ExperienceSummary{},
		)
		assert.Equal(t, 60000, pos.SalaryRange.Median)
		assert.Equal(t, 48000, pos.SalaryRange.Min)
		assert.Equal(t, 78000, pos.SalaryRange.Max)
	})
}

func TestEstimate_DemandLevel(t *testing.T) {
	estimator := New(catalog.Default())

	tests := []struct {
		name     string
		role     string
		skills   []models.Skill
		expected models.DemandLevel
	}{
		{
			name:     "hot role and three hot skills",
			role:     "devops-engineer",
			skills:   skillNames("kubernetes", "docker", "terraform", "jira"),
			expected: models.DemandHigh,
		},
		{
			name:     "hot role alone",
			role:     "devops-engineer",
			skills:   skillNames("jenkins", "jira"),
			expected: models.DemandMedium,
		},
		{
			name:     "hot skills alone",
			role:     "qa-engineer",
			skills:   skillNames("python", "sql", "docker"),
			expected: models.DemandMedium,
		},
		{
			name:     "neither",
			role:     "qa-engineer",
			skills:   skillNames("jira", "postman"),
			expected: models.DemandLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := estimator.Estimate(
				models.RoleClassification{PrimaryRole: tt.role, Confidence: 0.9},
				tt.skills,
				models.ExperienceSummary{},
			)
			assert.Equal(t, tt.expected, pos.DemandLevel)
		})
	}
}

func TestEstimate_Recommendations(t *testing.T) {
	estimator := New(catalog.Default())

	t.Run("sparse profile gets all three", func(t *testing.T) {
		pos := estimator.Estimate(
			models.RoleClassification{PrimaryRole: "software-engineer", Confidence: 0.4},
			skillNames("go", "sql"),
			models.ExperienceSummary{TotalYears: 6, LeadershipIndicators: 0},
		)
		types := make([]string, 0, len(pos.Recommendations))
		for _, r := range pos.Recommendations {
			types = append(types, r.Type)
		}
		assert.Equal(t, []string{"skill-development", "leadership", "specialization"}, types)
		assert.Equal(t, models.PriorityHigh, pos.Recommendations[0].Priority)
		assert.Equal(t, models.PriorityMedium, pos.Recommendations[1].Priority)
	})

	t.Run("strong profile gets none", func(t *testing.T) {
		pos := estimator.Estimate(
			models.RoleClassification{PrimaryRole: "software-engineer", Confidence: 0.9},
			make([]models.Skill, 12),
			models.ExperienceSummary{TotalYears: 8, LeadershipIndicators: 4},
		)
		assert.Empty(t, pos.Recommendations)
	})

	t.Run("short tenure skips leadership nudge", func(t *testing.T) {
		pos := estimator.Estimate(
			models.RoleClassification{PrimaryRole: "software-engineer", Confidence: 0.9},
			make([]models.Skill, 12),
			models.ExperienceSummary{TotalYears: 2, LeadershipIndicators: 0},
		)
		assert.Empty(t, pos.Recommendations)
	})
}
