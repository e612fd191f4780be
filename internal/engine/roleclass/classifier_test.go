// internal/engine/roleclass/classifier_test.go
package roleclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

func TestClassify_EmptyTextFallsBackToFirstRole(t *testing.T) {
	cat := catalog.Default()
	classifier := New(cat)

	result := classifier.Classify("", nil)

	// all-zero tie resolves to the first declared catalog role
	assert.Equal(t, cat.Roles[0].ID, result.PrimaryRole)
	assert.Equal(t, 0.0, result.Confidence)
	assert.Len(t, result.AlternativeRoles, 2)
}

func TestClassify_TitleKeywordDominates(t *testing.T) {
	classifier := New(catalog.Default())

	text := "Jane Doe\nSenior Frontend Developer\nBuilt dashboards."
	result := classifier.Classify(text, skillNames("javascript", "react", "css"))

	assert.Equal(t, "frontend-developer", result.PrimaryRole)
	assert.Greater(t, result.Confidence, 0.5)
}

func TestClassify_DataScientist(t *testing.T) {
	classifier := New(catalog.Default())

	text := `Data Scientist
Trained and evaluated models; analyzed customer churn.`
	result := classifier.Classify(text, skillNames("python", "machine learning", "statistics", "sql"))

	assert.Equal(t, "data-scientist", result.PrimaryRole)
}

func TestClassify_ConfidenceClamped(t *testing.T) {
	classifier := New(catalog.Default())

	// heavy match across title, skills, and verbs pushes the raw score
	// well past the divisor; confidence must clamp at 1
	text := `Senior Software Engineer
Software Developer and Programmer
Developed, implemented, designed, built, debugged, deployed and maintained systems.`
	result := classifier.Classify(text, skillNames(
		"programming", "data structures", "algorithms", "git", "testing", "sql", "system design"))

	assert.Equal(t, "software-engineer", result.PrimaryRole)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestClassify_LongLinesAreNotTitles(t *testing.T) {
	classifier := New(catalog.Default())

	long := "I once worked alongside a frontend developer at a large company where we shipped many projects together over several years"
	require.GreaterOrEqual(t, len(long), 100)

	result := classifier.Classify(long, nil)
	// no title line, no skills, only verb matches can score
	assert.NotEqual(t, "frontend-developer", result.PrimaryRole)
}

func TestClassify_MutualSubstringSkillMatch(t *testing.T) {
	classifier := New(catalog.Default())

	// the extracted "test automation" satisfies the qa profile's identically
	// named requirement while jira and sql match exactly
	text := "QA Engineer\nValidated releases."
	result := classifier.Classify(text, skillNames("test automation", "jira", "sql"))

	assert.Equal(t, "qa-engineer", result.PrimaryRole)
}

func TestClassify_AlternativesSortedByScore(t *testing.T) {
	classifier := New(catalog.Default())

	text := "Full Stack Developer\nBuilt and shipped features."
	result := classifier.Classify(text, skillNames("javascript", "react", "node.js", "sql"))

	assert.Equal(t, "fullstack-developer", result.PrimaryRole)
	assert.Len(t, result.AlternativeRoles, 2)
	assert.NotContains(t, result.AlternativeRoles, "fullstack-developer")
}

func TestClassify_Deterministic(t *testing.T) {
	classifier := New(catalog.Default())
	text := "Backend Developer\nDesigned and scaled APIs."
	skills := skillNames("sql", "rest apis", "docker")

	assert.Equal(t, classifier.Classify(text, skills), classifier.Classify(text, skills))
}
