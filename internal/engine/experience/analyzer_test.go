// internal/engine/experience/analyzer_test.go
package experience

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(year int) func() time.Time {
	return func() time.Time {
		return time.Date(year, time.June, 15, 0, 0, 0, 0, time.UTC)
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	analyzer := New()

	summary := analyzer.Analyze("")
	assert.Equal(t, 0, summary.TotalYears)
	assert.Equal(t, 0, summary.LeadershipIndicators)
	assert.Empty(t, summary.SeniorityKeywords)
	assert.Empty(t, summary.Responsibilities)
	assert.Empty(t, summary.Achievements)
	assert.Empty(t, summary.Companies)
}

func TestAnalyze_TotalYears(t *testing.T) {
	analyzer := &Analyzer{Now: fixedClock(2025)}

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{name: "single closed range", text: "Acme Corp 2018 - 2022", expected: 4},
		{name: "present resolves to current year", text: "2022 - present", expected: 3},
		{name: "current token", text: "2020 - Current", expected: 5},
		{name: "multiple ranges sum", text: "2018 - 2022 and 2022 - present", expected: 7},
		{name: "overlapping ranges double-count", text: "2018 - 2022 plus 2019 - 2021", expected: 6},
		{name: "inverted range contributes zero", text: "2022 - 2018", expected: 0},
		{name: "en dash separator", text: "2019 – 2023", expected: 4},
		{name: "no ranges", text: "ten years of experience", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, analyzer.Analyze(tt.text).TotalYears)
		})
	}
}

func TestAnalyze_LeadershipIndicators(t *testing.T) {
	analyzer := New()

	summary := analyzer.Analyze("Led a team of five. Mentored juniors and coordinated releases.")
	assert.Equal(t, 3, summary.LeadershipIndicators)

	// word boundary: "misled" and "derailed" must not count
	summary = analyzer.Analyze("misled nobody, derailed nothing")
	assert.Equal(t, 0, summary.LeadershipIndicators)
}

func TestAnalyze_SeniorityKeywords(t *testing.T) {
	analyzer := New()

	summary := analyzer.Analyze("Senior Engineer, previously Staff Architect")
	assert.Contains(t, summary.SeniorityKeywords, "senior")
	assert.Contains(t, summary.SeniorityKeywords, "staff")
	assert.Contains(t, summary.SeniorityKeywords, "architect")
	assert.NotContains(t, summary.SeniorityKeywords, "chief")
}

func TestAnalyze_ResponsibilitiesAndAchievements(t *testing.T) {
	analyzer := New()

	text := `Acme Corp
• Developed the billing pipeline from scratch
- Reduced deploy time by 40 percent
* Attended standups
- short
Regular paragraph line that is not a bullet.`

	summary := analyzer.Analyze(text)

	assert.Equal(t, []string{
		"Developed the billing pipeline from scratch",
		"Reduced deploy time by 40 percent",
		"Attended standups",
	}, summary.Responsibilities)

	// achievements are the subset containing achievement verbs
	assert.Equal(t, []string{
		"Developed the billing pipeline from scratch",
		"Reduced deploy time by 40 percent",
	}, summary.Achievements)
}

func TestAnalyze_Companies(t *testing.T) {
	analyzer := New()

	text := `Acme Corp
• Built internal tooling
lowercase line
Globex Industries
A line that is far too long to plausibly be a company name so it is skipped entirely
Skills:`

	summary := analyzer.Analyze(text)
	assert.Equal(t, []string{"Acme Corp", "Globex Industries"}, summary.Companies)
}

func TestAnalyze_CompaniesCap(t *testing.T) {
	analyzer := New()

	text := ""
	for i := 0; i < 15; i++ {
		text += "Company Line\n"
	}
	summary := analyzer.Analyze(text)
	assert.Len(t, summary.Companies, 10)
}

func TestAnalyze_Deterministic(t *testing.T) {
	analyzer := &Analyzer{Now: fixedClock(2025)}
	text := "Senior Engineer 2018 - present\n• Led migration to kubernetes cluster"

	assert.Equal(t, analyzer.Analyze(text), analyzer.Analyze(text))
}
