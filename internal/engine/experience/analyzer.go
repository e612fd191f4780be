// internal/engine/experience/analyzer.go
package experience

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"career-workers/internal/models"
)

// minResponsibilityLength filters out bullet fragments like "- n/a".
const minResponsibilityLength = 10

// maxCompanies caps the best-effort company extraction.
const maxCompanies = 10

var (
	dateRangePattern = regexp.MustCompile(`(?i)(\d{4})\s*[-–—]\s*(\d{4}|present|current)`)

	leadershipPattern = regexp.MustCompile(`(?i)\b(led|managed|supervised|directed|coordinated|mentored|trained|guided|oversaw|headed)\b`)

	seniorityKeywords = []string{
		"senior", "lead", "principal", "staff", "head of", "chief",
		"director", "vp", "vice president", "manager", "architect",
	}

	achievementVerbs = []string{
		"achieved", "improved", "increased", "reduced", "optimized",
		"delivered", "implemented", "launched", "created", "developed",
	}
)

// Analyzer turns raw resume text into a structured experience summary.
// Now is injectable so "present" date ranges resolve deterministically in
// tests; it defaults to time.Now.
type Analyzer struct {
	Now func() time.Time
}

// New creates an analyzer using the wall clock.
func New() *Analyzer {
	return &Analyzer{Now: time.Now}
}

// Analyze extracts total years, leadership signals, seniority keywords,
// responsibility and achievement bullets, and a best-effort company list.
// Malformed text degrades to empty fields rather than erroring.
func (a *Analyzer) Analyze(text string) models.ExperienceSummary {
	lowered := strings.ToLower(text)
	bullets := responsibilities(text)

	return models.ExperienceSummary{
		TotalYears:           a.totalYears(text),
		LeadershipIndicators: len(leadershipPattern.FindAllString(text, -1)),
		SeniorityKeywords:    matchedKeywords(lowered),
		Responsibilities:     bullets,
		Achievements:         achievements(bullets),
		Companies:            companies(text),
	}
}

// totalYears sums max(0, end-start) over every date range found. Ranges
// ending in "present" or "current" use the current calendar year.
// Overlapping ranges are double-counted on purpose; the summary measures
// listed engagements, not calendar coverage.
func (a *Analyzer) totalYears(text string) int {
	now := a.Now
	if now == nil {
		now = time.Now
	}
	currentYear := now().Year()

	total := 0
	for _, m := range dateRangePattern.FindAllStringSubmatch(text, -1) {
		start, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		end := currentYear
		if token := strings.ToLower(m[2]); token != "present" && token != "current" {
			end, err = strconv.Atoi(token)
			if err != nil {
				continue
			}
		}
		if years := end - start; years > 0 {
			total += years
		}
	}
	return total
}

func matchedKeywords(lowered string) []string {
	var found []string
	for _, kw := range seniorityKeywords {
		if strings.Contains(lowered, kw) {
			found = append(found, kw)
		}
	}
	return found
}

func responsibilities(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		stripped, ok := stripBullet(trimmed)
		if !ok {
			continue
		}
		if len(stripped) > minResponsibilityLength {
			out = append(out, stripped)
		}
	}
	return out
}

func stripBullet(line string) (string, bool) {
	for _, marker := range []string{"•", "-", "*"} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(strings.TrimPrefix(line, marker)), true
		}
	}
	return "", false
}

func achievements(responsibilities []string) []string {
	var out []string
	for _, r := range responsibilities {
		lowered := strings.ToLower(r)
		for _, verb := range achievementVerbs {
			if strings.Contains(lowered, verb) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}

// companies collects short capitalized non-bullet lines. Heuristic and
// non-authoritative; consumers must treat it as a hint.
func companies(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) > 40 {
			continue
		}
		if _, isBullet := stripBullet(trimmed); isBullet {
			continue
		}
		runes := []rune(trimmed)
		if !unicode.IsUpper(runes[0]) {
			continue
		}
		if strings.HasSuffix(trimmed, ":") {
			continue
		}
		out = append(out, trimmed)
		if len(out) == maxCompanies {
			break
		}
	}
	return out
}
