// internal/engine/skillextract/extractor.go
package skillextract

import (
	"regexp"
	"strconv"
	"strings"

	"career-workers/internal/catalog"
	"career-workers/internal/models"
)

// contextWindow is the number of characters scanned on each side of a skill
// mention for proficiency indicator phrases.
const contextWindow = 40

var yearsPattern = regexp.MustCompile(`(\d{1,2})\+?\s*years?`)

// Extractor detects catalog skills in free-form resume text.
type Extractor struct {
	catalog *catalog.Catalog
}

// New creates an extractor over the given reference catalog.
func New(cat *catalog.Catalog) *Extractor {
	return &Extractor{catalog: cat}
}

// Extract scans the text for every catalog skill and returns the detected
// set in catalog order. Matching is lower-cased substring containment over
// the skill's alias list. Empty input yields an empty result, never an
// error.
func (e *Extractor) Extract(text string) []models.Skill {
	if strings.TrimSpace(text) == "" {
		return []models.Skill{}
	}

	normalized := normalize(text)
	years := maxYearsMentioned(normalized)

	skills := make([]models.Skill, 0)
	for _, def := range e.catalog.Skills {
		idx := firstAliasIndex(normalized, def.Aliases)
		if idx < 0 {
			continue
		}
		skills = append(skills, models.Skill{
			Name:            def.Name,
			Category:        def.Category,
			Proficiency:     e.catalog.ProficiencyFromContext(window(normalized, idx)),
			YearsExperience: years,
		})
	}
	return skills
}

// normalize lower-cases the text and collapses all whitespace runs to a
// single space, padded at both ends so space-delimited aliases match at
// text boundaries.
func normalize(text string) string {
	return " " + strings.Join(strings.Fields(strings.ToLower(text)), " ") + " "
}

func firstAliasIndex(normalized string, aliases []string) int {
	for _, alias := range aliases {
		if idx := strings.Index(normalized, strings.ToLower(alias)); idx >= 0 {
			return idx
		}
	}
	return -1
}

func window(text string, idx int) string {
	start := idx - contextWindow
	if start < 0 {
		start = 0
	}
	end := idx + contextWindow
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

// maxYearsMentioned returns the largest "<N> years" figure anywhere in the
// document. This is a coarse whole-document heuristic, not per-skill
// attribution.
func maxYearsMentioned(text string) int {
	max := 0
	for _, m := range yearsPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max
}
