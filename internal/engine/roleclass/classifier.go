// internal/engine/roleclass/classifier.go
package roleclass

import (
	"sort"
	"strings"

	"career-workers/internal/catalog"
	"career-workers/internal/models"
)

const (
	titleKeywordWeight       = 3
	requiredSkillWeight      = 2
	responsibilityVerbWeight = 1

	// a primary score of 10 maps to full confidence
	confidenceDivisor = 10.0

	maxTitleLineLength = 100
	maxAlternatives    = 2
)

var titleNouns = []string{
	"engineer", "developer", "manager", "analyst", "specialist",
	"coordinator", "director", "lead", "senior", "junior", "associate",
	"consultant", "architect", "designer", "scientist", "researcher",
	"administrator",
}

// Classifier scores resume text against the catalog's role profiles.
type Classifier struct {
	catalog *catalog.Catalog
}

// New creates a classifier over the given reference catalog.
func New(cat *catalog.Catalog) *Classifier {
	return &Classifier{catalog: cat}
}

// Classify picks the best-matching role. Ties go to the earliest declared
// catalog role, so even an all-zero scan still yields the first profile at
// confidence 0 rather than an error.
func (c *Classifier) Classify(text string, skills []models.Skill) models.RoleClassification {
	lowered := strings.ToLower(text)
	titles := titleLines(text)

	scores := make([]int, len(c.catalog.Roles))
	for i := range c.catalog.Roles {
		scores[i] = c.scoreRole(&c.catalog.Roles[i], lowered, titles, skills)
	}

	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}

	confidence := float64(scores[best]) / confidenceDivisor
	if confidence > 1 {
		confidence = 1
	}

	return models.RoleClassification{
		PrimaryRole:      c.catalog.Roles[best].ID,
		Confidence:       confidence,
		AlternativeRoles: c.alternatives(scores, best),
	}
}

func (c *Classifier) scoreRole(role *catalog.RoleProfile, lowered string, titles []string, skills []models.Skill) int {
	score := 0
	for _, kw := range role.TitleKeywords {
		for _, line := range titles {
			if strings.Contains(line, kw) {
				score += titleKeywordWeight
				break
			}
		}
	}
	for _, required := range role.RequiredSkills {
		if overlapsAny(required, skills) {
			score += requiredSkillWeight
		}
	}
	for _, verb := range role.ResponsibilityVerbs {
		if strings.Contains(lowered, verb) {
			score += responsibilityVerbWeight
		}
	}
	return score
}

// overlapsAny matches a required skill against extracted skill names by
// mutual substring containment, so "java" pairs with "javascript" in
// either direction.
func overlapsAny(required string, skills []models.Skill) bool {
	req := strings.ToLower(required)
	for _, s := range skills {
		name := strings.ToLower(s.Name)
		if strings.Contains(name, req) || strings.Contains(req, name) {
			return true
		}
	}
	return false
}

// titleLines returns lower-cased lines short enough to plausibly be a job
// title and containing a title noun.
func titleLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) == 0 || len(trimmed) >= maxTitleLineLength {
			continue
		}
		lowered := strings.ToLower(trimmed)
		for _, noun := range titleNouns {
			if strings.Contains(lowered, noun) {
				out = append(out, lowered)
				break
			}
		}
	}
	return out
}

func (c *Classifier) alternatives(scores []int, best int) []string {
	type scored struct {
		id    string
		score int
	}
	rest := make([]scored, 0, len(scores)-1)
	for i, s := range scores {
		if i == best {
			continue
		}
		rest = append(rest, scored{id: c.catalog.Roles[i].ID, score: s})
	}
	sort.SliceStable(rest, func(a, b int) bool {
		return rest[a].score > rest[b].score
	})

	n := maxAlternatives
	if len(rest) < n {
		n = len(rest)
	}
	out := make([]string, 0, n)
	for _, r := range rest[:n] {
		out = append(out, r.id)
	}
	return out
}
