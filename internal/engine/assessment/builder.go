// internal/engine/assessment/builder.go
package assessment

import (
	"errors"
	"sort"
	"strings"

	"career-workers/internal/catalog"
	"career-workers/internal/engine/experience"
	"career-workers/internal/engine/market"
	"career-workers/internal/engine/roleclass"
	"career-workers/internal/engine/skillextract"
	"career-workers/internal/models"
)

// ErrInsufficientInput reports resume text that is entirely absent. Unusual
// but non-empty text degrades to a low-confidence assessment instead.
var ErrInsufficientInput = errors.New("insufficient input: resume text is empty")

const (
	maxStrengths = 5

	classificationWeight = 0.5
	skillCountWeight     = 0.3
	yearsWeight          = 0.2
	skillCountCeiling    = 10.0
	yearsCeiling         = 10.0
)

// Builder runs the full analysis chain over raw resume text and composes
// one immutable CareerAssessment.
type Builder struct {
	extractor  *skillextract.Extractor
	analyzer   *experience.Analyzer
	classifier *roleclass.Classifier
	estimator  *market.Estimator
}

// New wires the analysis stages over a shared reference catalog.
func New(cat *catalog.Catalog) *Builder {
	return &Builder{
		extractor:  skillextract.New(cat),
		analyzer:   experience.New(),
		classifier: roleclass.New(cat),
		estimator:  market.New(cat),
	}
}

// NewWithAnalyzer is New with an explicit experience analyzer, so tests can
// pin the clock used for open-ended date ranges.
func NewWithAnalyzer(cat *catalog.Catalog, analyzer *experience.Analyzer) *Builder {
	b := New(cat)
	b.analyzer = analyzer
	return b
}

// Build analyzes the resume text end to end.
func (b *Builder) Build(text string) (*models.CareerAssessment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrInsufficientInput
	}

	skills := b.extractor.Extract(text)
	exp := b.analyzer.Analyze(text)
	classification := b.classifier.Classify(text, skills)
	position := b.estimator.Estimate(classification, skills, exp)

	return &models.CareerAssessment{
		CurrentRole:     classification.PrimaryRole,
		ExperienceLevel: experienceLevel(exp),
		Skills:          skills,
		Strengths:       strengths(skills),
		Experience:      exp,
		Classification:  classification,
		MarketPosition:  position,
		Confidence:      confidence(classification, skills, exp),
	}, nil
}

// experienceLevel buckets the summary into the five-step ladder. Leadership
// signals and seniority keywords can lift a thin work history to mid.
func experienceLevel(exp models.ExperienceSummary) models.ExperienceLevel {
	hasKeyword := func(kws ...string) bool {
		for _, kw := range kws {
			for _, found := range exp.SeniorityKeywords {
				if found == kw {
					return true
				}
			}
		}
		return false
	}

	switch {
	case exp.TotalYears >= 12 && hasKeyword("chief", "vp", "vice president", "director"):
		return models.LevelExecutive
	case exp.TotalYears >= 8 && (exp.LeadershipIndicators >= 3 || hasKeyword("lead", "principal", "staff", "head of")):
		return models.LevelLead
	case exp.TotalYears >= 5 || (exp.TotalYears >= 3 && hasKeyword("senior")):
		return models.LevelSenior
	case exp.TotalYears >= 2 || exp.LeadershipIndicators >= 1 || len(exp.SeniorityKeywords) > 0:
		return models.LevelMid
	default:
		return models.LevelEntry
	}
}

// strengths picks up to five skill names, strongest proficiency first.
func strengths(skills []models.Skill) []string {
	ranked := make([]models.Skill, len(skills))
	copy(ranked, skills)
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Proficiency > ranked[b].Proficiency
	})

	out := make([]string, 0, maxStrengths)
	for _, s := range ranked {
		if s.Proficiency < 4 {
			break
		}
		out = append(out, s.Name)
		if len(out) == maxStrengths {
			break
		}
	}
	return out
}

func confidence(classification models.RoleClassification, skills []models.Skill, exp models.ExperienceSummary) float64 {
	return classificationWeight*classification.Confidence +
		skillCountWeight*ratio(len(skills), skillCountCeiling) +
		yearsWeight*ratio(exp.TotalYears, yearsCeiling)
}

func ratio(n int, ceiling float64) float64 {
	r := float64(n) / ceiling
	if r > 1 {
		return 1
	}
	return r
}
