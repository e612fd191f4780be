// internal/engine/market/estimator.go
package market

import (
	"career-workers/internal/catalog"
	"career-workers/internal/models"
)

const (
	defaultBaseSalary = 60000

	skillCountWeight  = 0.4
	totalYearsWeight  = 0.3
	leadershipWeight  = 0.3
	skillCountCeiling = 15.0
	totalYearsCeiling = 10.0
	leadershipCeiling = 5.0

	experienceRaisePerYear = 0.1
	salaryMinFactor        = 0.8
	salaryMaxFactor        = 1.3

	highDemandSkillThreshold = 3
	minHealthySkillCount     = 10
	specializationThreshold  = 0.7
)

// Estimator derives an illustrative market position from the earlier
// analysis stages. Figures are rule-based heuristics, not live market data.
type Estimator struct {
	catalog *catalog.Catalog
}

// New creates an estimator over the given reference catalog.
func New(cat *catalog.Catalog) *Estimator {
	return &Estimator{catalog: cat}
}

// Estimate computes competitiveness, a salary band, demand level, and
// actionable recommendations for the classified role.
func (e *Estimator) Estimate(classification models.RoleClassification, skills []models.Skill, exp models.ExperienceSummary) models.MarketPosition {
	return models.MarketPosition{
		Competitiveness: competitiveness(len(skills), exp.TotalYears, exp.LeadershipIndicators),
		SalaryRange:     e.salaryRange(classification.PrimaryRole, exp.TotalYears),
		DemandLevel:     e.demandLevel(classification.PrimaryRole, skills),
		Recommendations: e.recommendations(classification, skills, exp),
	}
}

func competitiveness(skillCount, totalYears, leadership int) float64 {
	return skillCountWeight*ratio(skillCount, skillCountCeiling) +
		totalYearsWeight*ratio(totalYears, totalYearsCeiling) +
		leadershipWeight*ratio(leadership, leadershipCeiling)
}

func ratio(n int, ceiling float64) float64 {
	r := float64(n) / ceiling
	if r > 1 {
		return 1
	}
	return r
}

// salaryRange scales the role's base salary by a 10% raise per year of
// experience, then widens it into a band.
func (e *Estimator) salaryRange(roleID string, totalYears int) models.SalaryRange {
	base := defaultBaseSalary
	if role, ok := e.catalog.FindRole(roleID); ok {
		base = role.BaseSalary
	}
	adjusted := float64(base) * (1 + experienceRaisePerYear*float64(totalYears))
	return models.SalaryRange{
		Min:    int(adjusted * salaryMinFactor),
		Max:    int(adjusted * salaryMaxFactor),
		Median: int(adjusted),
	}
}

// demandLevel is high only when the role itself is high-demand and the
// candidate holds at least three high-demand skills; one of the two alone
// yields medium.
func (e *Estimator) demandLevel(roleID string, skills []models.Skill) models.DemandLevel {
	roleHot := false
	if role, ok := e.catalog.FindRole(roleID); ok {
		roleHot = role.HighDemand
	}
	hotSkills := 0
	for _, s := range skills {
		if e.catalog.IsHighDemandSkill(s.Name) {
			hotSkills++
		}
	}

	switch {
	case roleHot && hotSkills >= highDemandSkillThreshold:
		return models.DemandHigh
	case roleHot || hotSkills >= highDemandSkillThreshold:
		return models.DemandMedium
	default:
		return models.DemandLow
	}
}

func (e *Estimator) recommendations(classification models.RoleClassification, skills []models.Skill, exp models.ExperienceSummary) []models.Recommendation {
	var recs []models.Recommendation
	if len(skills) < minHealthySkillCount {
		recs = append(recs, models.Recommendation{
			Type:     "skill-development",
			Priority: models.PriorityHigh,
			Message:  "Broaden your skill set; profiles listing ten or more relevant skills are markedly more competitive.",
		})
	}
	if exp.TotalYears >= 3 && exp.LeadershipIndicators < 2 {
		recs = append(recs, models.Recommendation{
			Type:     "leadership",
			Priority: models.PriorityMedium,
			Message:  "Seek opportunities to lead projects or mentor colleagues; leadership signals are thin for your experience.",
		})
	}
	if classification.Confidence < specializationThreshold {
		recs = append(recs, models.Recommendation{
			Type:     "specialization",
			Priority: models.PriorityMedium,
			Message:  "Sharpen your positioning toward one role; your profile currently reads as generalist.",
		})
	}
	return recs
}
