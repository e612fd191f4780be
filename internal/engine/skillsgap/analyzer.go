// internal/engine/skillsgap/analyzer.go
package skillsgap

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"career-workers/internal/catalog"
	"career-workers/internal/engine/learningpath"
	"career-workers/internal/models"
)

// ErrUnknownRole reports a target role id absent from the catalog. The call
// aborts with no partial analysis.
var ErrUnknownRole = errors.New("unknown target role")

const (
	targetProficiency = 4

	baseImportance          = 5
	coreSkillBonus          = 3
	levelSkillBonus         = 2
	technicalCategoryBonus  = 1
	maxImportance           = 10
	importanceHoursDiscount = 100.0

	highTierSize   = 3
	mediumTierSize = 5

	studyHoursPerWeek     = 10.0
	weeksPerMonth         = 4.0
	milestoneHoursPerWeek = 40.0
)

// Analyzer compares a career assessment against a target role and level,
// producing the quantified gap, a study timeline, milestones, and a
// learning path. Pure apart from the injected catalog; identical inputs
// yield identical output.
type Analyzer struct {
	catalog *catalog.Catalog
	paths   *learningpath.Generator
}

// New creates an analyzer over the given reference catalog.
func New(cat *catalog.Catalog) *Analyzer {
	return &Analyzer{
		catalog: cat,
		paths:   learningpath.New(cat),
	}
}

// Analyze runs the staged gap computation. Any stage failure aborts the
// whole call; there are no partial results.
func (a *Analyzer) Analyze(assessment *models.CareerAssessment, targetRole, targetLevel string) (*models.SkillsGapAnalysis, error) {
	req, resolvedLevel, err := a.resolveTarget(targetRole, targetLevel, assessment.ExperienceLevel)
	if err != nil {
		return nil, err
	}

	missing, improve, strengths := a.computeSkillSets(req, assessment.Skills)
	items := prioritized(missing, improve)
	tiers := partition(items)
	sortDeficits(missing, improve)

	result := &models.SkillsGapAnalysis{
		TargetRole:      targetRole,
		TargetLevel:     resolvedLevel,
		MissingSkills:   missing,
		SkillsToImprove: improve,
		StrengthSkills:  strengths,
		Timeline:        timeline(missing, improve, tiers, items),
		Priority:        tiers,
		Milestones:      milestones(tiers, items),
	}
	result.LearningPath = a.paths.Generate(missing, improve, tiers)
	return result, nil
}

// resolveTarget looks up the role, picks a level when none was given, and
// unions level-specific requirements into the core set.
func (a *Analyzer) resolveTarget(targetRole, targetLevel string, current models.ExperienceLevel) (*models.TargetRequirements, string, error) {
	role, ok := a.catalog.FindRole(targetRole)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownRole, targetRole)
	}

	level := targetLevel
	if level == "" {
		level = catalog.SuggestNextLevel(current)
	}

	req := &models.TargetRequirements{CoreSkills: role.RequiredSkills}
	if lvl, ok := role.Levels[level]; ok {
		req.LevelSkills = lvl.Skills
		req.Responsibilities = lvl.Responsibilities
		salary := lvl.SalaryRange
		req.SalaryRange = &salary
	}
	return req, level, nil
}

// requirement tracks where a required skill came from, which feeds its
// importance score.
type requirement struct {
	name      string
	core      bool
	levelSpec bool
}

func collectRequirements(req *models.TargetRequirements) []requirement {
	var out []requirement
	index := map[string]int{}
	add := func(name string, core, levelSpec bool) {
		key := strings.ToLower(name)
		if i, ok := index[key]; ok {
			out[i].core = out[i].core || core
			out[i].levelSpec = out[i].levelSpec || levelSpec
			return
		}
		index[key] = len(out)
		out = append(out, requirement{name: name, core: core, levelSpec: levelSpec})
	}
	for _, s := range req.CoreSkills {
		add(s, true, false)
	}
	for _, s := range req.LevelSkills {
		add(s, false, true)
	}
	return out
}

func (a *Analyzer) computeSkillSets(req *models.TargetRequirements, current []models.Skill) ([]models.MissingSkill, []models.SkillImprovement, []models.Skill) {
	required := collectRequirements(req)

	missing := make([]models.MissingSkill, 0)
	for _, r := range required {
		if overlapsAnySkill(r.name, current) {
			continue
		}
		missing = append(missing, models.MissingSkill{
			Name:           r.name,
			Importance:     importance(r, a.catalog.CategoryOf(r.name)),
			Category:       a.catalog.CategoryOf(r.name),
			EstimatedHours: a.catalog.HoursFor(r.name, models.ModuleBeginner),
		})
	}

	improve := make([]models.SkillImprovement, 0)
	strengths := make([]models.Skill, 0)
	for _, s := range current {
		if !overlapsAnyRequirement(s.Name, required) {
			continue
		}
		if s.Proficiency >= targetProficiency {
			strengths = append(strengths, s)
			continue
		}
		improve = append(improve, models.SkillImprovement{
			Skill:             s,
			TargetProficiency: targetProficiency,
			ImprovementNeeded: targetProficiency - s.Proficiency,
			EstimatedHours:    a.catalog.HoursFor(s.Name, models.ModuleIntermediate),
		})
	}
	return missing, improve, strengths
}

func importance(r requirement, category models.SkillCategory) int {
	score := baseImportance
	if r.core {
		score += coreSkillBonus
	}
	if r.levelSpec {
		score += levelSkillBonus
	}
	if category == models.CategoryTechnical {
		score += technicalCategoryBonus
	}
	if score > maxImportance {
		score = maxImportance
	}
	return score
}

func overlapsAnySkill(required string, skills []models.Skill) bool {
	req := strings.ToLower(required)
	for _, s := range skills {
		if mutualContains(req, strings.ToLower(s.Name)) {
			return true
		}
	}
	return false
}

func overlapsAnyRequirement(skill string, required []requirement) bool {
	name := strings.ToLower(skill)
	for _, r := range required {
		if mutualContains(name, strings.ToLower(r.name)) {
			return true
		}
	}
	return false
}

func mutualContains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// deficit is one entry of the combined missing+improve ranking.
type deficit struct {
	name       string
	importance int
	hours      int
}

func (d deficit) score() float64 {
	return float64(d.importance) - float64(d.hours)/importanceHoursDiscount
}

// improveImportance ranks an improvement by its base weight plus how far
// below target the skill sits, on the same 0-10 scale as missing skills.
func improveImportance(s models.SkillImprovement) int {
	score := baseImportance + s.ImprovementNeeded
	if score > maxImportance {
		score = maxImportance
	}
	return score
}

func prioritized(missing []models.MissingSkill, improve []models.SkillImprovement) []deficit {
	items := make([]deficit, 0, len(missing)+len(improve))
	for _, m := range missing {
		items = append(items, deficit{name: m.Name, importance: m.Importance, hours: m.EstimatedHours})
	}
	for _, s := range improve {
		items = append(items, deficit{name: s.Name, importance: improveImportance(s), hours: s.EstimatedHours})
	}
	sort.SliceStable(items, func(a, b int) bool {
		return items[a].score() > items[b].score()
	})
	return items
}

func partition(items []deficit) models.PriorityTiers {
	tiers := models.PriorityTiers{High: []string{}, Medium: []string{}, Low: []string{}}
	for i, item := range items {
		switch {
		case i < highTierSize:
			tiers.High = append(tiers.High, item.name)
		case i < highTierSize+mediumTierSize:
			tiers.Medium = append(tiers.Medium, item.name)
		default:
			tiers.Low = append(tiers.Low, item.name)
		}
	}
	return tiers
}

// sortDeficits reorders the stored missing and improve slices to match the
// combined priority ranking, so downstream consumers and the learning path
// see the same order.
func sortDeficits(missing []models.MissingSkill, improve []models.SkillImprovement) {
	sort.SliceStable(missing, func(a, b int) bool {
		da := deficit{missing[a].Name, missing[a].Importance, missing[a].EstimatedHours}
		db := deficit{missing[b].Name, missing[b].Importance, missing[b].EstimatedHours}
		return da.score() > db.score()
	})
	sort.SliceStable(improve, func(a, b int) bool {
		da := deficit{improve[a].Name, improveImportance(improve[a]), improve[a].EstimatedHours}
		db := deficit{improve[b].Name, improveImportance(improve[b]), improve[b].EstimatedHours}
		return da.score() > db.score()
	})
}

// timeline assumes 10 study-hours per week and 4 weeks per month.
func timeline(missing []models.MissingSkill, improve []models.SkillImprovement, tiers models.PriorityTiers, items []deficit) models.Timeline {
	total := 0
	for _, m := range missing {
		total += m.EstimatedHours
	}
	for _, s := range improve {
		total += s.EstimatedHours
	}

	weeks := int(math.Ceil(float64(total) / studyHoursPerWeek))
	return models.Timeline{
		TotalHours: total,
		Weeks:      weeks,
		Months:     int(math.Ceil(float64(weeks) / weeksPerMonth)),
		Phases:     phases(tiers, items),
	}
}

func phases(tiers models.PriorityTiers, items []deficit) []models.TimelinePhase {
	hoursByName := make(map[string]int, len(items))
	for _, item := range items {
		hoursByName[item.name] = item.hours
	}

	var out []models.TimelinePhase
	for _, tier := range []struct {
		name   string
		skills []string
	}{
		{name: "Foundation", skills: tiers.High},
		{name: "Intermediate", skills: tiers.Medium},
		{name: "Advanced", skills: tiers.Low},
	} {
		if len(tier.skills) == 0 {
			continue
		}
		hours := 0
		for _, s := range tier.skills {
			hours += hoursByName[s]
		}
		out = append(out, models.TimelinePhase{
			Name:   tier.name,
			Skills: tier.skills,
			Hours:  hours,
			Weeks:  int(math.Ceil(float64(hours) / studyHoursPerWeek)),
		})
	}
	return out
}

// milestones builds one milestone per non-empty priority tier. Milestone
// estimates assume 40 hours per week, not the timeline's 10.
func milestones(tiers models.PriorityTiers, items []deficit) []models.Milestone {
	hoursByName := make(map[string]int, len(items))
	for _, item := range items {
		hoursByName[item.name] = item.hours
	}

	var out []models.Milestone
	for _, tier := range []struct {
		title       string
		description string
		skills      []string
	}{
		{title: "Foundation Skills", description: "Close the highest-priority gaps blocking the target role", skills: tiers.High},
		{title: "Intermediate Development", description: "Round out the supporting skill set", skills: tiers.Medium},
		{title: "Advanced Mastery", description: "Polish remaining skills to a competitive level", skills: tiers.Low},
	} {
		if len(tier.skills) == 0 {
			continue
		}
		hours := 0
		for _, s := range tier.skills {
			hours += hoursByName[s]
		}
		out = append(out, models.Milestone{
			ID:                 len(out) + 1,
			Title:              tier.title,
			Description:        tier.description,
			Skills:             tier.skills,
			EstimatedWeeks:     int(math.Ceil(float64(hours) / milestoneHoursPerWeek)),
			CompletionCriteria: fmt.Sprintf("Demonstrate working proficiency in %s", strings.Join(tier.skills, ", ")),
		})
	}
	return out
}
