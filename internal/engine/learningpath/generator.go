// internal/engine/learningpath/generator.go
package learningpath

import (
	"fmt"

	"career-workers/internal/catalog"
	"career-workers/internal/models"
)

const (
	maxMissingModules = 5
	maxImproveModules = 3
	maxResources      = 5
)

// Generator maps prioritized skill deficits to per-skill learning modules.
type Generator struct {
	catalog *catalog.Catalog
}

// New creates a generator over the given reference catalog.
func New(cat *catalog.Catalog) *Generator {
	return &Generator{catalog: cat}
}

// Generate builds beginner modules for up to five missing skills and
// intermediate modules for up to three skills to improve, preserving the
// priority order of its inputs.
func (g *Generator) Generate(missing []models.MissingSkill, improve []models.SkillImprovement, tiers models.PriorityTiers) []models.LearningModule {
	modules := make([]models.LearningModule, 0, maxMissingModules+maxImproveModules)

	for i, m := range missing {
		if i == maxMissingModules {
			break
		}
		modules = append(modules, g.module(m.Name, models.ModuleBeginner, m.EstimatedHours, tiers))
	}
	for i, s := range improve {
		if i == maxImproveModules {
			break
		}
		modules = append(modules, g.module(s.Name, models.ModuleIntermediate, s.EstimatedHours, tiers))
	}
	return modules
}

func (g *Generator) module(skill string, level models.ModuleLevel, hours int, tiers models.PriorityTiers) models.LearningModule {
	return models.LearningModule{
		SkillName:      skill,
		Level:          level,
		EstimatedHours: hours,
		Priority:       tierOf(skill, tiers),
		Resources:      g.resources(skill, level),
		Milestones:     subMilestones(skill, level),
		Assessments:    assessments(skill),
	}
}

func tierOf(skill string, tiers models.PriorityTiers) models.RecommendationPriority {
	for _, s := range tiers.High {
		if s == skill {
			return models.PriorityHigh
		}
	}
	for _, s := range tiers.Medium {
		if s == skill {
			return models.PriorityMedium
		}
	}
	return models.PriorityLow
}

// resources prefers a curated set at the requested level, then the curated
// beginner set, then generated placeholders. Never more than five entries.
func (g *Generator) resources(skill string, level models.ModuleLevel) []models.LearningResource {
	found, ok := g.catalog.FindResources(skill, level)
	if !ok && level != models.ModuleBeginner {
		found, ok = g.catalog.FindResources(skill, models.ModuleBeginner)
	}
	if !ok {
		found = placeholderResources(skill)
	}
	if len(found) > maxResources {
		found = found[:maxResources]
	}
	return found
}

func placeholderResources(skill string) []models.LearningResource {
	return []models.LearningResource{
		{Type: "course", Title: fmt.Sprintf("Introduction to %s", skill)},
		{Type: "documentation", Title: fmt.Sprintf("Official %s documentation", skill)},
		{Type: "practice", Title: fmt.Sprintf("Hands-on %s exercises", skill)},
	}
}

func subMilestones(skill string, level models.ModuleLevel) []models.ModuleMilestone {
	milestones := []models.ModuleMilestone{
		{Title: "Understand fundamentals", Description: fmt.Sprintf("Learn the core concepts of %s", skill)},
		{Title: "Practice basics", Description: fmt.Sprintf("Complete guided exercises in %s", skill)},
		{Title: "Build project", Description: fmt.Sprintf("Apply %s in a small self-directed project", skill)},
	}
	if level != models.ModuleBeginner {
		milestones = append(milestones, models.ModuleMilestone{
			Title:       "Advanced techniques",
			Description: fmt.Sprintf("Study advanced patterns and idioms in %s", skill),
		})
	}
	return milestones
}

func assessments(skill string) []models.ModuleAssessment {
	return []models.ModuleAssessment{
		{Type: "quiz", Description: fmt.Sprintf("Pass a knowledge check covering %s fundamentals", skill)},
		{Type: "project", Description: fmt.Sprintf("Ship a reviewed practical project using %s", skill)},
	}
}
