// internal/catalog/catalog.go
package catalog

import (
	"strings"

	"career-workers/internal/models"
)

// SkillDefinition is one canonical skill with its alternate surface forms.
// A skill is considered present in a resume when any alias appears as a
// substring of the lower-cased text.
type SkillDefinition struct {
	Name     string
	Category models.SkillCategory
	Aliases  []string
}

// RoleLevel holds the per-level requirements and salary band of a role.
type RoleLevel struct {
	Title            string
	Skills           []string
	Responsibilities []string
	SalaryRange      models.SalaryRange
}

// RoleProfile is the reference definition of a job role.
type RoleProfile struct {
	ID                  string
	TitleKeywords       []string
	RequiredSkills      []string
	ResponsibilityVerbs []string
	Levels              map[string]RoleLevel
	BaseSalary          int
	HighDemand          bool
}

// ProficiencyRule maps indicator keywords found adjacent to a skill mention
// to a proficiency level. Rules are evaluated in declaration order; the first
// match wins.
type ProficiencyRule struct {
	Keywords    []string
	Proficiency int
}

// HourMultiplier scales base learning hours for skills whose name contains
// the keyword.
type HourMultiplier struct {
	Keyword    string
	Multiplier float64
}

// ResourceSet holds curated learning resources for one skill at one level.
type ResourceSet struct {
	Skill     string
	Level     models.ModuleLevel
	Resources []models.LearningResource
}

// Catalog is the immutable reference data the whole analysis chain runs
// against. Role order is significant: the classifier breaks score ties in
// favor of the first declared role.
type Catalog struct {
	Skills           []SkillDefinition
	Roles            []RoleProfile
	ProficiencyRules []ProficiencyRule
	HourMultipliers  []HourMultiplier
	BaseHours        map[models.ModuleLevel]int
	HighDemandSkills []string
	Resources        []ResourceSet
}

// FindRole looks up a role profile by id, case-insensitive.
func (c *Catalog) FindRole(id string) (*RoleProfile, bool) {
	needle := strings.ToLower(strings.TrimSpace(id))
	for i := range c.Roles {
		if strings.ToLower(c.Roles[i].ID) == needle {
			return &c.Roles[i], true
		}
	}
	return nil, false
}

// FindSkill looks up a skill definition by canonical name, case-insensitive.
func (c *Catalog) FindSkill(name string) (*SkillDefinition, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	for i := range c.Skills {
		if strings.ToLower(c.Skills[i].Name) == needle {
			return &c.Skills[i], true
		}
	}
	return nil, false
}

// CategoryOf returns the catalog category for a skill name, defaulting to
// technical for names the catalog does not know.
func (c *Catalog) CategoryOf(name string) models.SkillCategory {
	if def, ok := c.FindSkill(name); ok {
		return def.Category
	}
	return models.CategoryTechnical
}

// IsHighDemandSkill reports whether the skill name is on the high-demand
// list, case-insensitive.
func (c *Catalog) IsHighDemandSkill(name string) bool {
	needle := strings.ToLower(name)
	for _, s := range c.HighDemandSkills {
		if strings.ToLower(s) == needle {
			return true
		}
	}
	return false
}

// FindResources returns the curated resource set for a skill at the exact
// requested level.
func (c *Catalog) FindResources(skill string, level models.ModuleLevel) ([]models.LearningResource, bool) {
	needle := strings.ToLower(skill)
	for i := range c.Resources {
		if strings.ToLower(c.Resources[i].Skill) == needle && c.Resources[i].Level == level {
			return c.Resources[i].Resources, true
		}
	}
	return nil, false
}

// HoursFor estimates learning hours for a skill at a module level: the base
// hours for the level scaled by the first matching name-keyword multiplier.
func (c *Catalog) HoursFor(skill string, level models.ModuleLevel) int {
	base, ok := c.BaseHours[level]
	if !ok {
		base = c.BaseHours[models.ModuleIntermediate]
	}
	multiplier := 1.0
	lower := strings.ToLower(skill)
	for _, m := range c.HourMultipliers {
		if strings.Contains(lower, m.Keyword) {
			multiplier = m.Multiplier
			break
		}
	}
	return int(float64(base) * multiplier)
}

// ProficiencyFromContext evaluates the prioritized indicator rules against a
// snippet of text surrounding a skill mention. Returns the default of 3 when
// no rule matches.
func (c *Catalog) ProficiencyFromContext(context string) int {
	lower := strings.ToLower(context)
	for _, rule := range c.ProficiencyRules {
		for _, kw := range rule.Keywords {
			if strings.Contains(lower, kw) {
				return rule.Proficiency
			}
		}
	}
	return DefaultProficiency
}

// DefaultProficiency is assumed-intermediate when no indicator phrase is
// found near a skill mention.
const DefaultProficiency = 3

// SuggestNextLevel returns the conventional next step from an experience
// level. Executive is terminal.
func SuggestNextLevel(level models.ExperienceLevel) string {
	switch level {
	case models.LevelEntry:
		return string(models.LevelMid)
	case models.LevelMid:
		return string(models.LevelSenior)
	case models.LevelSenior:
		return string(models.LevelLead)
	case models.LevelLead, models.LevelExecutive:
		return string(models.LevelExecutive)
	default:
		return string(models.LevelMid)
	}
}
