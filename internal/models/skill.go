// internal/models/skill.go
package models

// SkillCategory classifies a skill in the catalog.
type SkillCategory string

const (
	CategoryTechnical SkillCategory = "technical"
	CategorySoft      SkillCategory = "soft"
	CategoryDomain    SkillCategory = "domain"
	CategoryTools     SkillCategory = "tools"
)

// Skill is a single detected skill. Proficiency is a 1-5 estimate inferred
// from textual context; YearsExperience is a coarse whole-document estimate.
type Skill struct {
	Name            string        `json:"name"`
	Category        SkillCategory `json:"category"`
	Proficiency     int           `json:"proficiency"`
	YearsExperience int           `json:"yearsExperience"`
}

// ExperienceSummary is the structured result of scanning a resume's work
// history section. Companies is best-effort and non-authoritative.
type ExperienceSummary struct {
	TotalYears           int      `json:"totalYears"`
	LeadershipIndicators int      `json:"leadershipIndicators"`
	SeniorityKeywords    []string `json:"seniorityKeywords"`
	Responsibilities     []string `json:"responsibilities"`
	Achievements         []string `json:"achievements"`
	Companies            []string `json:"companies"`
}

// RoleClassification names the best-matching role profile for a resume.
type RoleClassification struct {
	PrimaryRole      string   `json:"primaryRole"`
	Confidence       float64  `json:"confidence"`
	AlternativeRoles []string `json:"alternativeRoles"`
}
