// internal/models/learning.go
package models

// ModuleLevel is the difficulty a learning module is pitched at.
type ModuleLevel string

const (
	ModuleBeginner     ModuleLevel = "beginner"
	ModuleIntermediate ModuleLevel = "intermediate"
	ModuleAdvanced     ModuleLevel = "advanced"
)

// LearningResource is a single course, doc, or practice item.
type LearningResource struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Provider string `json:"provider,omitempty"`
	URL      string `json:"url,omitempty"`
	Hours    int    `json:"hours,omitempty"`
}

// ModuleMilestone is a sub-milestone inside one learning module.
type ModuleMilestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ModuleAssessment checks completion of a learning module.
type ModuleAssessment struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// LearningModule bundles resources, sub-milestones, and assessments for one
// skill deficit.
type LearningModule struct {
	SkillName      string                 `json:"skillName"`
	Level          ModuleLevel            `json:"level"`
	EstimatedHours int                    `json:"estimatedHours"`
	Priority       RecommendationPriority `json:"priority"`
	Resources      []LearningResource     `json:"resources"`
	Milestones     []ModuleMilestone      `json:"milestones"`
	Assessments    []ModuleAssessment     `json:"assessments"`
}
