// internal/models/gap.go
package models

// TargetRequirements is the union of core and level-specific requirements for
// a target role.
type TargetRequirements struct {
	CoreSkills       []string     `json:"coreSkills"`
	LevelSkills      []string     `json:"levelSkills"`
	Responsibilities []string     `json:"responsibilities"`
	SalaryRange      *SalaryRange `json:"salaryRange,omitempty"`
}

// MissingSkill is a required skill the candidate does not have at all.
// Importance is 0-10.
type MissingSkill struct {
	Name           string        `json:"name"`
	Importance     int           `json:"importance"`
	Category       SkillCategory `json:"category"`
	EstimatedHours int           `json:"estimatedLearningHours"`
}

// SkillImprovement is a current skill below the target proficiency of 4.
type SkillImprovement struct {
	Skill
	TargetProficiency int `json:"targetProficiency"`
	ImprovementNeeded int `json:"improvementNeeded"`
	EstimatedHours    int `json:"estimatedLearningHours"`
}

// TimelinePhase groups one priority tier's skills into a study phase.
type TimelinePhase struct {
	Name   string   `json:"name"`
	Skills []string `json:"skills"`
	Hours  int      `json:"hours"`
	Weeks  int      `json:"weeks"`
}

// Timeline estimates the overall study effort at 10 study-hours per week.
type Timeline struct {
	TotalHours int             `json:"totalHours"`
	Weeks      int             `json:"weeks"`
	Months     int             `json:"months"`
	Phases     []TimelinePhase `json:"phases"`
}

// PriorityTiers partitions the union of missing and to-improve skill names.
type PriorityTiers struct {
	High   []string `json:"high"`
	Medium []string `json:"medium"`
	Low    []string `json:"low"`
}

// Milestone is a time-boxed set of skill-development goals. IDs are
// contiguous starting at 1.
type Milestone struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Skills             []string `json:"skills"`
	EstimatedWeeks     int      `json:"estimatedWeeks"`
	CompletionCriteria string   `json:"completionCriteria"`
}

// SkillsGapAnalysis is the terminal output of the gap analysis chain.
type SkillsGapAnalysis struct {
	TargetRole     string             `json:"targetRole"`
	TargetLevel    string             `json:"targetLevel"`
	MissingSkills  []MissingSkill     `json:"missingSkills"`
	SkillsToImprove []SkillImprovement `json:"skillsToImprove"`
	StrengthSkills []Skill            `json:"strengthSkills"`
	Timeline       Timeline           `json:"timeline"`
	Priority       PriorityTiers      `json:"priority"`
	LearningPath   []LearningModule   `json:"learningPath"`
	Milestones     []Milestone        `json:"milestones"`
}
