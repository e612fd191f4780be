// internal/workers/analysis/extract-skills/models.go
package extractskills

import "career-workers/internal/models"

type Input struct {
	ResumeText string `json:"resumeText"`
}

type Output struct {
	Skills     []models.Skill `json:"skills"`
	SkillCount int            `json:"skillCount"`
}
