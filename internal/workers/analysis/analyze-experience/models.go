// internal/workers/analysis/analyze-experience/models.go
package analyzeexperience

import "career-workers/internal/models"

type Input struct {
	ResumeText string `json:"resumeText"`
}

type Output struct {
	Experience models.ExperienceSummary `json:"experience"`
}
