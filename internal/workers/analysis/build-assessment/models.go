// internal/workers/analysis/build-assessment/models.go
package buildassessment

import "career-workers/internal/models"

type Input struct {
	UserID     string `json:"userId"`
	ResumeText string `json:"resumeText"`
}

type Output struct {
	AssessmentID string                   `json:"assessmentId"`
	UserID       string                   `json:"userId"`
	Assessment   *models.CareerAssessment `json:"assessment"`
	GeneratedAt  string                   `json:"generatedAt"`
}
