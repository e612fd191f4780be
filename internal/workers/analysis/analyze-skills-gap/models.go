// internal/workers/analysis/analyze-skills-gap/models.go
package analyzeskillsgap

import "career-workers/internal/models"

type Input struct {
	UserID      string `json:"userId"`
	ResumeText  string `json:"resumeText"`
	TargetRole  string `json:"targetRole"`
	TargetLevel string `json:"targetLevel,omitempty"`
}

type Output struct {
	AnalysisID  string                    `json:"analysisId"`
	UserID      string                    `json:"userId"`
	Assessment  *models.CareerAssessment  `json:"assessment"`
	GapAnalysis *models.SkillsGapAnalysis `json:"gapAnalysis"`
	GeneratedAt string                    `json:"generatedAt"`
}
