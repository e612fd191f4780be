// internal/workers/progress/track-progress/models.go
package trackprogress

import "career-workers/internal/models"

type Input struct {
	UserID          string `json:"userId"`
	Action          string `json:"action"`
	Skill           string `json:"skill,omitempty"`
	MilestoneID     int    `json:"milestoneId,omitempty"`
	TotalMilestones int    `json:"totalMilestones,omitempty"`
}

type Output struct {
	Progress        *models.ProgressRecord `json:"progress"`
	ProgressPercent int                    `json:"progressPercent"`
}

const (
	ActionGet               = "get"
	ActionCompleteSkill     = "complete-skill"
	ActionCompleteMilestone = "complete-milestone"
)
