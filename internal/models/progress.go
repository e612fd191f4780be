// internal/models/progress.go
package models

import "math"

// SkillCompletion marks one skill as done by the user.
type SkillCompletion struct {
	Skill       string `json:"skill"`
	CompletedAt string `json:"completedAt"`
}

// MilestoneCompletion marks one milestone as done by the user.
type MilestoneCompletion struct {
	MilestoneID int    `json:"milestoneId"`
	CompletedAt string `json:"completedAt"`
}

// ProgressRecord is the per-user progress state kept in the external
// key-value store. It is advisory data; concurrent writes from multiple
// sessions are last-write-wins.
type ProgressRecord struct {
	UserID              string                `json:"userId"`
	CompletedSkills     []SkillCompletion     `json:"completedSkills"`
	CompletedMilestones []MilestoneCompletion `json:"completedMilestones"`
	UpdatedAt           string                `json:"updatedAt"`
}

// HasSkill reports whether the skill is already marked complete.
func (p *ProgressRecord) HasSkill(skill string) bool {
	for _, s := range p.CompletedSkills {
		if s.Skill == skill {
			return true
		}
	}
	return false
}

// HasMilestone reports whether the milestone is already marked complete.
func (p *ProgressRecord) HasMilestone(id int) bool {
	for _, m := range p.CompletedMilestones {
		if m.MilestoneID == id {
			return true
		}
	}
	return false
}

// Percent returns the rounded completion percentage against the total
// milestone count, or 0 when the total is unknown.
func (p *ProgressRecord) Percent(totalMilestones int) int {
	if totalMilestones <= 0 {
		return 0
	}
	pct := float64(len(p.CompletedMilestones)) / float64(totalMilestones) * 100.0
	return int(math.Round(pct))
}
