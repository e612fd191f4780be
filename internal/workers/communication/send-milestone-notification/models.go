// internal/workers/communication/send-milestone-notification/models.go
package sendmilestonenotification

// Input carries the milestone event to announce.
type Input struct {
	UserID         string `json:"userId"`
	MilestoneID    int    `json:"milestoneId"`
	MilestoneTitle string `json:"milestoneTitle"`
	TargetRole     string `json:"targetRole,omitempty"`
	Priority       string `json:"priority,omitempty"`
}

type Output struct {
	NotificationID string   `json:"notificationId"`
	Status         string   `json:"status"`
	Channels       []string `json:"channels"`
	SentAt         string   `json:"sentAt"`
}

const (
	StatusSent     = "sent"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"

	PriorityHigh = "high"

	ChannelEmail = "email"
	ChannelSMS   = "sms"
)
