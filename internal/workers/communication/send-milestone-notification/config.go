// internal/workers/communication/send-milestone-notification/config.go
package sendmilestonenotification

import "time"

type Config struct {
	EmailEnabled bool
	SMSEnabled   bool
	FromEmail    string
	Timeout      time.Duration
}

func LoadConfig() *Config {
	return &Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "notifications@career-platform.io",
		Timeout:      15 * time.Second,
	}
}
