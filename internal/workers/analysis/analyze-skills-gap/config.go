// internal/workers/analysis/analyze-skills-gap/config.go
package analyzeskillsgap

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 15 * time.Second,
	}
}
