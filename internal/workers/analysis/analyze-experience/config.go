// internal/workers/analysis/analyze-experience/config.go
package analyzeexperience

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
