// internal/workers/data-access/search-resources/config.go
package searchresources

import "time"

type Config struct {
	Index      string
	MaxResults int
	Timeout    time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Index:      "learning-resources",
		MaxResults: 5,
		Timeout:    10 * time.Second,
	}
}
