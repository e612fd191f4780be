// internal/workers/data-access/search-resources/models.go
package searchresources

type Input struct {
	Skill      string `json:"skill"`
	Level      string `json:"level,omitempty"`
	MaxResults int    `json:"maxResults,omitempty"`
}

type Output struct {
	Resources []map[string]interface{} `json:"resources"`
	TotalHits int64                    `json:"totalHits"`
	MaxScore  float64                  `json:"maxScore"`
	Took      int64                    `json:"took"` // milliseconds
}
