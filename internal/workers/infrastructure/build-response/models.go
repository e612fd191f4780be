// internal/workers/infrastructure/build-response/models.go
package buildresponse

// Input carries the analysis results to wrap into a client envelope.
type Input struct {
	TemplateID string                 `json:"templateId"`
	RequestID  string                 `json:"requestId"`
	Data       map[string]interface{} `json:"data"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

type Output struct {
	Response ResponsePayload `json:"response"`
}

type ResponsePayload struct {
	RequestID string                 `json:"requestId"`
	Status    string                 `json:"status"`
	Data      map[string]interface{} `json:"data"`
	Metadata  ResponseMetadata       `json:"metadata"`
}

type ResponseMetadata struct {
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// TemplateDefinition pairs a response skeleton with the JSON Schema
// its input data must satisfy.
type TemplateDefinition struct {
	ID       string                 `json:"id"`
	Type     string                 `json:"type"`
	Schema   map[string]interface{} `json:"schema"`
	Template map[string]interface{} `json:"template"`
	Version  string                 `json:"version"`
}
