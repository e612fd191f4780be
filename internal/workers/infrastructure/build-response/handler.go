// internal/workers/infrastructure/build-response/handler.go
package buildresponse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/validation"
)

const TaskType = "build-response"

var (
	ErrTemplateNotFound         = errors.New("TEMPLATE_NOT_FOUND")
	ErrEnvelopeValidationFailed = errors.New("ENVELOPE_VALIDATION_FAILED")
)

type templateCacheEntry struct {
	template *TemplateDefinition
	loadedAt time.Time
}

type Handler struct {
	config *Config
	logger logger.Logger
	cache  map[string]*templateCacheEntry
	mu     sync.RWMutex
}

func NewHandler(config *Config, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
		cache:  make(map[string]*templateCacheEntry),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.execute(ctx, &input)
	if err != nil {
		errorCode := "RESPONSE_BUILD_ERROR"
		switch {
		case errors.Is(err, ErrTemplateNotFound):
			errorCode = "TEMPLATE_NOT_FOUND"
		case errors.Is(err, ErrEnvelopeValidationFailed):
			errorCode = "ENVELOPE_VALIDATION_FAILED"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.completeJob(client, job, output)
}

func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	template, err := h.loadTemplate(input.TemplateID)
	if err != nil {
		return nil, err
	}

	result, err := validation.ValidateAgainstSchema(template.Schema, input.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEnvelopeValidationFailed, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("%w: %v", ErrEnvelopeValidationFailed, result.GetErrorMessages())
	}

	responseData := h.substituteTemplate(template.Template, input.Data)
	responseDataMap, ok := responseData.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("template %q did not produce an object, got %T", input.TemplateID, responseData)
	}

	payload := ResponsePayload{
		RequestID: input.RequestID,
		Status:    "success",
		Data:      responseDataMap,
		Metadata: ResponseMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   h.config.AppVersion,
		},
	}

	return &Output{Response: payload}, nil
}

// substituteTemplate walks the template tree replacing {{key}} strings
// with values looked up in the input data. Dotted keys traverse nested
// objects; unresolved placeholders become null.
func (h *Handler) substituteTemplate(templateData interface{}, inputData map[string]interface{}) interface{} {
	switch v := templateData.(type) {
	case string:
		if len(v) > 4 && strings.HasPrefix(v, "{{") && strings.HasSuffix(v, "}}") {
			key := strings.TrimSpace(v[2 : len(v)-2])
			return h.lookupNestedValue(inputData, key)
		}
		return v
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, child := range v {
			result[k] = h.substituteTemplate(child, inputData)
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = h.substituteTemplate(item, inputData)
		}
		return result
	default:
		return v
	}
}

func (h *Handler) lookupNestedValue(data map[string]interface{}, key string) interface{} {
	current := interface{}(data)
	for _, part := range strings.Split(key, ".") {
		currentMap, ok := current.(map[string]interface{})
		if !ok {
			return nil
		}
		val, exists := currentMap[part]
		if !exists {
			return nil
		}
		current = val
	}
	return current
}

func (h *Handler) loadTemplate(id string) (*TemplateDefinition, error) {
	h.mu.RLock()
	if entry, ok := h.cache[id]; ok && time.Since(entry.loadedAt) < h.config.CacheTTL {
		h.mu.RUnlock()
		return entry.template, nil
	}
	h.mu.RUnlock()

	templates := defaultTemplates
	if h.config.TemplateRegistry != "" {
		registryBytes, err := os.ReadFile(h.config.TemplateRegistry)
		if err != nil {
			return nil, fmt.Errorf("read template registry: %w", err)
		}
		var registry struct {
			Templates []TemplateDefinition `json:"templates"`
		}
		if err := json.Unmarshal(registryBytes, &registry); err != nil {
			return nil, fmt.Errorf("parse template registry: %w", err)
		}
		templates = registry.Templates
	}

	for i := range templates {
		if templates[i].ID == id {
			h.mu.Lock()
			h.cache[id] = &templateCacheEntry{
				template: &templates[i],
				loadedAt: time.Now(),
			}
			h.mu.Unlock()
			return &templates[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{
			"error": err,
		})
		return
	}
	_, err = cmd.Send(context.Background())
	if err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{
			"error": err,
		})
	}
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	return h.execute(ctx, input)
}
