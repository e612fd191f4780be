// internal/workers/analysis/analyze-skills-gap/handler.go
package analyzeskillsgap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"career-workers/internal/catalog"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/engine/assessment"
	"career-workers/internal/engine/skillsgap"
)

const (
	TaskType = "analyze-skills-gap"
)

var (
	ErrInsufficientInput = errors.New("INSUFFICIENT_INPUT")
	ErrUnknownRole       = errors.New("UNKNOWN_ROLE")
)

type Handler struct {
	config   *Config
	builder  *assessment.Builder
	analyzer *skillsgap.Analyzer
	logger   logger.Logger
}

func NewHandler(config *Config, cat *catalog.Catalog, log logger.Logger) *Handler {
	return &Handler{
		config:   config,
		builder:  assessment.New(cat),
		analyzer: skillsgap.New(cat),
		logger:   log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		errorCode := "ANALYSIS_FAILED"
		if errors.Is(err, ErrInsufficientInput) {
			errorCode = "INSUFFICIENT_INPUT"
		} else if errors.Is(err, ErrUnknownRole) {
			errorCode = "UNKNOWN_ROLE"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.GapAnalysisHours.WithLabelValues(output.GapAnalysis.TargetRole).
		Observe(float64(output.GapAnalysis.Timeline.TotalHours))
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.completeJob(client, job, output)
}

// execute runs the full chain: resume text to assessment to gap analysis.
// On any failure no partial result is returned.
func (h *Handler) execute(_ context.Context, input *Input) (*Output, error) {
	asmt, err := h.builder.Build(input.ResumeText)
	if err != nil {
		if errors.Is(err, assessment.ErrInsufficientInput) {
			return nil, fmt.Errorf("%w: %v", ErrInsufficientInput, err)
		}
		return nil, fmt.Errorf("build assessment: %w", err)
	}

	gap, err := h.analyzer.Analyze(asmt, input.TargetRole, input.TargetLevel)
	if err != nil {
		if errors.Is(err, skillsgap.ErrUnknownRole) {
			return nil, fmt.Errorf("%w: %v", ErrUnknownRole, err)
		}
		return nil, fmt.Errorf("analyze gap: %w", err)
	}

	return &Output{
		AnalysisID:  uuid.New().String(),
		UserID:      input.UserID,
		Assessment:  asmt,
		GapAnalysis: gap,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
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
