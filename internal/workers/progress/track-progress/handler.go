// internal/workers/progress/track-progress/handler.go
package trackprogress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/validation"
	"career-workers/internal/models"
	"career-workers/internal/progress"
)

const (
	TaskType = "track-progress"
)

var (
	ErrInvalidAction       = errors.New("INVALID_ACTION")
	ErrInvalidUserID       = errors.New("INVALID_USER_ID")
	ErrProgressReadFailed  = errors.New("PROGRESS_READ_FAILED")
	ErrProgressWriteFailed = errors.New("PROGRESS_WRITE_FAILED")
)

type Handler struct {
	config *Config
	store  progress.Store
	logger logger.Logger
}

func NewHandler(config *Config, store progress.Store, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		store:  store,
		logger: log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		errorCode := "PROGRESS_WRITE_FAILED"
		switch {
		case errors.Is(err, ErrInvalidAction):
			errorCode = "INVALID_ACTION"
		case errors.Is(err, ErrInvalidUserID):
			errorCode = "INVALID_USER_ID"
		case errors.Is(err, ErrProgressReadFailed):
			errorCode = "PROGRESS_READ_FAILED"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.completeJob(client, job, output)
}

// execute does a read-modify-write against the progress store. The store is
// advisory data; concurrent writers are last-write-wins.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if !validation.ValidateUserID(input.UserID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, input.UserID)
	}

	record, err := h.store.Get(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProgressReadFailed, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)

	switch input.Action {
	case ActionGet:
		// Read only.
	case ActionCompleteSkill:
		if input.Skill != "" && !record.HasSkill(input.Skill) {
			record.CompletedSkills = append(record.CompletedSkills, models.SkillCompletion{
				Skill:       input.Skill,
				CompletedAt: now,
			})
		}
	case ActionCompleteMilestone:
		if input.MilestoneID > 0 && !record.HasMilestone(input.MilestoneID) {
			record.CompletedMilestones = append(record.CompletedMilestones, models.MilestoneCompletion{
				MilestoneID: input.MilestoneID,
				CompletedAt: now,
			})
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, input.Action)
	}

	if input.Action != ActionGet {
		record.UpdatedAt = now
		if err := h.store.Set(ctx, record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrProgressWriteFailed, err)
		}
	}

	return &Output{
		Progress:        record,
		ProgressPercent: record.Percent(input.TotalMilestones),
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
