// internal/common/camunda/worker.go
package camunda

import (
	"fmt"
	"time"

	"career-workers/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// JobHandler is implemented by every task worker in this module.
type JobHandler interface {
	Handle(client worker.JobClient, job entities.Job)
}

// CamundaWorker wraps a Zeebe job worker subscription for a single task type.
type CamundaWorker struct {
	taskType string
	worker   worker.JobWorker
	log      logger.Logger
}

// NewWorker registers a handler for the given task type and opens the job stream.
func NewWorker(client *Client, taskType string, handler JobHandler, maxJobsActive int, jobTimeout time.Duration, log logger.Logger) (*CamundaWorker, error) {
	if maxJobsActive <= 0 {
		maxJobsActive = 5
	}
	if jobTimeout <= 0 {
		jobTimeout = 30 * time.Second
	}

	jobWorker := client.GetClient().
		NewJobWorker().
		JobType(taskType).
		Handler(handler.Handle).
		MaxJobsActive(maxJobsActive).
		Timeout(jobTimeout).
		Open()

	if jobWorker == nil {
		return nil, fmt.Errorf("failed to open job worker for task type %s", taskType)
	}

	log.Info("worker started", map[string]interface{}{
		"taskType":      taskType,
		"maxJobsActive": maxJobsActive,
		"jobTimeoutMs":  jobTimeout.Milliseconds(),
	})

	return &CamundaWorker{
		taskType: taskType,
		worker:   jobWorker,
		log:      log,
	}, nil
}

// TaskType returns the task type this worker is subscribed to.
func (w *CamundaWorker) TaskType() string {
	return w.taskType
}

// Stop closes the job stream and waits for in-flight jobs to finish.
func (w *CamundaWorker) Stop() {
	w.worker.Close()
	w.worker.AwaitClose()
	w.log.Info("worker stopped", map[string]interface{}{"taskType": w.taskType})
}
