// internal/workers/communication/send-milestone-notification/handler.go
package sendmilestonenotification

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	sestypes "github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"

	"career-workers/internal/common/aws"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/validation"
)

const (
	TaskType = "send-milestone-notification"
)

var (
	ErrInvalidUserID         = errors.New("INVALID_USER_ID")
	ErrRecipientLookupFailed = errors.New("RECIPIENT_LOOKUP_FAILED")
	ErrNotificationFailed    = errors.New("NOTIFICATION_FAILED")
)

type Handler struct {
	config *Config
	db     *sql.DB
	email  aws.EmailSender
	sms    aws.TopicPublisher
	logger logger.Logger
}

func NewHandler(config *Config, db *sql.DB, email aws.EmailSender, sms aws.TopicPublisher, log logger.Logger) *Handler {
	return &Handler{
		config: config,
		db:     db,
		email:  email,
		sms:    sms,
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
		errorCode := "NOTIFICATION_FAILED"
		switch {
		case errors.Is(err, ErrInvalidUserID):
			errorCode = "INVALID_USER_ID"
		case errors.Is(err, ErrRecipientLookupFailed):
			errorCode = "RECIPIENT_LOOKUP_FAILED"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
	h.completeJob(client, job, output)
}

type recipient struct {
	Email string
	Phone string
}

// execute delivers the milestone announcement over every enabled channel.
// A user with no contact details on file gets a disabled status rather
// than an error so that workflows keep moving.
func (h *Handler) execute(ctx context.Context, input *Input) (*Output, error) {
	if !validation.ValidateUserID(input.UserID) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidUserID, input.UserID)
	}

	output := &Output{
		NotificationID: uuid.New().String(),
		Channels:       []string{},
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}

	rcpt, err := h.lookupRecipient(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.logger.Warn("no recipient on file, skipping notification", map[string]interface{}{
				"userId": input.UserID,
			})
			output.Status = StatusDisabled
			return output, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrRecipientLookupFailed, err)
	}

	subject, body := h.renderMessage(input)

	if h.config.EmailEnabled && rcpt.Email != "" {
		if !validation.ValidateEmail(rcpt.Email) {
			h.logger.Warn("skipping email channel, stored address is malformed", map[string]interface{}{
				"userId": input.UserID,
			})
		} else {
			if err := h.sendEmail(ctx, rcpt.Email, subject, body); err != nil {
				return nil, fmt.Errorf("%w: email: %v", ErrNotificationFailed, err)
			}
			output.Channels = append(output.Channels, ChannelEmail)
		}
	}

	if h.config.SMSEnabled && input.Priority == PriorityHigh && rcpt.Phone != "" {
		if err := h.sendSMS(ctx, rcpt.Phone, body); err != nil {
			return nil, fmt.Errorf("%w: sms: %v", ErrNotificationFailed, err)
		}
		output.Channels = append(output.Channels, ChannelSMS)
	}

	if len(output.Channels) == 0 {
		output.Status = StatusDisabled
	} else {
		output.Status = StatusSent
	}
	return output, nil
}

func (h *Handler) lookupRecipient(ctx context.Context, userID string) (*recipient, error) {
	var r recipient
	var phone sql.NullString
	query := `SELECT email, phone FROM users WHERE user_id = $1`
	if err := h.db.QueryRowContext(ctx, query, userID).Scan(&r.Email, &phone); err != nil {
		return nil, err
	}
	r.Phone = phone.String
	return &r, nil
}

func (h *Handler) renderMessage(input *Input) (subject, body string) {
	subject = fmt.Sprintf("Milestone reached: %s", input.MilestoneTitle)
	if input.TargetRole != "" {
		body = fmt.Sprintf("You completed %q on your path to %s. Keep going!",
			input.MilestoneTitle, input.TargetRole)
	} else {
		body = fmt.Sprintf("You completed %q. Keep going!", input.MilestoneTitle)
	}
	return subject, body
}

func (h *Handler) sendEmail(ctx context.Context, to, subject, body string) error {
	_, err := h.email.SendEmail(ctx, &ses.SendEmailInput{
		Source: awssdk.String(h.config.FromEmail),
		Destination: &sestypes.Destination{
			ToAddresses: []string{to},
		},
		Message: &sestypes.Message{
			Subject: &sestypes.Content{Data: awssdk.String(subject)},
			Body: &sestypes.Body{
				Text: &sestypes.Content{Data: awssdk.String(body)},
			},
		},
	})
	return err
}

func (h *Handler) sendSMS(ctx context.Context, phone, body string) error {
	_, err := h.sms.Publish(ctx, &sns.PublishInput{
		PhoneNumber: awssdk.String(phone),
		Message:     awssdk.String(body),
	})
	return err
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
