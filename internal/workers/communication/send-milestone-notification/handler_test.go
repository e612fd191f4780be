package sendmilestonenotification

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"career-workers/internal/common/logger"
)

type mockEmailSender struct {
	sent []*ses.SendEmailInput
	err  error
}

func (m *mockEmailSender) SendEmail(_ context.Context, params *ses.SendEmailInput, _ ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.sent = append(m.sent, params)
	return &ses.SendEmailOutput{}, nil
}

type mockPublisher struct {
	published []*sns.PublishInput
	err       error
}

func (m *mockPublisher) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.published = append(m.published, params)
	return &sns.PublishOutput{}, nil
}

func createTestHandler(t *testing.T) (*Handler, sqlmock.Sqlmock, *mockEmailSender, *mockPublisher) {
	db, dbMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	email := &mockEmailSender{}
	sms := &mockPublisher{}
	log := logger.NewZapAdapter(zaptest.NewLogger(t))

	h := NewHandler(&Config{
		EmailEnabled: true,
		SMSEnabled:   true,
		FromEmail:    "notifications@career-platform.io",
		Timeout:      5 * time.Second,
	}, db, email, sms, log)
	return h, dbMock, email, sms
}

func expectRecipient(dbMock sqlmock.Sqlmock, email, phone string) {
	rows := sqlmock.NewRows([]string{"email", "phone"}).AddRow(email, phone)
	dbMock.ExpectQuery("SELECT email, phone FROM users").
		WithArgs("user-1").
		WillReturnRows(rows)
}

func TestHandler_Execute_EmailOnly(t *testing.T) {
	h, dbMock, email, sms := createTestHandler(t)
	expectRecipient(dbMock, "dev@example.com", "+15550100")

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-1",
		MilestoneID:    2,
		MilestoneTitle: "Foundation skills complete",
		TargetRole:     "Data Scientist",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusSent, output.Status)
	assert.Equal(t, []string{ChannelEmail}, output.Channels)
	assert.NotEmpty(t, output.NotificationID)
	require.Len(t, email.sent, 1)
	assert.Equal(t, "dev@example.com", email.sent[0].Destination.ToAddresses[0])
	assert.Contains(t, *email.sent[0].Message.Subject.Data, "Foundation skills complete")
	assert.Empty(t, sms.published)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestHandler_Execute_HighPriorityAddsSMS(t *testing.T) {
	h, dbMock, email, sms := createTestHandler(t)
	expectRecipient(dbMock, "dev@example.com", "+15550100")

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-1",
		MilestoneID:    3,
		MilestoneTitle: "Final milestone",
		Priority:       PriorityHigh,
	})
	require.NoError(t, err)

	assert.Equal(t, StatusSent, output.Status)
	assert.Equal(t, []string{ChannelEmail, ChannelSMS}, output.Channels)
	require.Len(t, email.sent, 1)
	require.Len(t, sms.published, 1)
	assert.Equal(t, "+15550100", *sms.published[0].PhoneNumber)
}

func TestHandler_Execute_UnknownRecipientDisabled(t *testing.T) {
	h, dbMock, email, sms := createTestHandler(t)
	dbMock.ExpectQuery("SELECT email, phone FROM users").
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"email", "phone"}))

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-1",
		MilestoneID:    1,
		MilestoneTitle: "First milestone",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDisabled, output.Status)
	assert.Empty(t, output.Channels)
	assert.Empty(t, email.sent)
	assert.Empty(t, sms.published)
}

func TestHandler_Execute_AllChannelsOff(t *testing.T) {
	h, dbMock, _, _ := createTestHandler(t)
	h.config.EmailEnabled = false
	h.config.SMSEnabled = false
	expectRecipient(dbMock, "dev@example.com", "")

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-1",
		MilestoneID:    1,
		MilestoneTitle: "First milestone",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusDisabled, output.Status)
}

func TestHandler_Execute_SendFailure(t *testing.T) {
	h, dbMock, email, _ := createTestHandler(t)
	email.err = assert.AnError
	expectRecipient(dbMock, "dev@example.com", "")

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-1",
		MilestoneID:    1,
		MilestoneTitle: "First milestone",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.Nil(t, output)
}

func TestHandler_Execute_MalformedAddressSkipsEmail(t *testing.T) {
	h, dbMock, email, _ := createTestHandler(t)
	expectRecipient(dbMock, "not-an-address", "")

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "user-1",
		MilestoneID:    3,
		MilestoneTitle: "Intermediate skills complete",
	})
	require.NoError(t, err)

	assert.Equal(t, StatusDisabled, output.Status)
	assert.Empty(t, output.Channels)
	assert.Empty(t, email.sent)
}

func TestHandler_Execute_InvalidUserID(t *testing.T) {
	h, _, _, _ := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		UserID:         "not a valid id!",
		MilestoneTitle: "First milestone",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUserID)
	assert.Nil(t, output)
}
