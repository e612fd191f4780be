package buildresponse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"career-workers/internal/common/logger"
)

func createTestHandler(t *testing.T) *Handler {
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	return NewHandler(&Config{
		CacheTTL:   time.Minute,
		AppVersion: "1.0.0-test",
		Timeout:    5 * time.Second,
	}, log)
}

func TestHandler_Execute_CareerReport(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TemplateID: "career-report",
		RequestID:  "req-42",
		Data: map[string]interface{}{
			"assessment": map[string]interface{}{
				"currentRole":     "Software Engineer",
				"experienceLevel": "mid",
			},
			"gapAnalysis": map[string]interface{}{
				"targetRole": "data-scientist",
			},
		},
	})
	require.NoError(t, err)

	resp := output.Response
	assert.Equal(t, "req-42", resp.RequestID)
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, "1.0.0-test", resp.Metadata.Version)

	_, parseErr := time.Parse(time.RFC3339, resp.Metadata.Timestamp)
	assert.NoError(t, parseErr)

	assessment, ok := resp.Data["assessment"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Software Engineer", assessment["currentRole"])
	assert.Nil(t, resp.Data["progress"])
}

func TestHandler_Execute_NestedPlaceholders(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TemplateID: "assessment-summary",
		RequestID:  "req-7",
		Data: map[string]interface{}{
			"assessment": map[string]interface{}{
				"currentRole":     "DevOps Engineer",
				"experienceLevel": "senior",
				"confidence":      0.82,
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "DevOps Engineer", output.Response.Data["currentRole"])
	assert.Equal(t, "senior", output.Response.Data["experienceLevel"])
	assert.Equal(t, 0.82, output.Response.Data["confidence"])
}

func TestHandler_Execute_SchemaRejectsEmptyReport(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TemplateID: "career-report",
		RequestID:  "req-9",
		Data:       map[string]interface{}{"unrelated": true},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnvelopeValidationFailed)
	assert.Nil(t, output)
}

func TestHandler_Execute_UnknownTemplate(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		TemplateID: "no-such-template",
		RequestID:  "req-1",
		Data:       map[string]interface{}{"assessment": map[string]interface{}{}},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
	assert.Nil(t, output)
}

func TestHandler_Execute_TemplateCaching(t *testing.T) {
	h := createTestHandler(t)

	input := &Input{
		TemplateID: "career-report",
		RequestID:  "req-1",
		Data: map[string]interface{}{
			"progress": map[string]interface{}{"progressPercent": 50},
		},
	}

	_, err := h.Execute(context.Background(), input)
	require.NoError(t, err)

	h.mu.RLock()
	_, cached := h.cache["career-report"]
	h.mu.RUnlock()
	assert.True(t, cached)

	_, err = h.Execute(context.Background(), input)
	assert.NoError(t, err)
}
