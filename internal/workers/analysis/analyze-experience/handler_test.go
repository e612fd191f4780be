package analyzeexperience

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
	return NewHandler(&Config{Timeout: 5 * time.Second}, log)
}

func TestHandler_Execute_SummarizesWorkHistory(t *testing.T) {
	h := createTestHandler(t)

	resume := `Senior Software Engineer
Acme Corp
2015 - 2020
- Led migration of the billing platform to the cloud
- Mentored four junior engineers`

	output, err := h.Execute(context.Background(), &Input{ResumeText: resume})
	require.NoError(t, err)

	assert.Equal(t, 5, output.Experience.TotalYears)
	assert.Equal(t, 2, output.Experience.LeadershipIndicators)
	assert.Contains(t, output.Experience.SeniorityKeywords, "senior")
	assert.Len(t, output.Experience.Responsibilities, 2)
}

func TestHandler_Execute_EmptyText(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{ResumeText: ""})
	require.NoError(t, err)

	assert.Zero(t, output.Experience.TotalYears)
	assert.Zero(t, output.Experience.LeadershipIndicators)
	assert.Empty(t, output.Experience.Responsibilities)
}
