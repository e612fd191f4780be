package trackprogress

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"career-workers/internal/common/logger"
	"career-workers/internal/progress"
)

func createTestHandler(t *testing.T) *Handler {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := progress.NewRedisStore(client, time.Hour)
	log := logger.NewZapAdapter(zaptest.NewLogger(t))
	return NewHandler(&Config{Timeout: 5 * time.Second}, store, log)
}

func TestHandler_Execute_GetEmptyRecord(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		UserID: "user-1",
		Action: ActionGet,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", output.Progress.UserID)
	assert.Empty(t, output.Progress.CompletedSkills)
	assert.Zero(t, output.ProgressPercent)
}

func TestHandler_Execute_CompleteSkillAndMilestone(t *testing.T) {
	h := createTestHandler(t)
	ctx := context.Background()

	_, err := h.Execute(ctx, &Input{
		UserID: "user-1",
		Action: ActionCompleteSkill,
		Skill:  "python",
	})
	require.NoError(t, err)

	output, err := h.Execute(ctx, &Input{
		UserID:          "user-1",
		Action:          ActionCompleteMilestone,
		MilestoneID:     1,
		TotalMilestones: 3,
	})
	require.NoError(t, err)

	assert.True(t, output.Progress.HasSkill("python"))
	assert.True(t, output.Progress.HasMilestone(1))
	assert.Equal(t, 33, output.ProgressPercent)
	assert.NotEmpty(t, output.Progress.UpdatedAt)
}

func TestHandler_Execute_CompletionIsIdempotent(t *testing.T) {
	h := createTestHandler(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := h.Execute(ctx, &Input{
			UserID: "user-1",
			Action: ActionCompleteSkill,
			Skill:  "sql",
		})
		require.NoError(t, err)
	}

	output, err := h.Execute(ctx, &Input{UserID: "user-1", Action: ActionGet})
	require.NoError(t, err)
	assert.Len(t, output.Progress.CompletedSkills, 1)
}

func TestHandler_Execute_InvalidAction(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		UserID: "user-1",
		Action: "reset",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAction)
	assert.Nil(t, output)
}

func TestHandler_Execute_InvalidUserID(t *testing.T) {
	h := createTestHandler(t)

	output, err := h.Execute(context.Background(), &Input{
		UserID: "user id with spaces",
		Action: ActionGet,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidUserID)
	assert.Nil(t, output)
}
