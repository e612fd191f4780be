// internal/progress/store_test.go
package progress

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-workers/internal/models"
)

func setupStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Hour)
}

func TestRedisStore_GetMissingReturnsEmptyRecord(t *testing.T) {
	store := setupStore(t)

	record, err := store.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", record.UserID)
	assert.Empty(t, record.CompletedSkills)
	assert.Empty(t, record.CompletedMilestones)
}

func TestRedisStore_RoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	record := &models.ProgressRecord{
		UserID: "user-2",
		CompletedSkills: []models.SkillCompletion{
			{Skill: "docker", CompletedAt: "2026-08-01T10:00:00Z"},
		},
		CompletedMilestones: []models.MilestoneCompletion{
			{MilestoneID: 1, CompletedAt: "2026-08-15T10:00:00Z"},
		},
		UpdatedAt: "2026-08-15T10:00:00Z",
	}
	require.NoError(t, store.Set(ctx, record))

	got, err := store.Get(ctx, "user-2")
	require.NoError(t, err)
	assert.Equal(t, record, got)
	assert.True(t, got.HasSkill("docker"))
	assert.True(t, got.HasMilestone(1))
	assert.False(t, got.HasMilestone(2))
}

func TestRedisStore_LastWriteWins(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := &models.ProgressRecord{UserID: "user-3", UpdatedAt: "2026-08-01T00:00:00Z"}
	second := &models.ProgressRecord{
		UserID:              "user-3",
		CompletedMilestones: []models.MilestoneCompletion{{MilestoneID: 2, CompletedAt: "2026-08-02T00:00:00Z"}},
		UpdatedAt:           "2026-08-02T00:00:00Z",
	}
	require.NoError(t, store.Set(ctx, first))
	require.NoError(t, store.Set(ctx, second))

	got, err := store.Get(ctx, "user-3")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestProgressRecord_Percent(t *testing.T) {
	record := &models.ProgressRecord{
		CompletedMilestones: []models.MilestoneCompletion{{MilestoneID: 1}, {MilestoneID: 2}},
	}
	assert.Equal(t, 67, record.Percent(3))
	assert.Equal(t, 100, record.Percent(2))
	assert.Equal(t, 0, record.Percent(0))
}
