// internal/progress/store.go
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"career-workers/internal/models"
)

// Store is the narrow persistence interface for per-user progress. Writes
// are last-write-wins; progress is advisory data, not a ledger.
type Store interface {
	Get(ctx context.Context, userID string) (*models.ProgressRecord, error)
	Set(ctx context.Context, record *models.ProgressRecord) error
}

// RedisStore keeps progress records as JSON values in Redis.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisStore creates a store over an existing client. A zero ttl keeps
// records indefinitely.
func NewRedisStore(client redis.UniversalClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func progressKey(userID string) string {
	return fmt.Sprintf("career:progress:%s", userID)
}

// Get returns the user's record, or an empty record when none is stored.
func (s *RedisStore) Get(ctx context.Context, userID string) (*models.ProgressRecord, error) {
	data, err := s.client.Get(ctx, progressKey(userID)).Bytes()
	if err == redis.Nil {
		return &models.ProgressRecord{UserID: userID}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read progress for %s: %w", userID, err)
	}

	var record models.ProgressRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decode progress for %s: %w", userID, err)
	}
	return &record, nil
}

// Set overwrites the user's record.
func (s *RedisStore) Set(ctx context.Context, record *models.ProgressRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode progress for %s: %w", record.UserID, err)
	}
	if err := s.client.Set(ctx, progressKey(record.UserID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("write progress for %s: %w", record.UserID, err)
	}
	return nil
}
