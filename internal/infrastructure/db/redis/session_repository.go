package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

const sessionKeyPrefix = "session:"

// SessionRepository persists serialized session records in Redis under a
// fixed key per session ID, with a TTL so abandoned sessions expire.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionRepository wraps the given client. ttl <= 0 disables expiry.
func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func (r *SessionRepository) Save(ctx context.Context, sid string, rec domain.SessionRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	if err := r.client.Set(ctx, sessionKeyPrefix+sid, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

func (r *SessionRepository) Load(ctx context.Context, sid string) (domain.SessionRecord, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+sid).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.SessionRecord{}, domain.ErrSessionNotFound
		}
		return domain.SessionRecord{}, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	var rec domain.SessionRecord
	if err := json.Unmarshal([]byte(data), &rec); err != nil {
		return domain.SessionRecord{}, fmt.Errorf("%w: %v", domain.ErrSessionCorrupt, err)
	}
	if rec.Version != domain.SessionRecordVersion {
		return domain.SessionRecord{}, fmt.Errorf("%w: unsupported version %d", domain.ErrSessionCorrupt, rec.Version)
	}
	return rec, nil
}

func (r *SessionRepository) Delete(ctx context.Context, sid string) error {
	if err := r.client.Del(ctx, sessionKeyPrefix+sid).Err(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}
