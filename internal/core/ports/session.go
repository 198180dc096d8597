package ports

import (
	"context"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// SessionRepository persists one record per session ID — the durable
// "reload survives" half of the session store.
//
// Load returns domain.ErrSessionNotFound when no record exists for the ID
// and domain.ErrSessionCorrupt when a record exists but cannot be decoded.
// Infrastructure failures are reported as (or wrapped around)
// domain.ErrStorageUnavailable.
type SessionRepository interface {
	Save(ctx context.Context, sid string, rec domain.SessionRecord) error
	Load(ctx context.Context, sid string) (domain.SessionRecord, error)
	Delete(ctx context.Context, sid string) error
}
