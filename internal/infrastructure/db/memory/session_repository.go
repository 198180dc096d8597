// Package memory provides in-memory repository implementations. They favor
// clarity over performance and back the dev and test configurations.
package memory

import (
	"context"
	"sync"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// SessionRepository keeps session records in process memory. Sessions stored
// here do not survive a restart, which is exactly the degraded mode the
// session store tolerates.
type SessionRepository struct {
	mu      sync.RWMutex
	records map[string]domain.SessionRecord
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{records: make(map[string]domain.SessionRecord)}
}

func (r *SessionRepository) Save(_ context.Context, sid string, rec domain.SessionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[sid] = rec
	return nil
}

func (r *SessionRepository) Load(_ context.Context, sid string) (domain.SessionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if rec, ok := r.records[sid]; ok {
		return rec, nil
	}
	return domain.SessionRecord{}, domain.ErrSessionNotFound
}

func (r *SessionRepository) Delete(_ context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, sid)
	return nil
}
