package memory

import (
	"context"
	"sync"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// ScanRepository keeps invigilation records in memory, newest first.
type ScanRepository struct {
	mu      sync.RWMutex
	records []*domain.Invigilation
}

func NewScanRepository() *ScanRepository {
	return &ScanRepository{}
}

func (r *ScanRepository) Insert(_ context.Context, rec *domain.Invigilation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *rec
	r.records = append([]*domain.Invigilation{&clone}, r.records...)
	return nil
}

func (r *ScanRepository) ListByInvigilator(_ context.Context, invigilatorID string, limit int) ([]*domain.Invigilation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Invigilation, 0)
	for _, rec := range r.records {
		if rec.InvigilatorID != invigilatorID {
			continue
		}
		clone := *rec
		out = append(out, &clone)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (r *ScanRepository) List(_ context.Context, limit int) ([]*domain.Invigilation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.records)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]*domain.Invigilation, 0, n)
	for _, rec := range r.records[:n] {
		clone := *rec
		out = append(out, &clone)
	}
	return out, nil
}
