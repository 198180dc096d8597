package memory

import (
	"context"
	"sync"
	"time"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// PermitRepository holds permits in memory, indexed by ID and reg number.
type PermitRepository struct {
	mu      sync.RWMutex
	byID    map[string]*domain.Permit
	byReg   map[string]string // reg number → permit ID
	ordered []string
}

func NewPermitRepository(seed []*domain.Permit) *PermitRepository {
	r := &PermitRepository{
		byID:  make(map[string]*domain.Permit, len(seed)),
		byReg: make(map[string]string, len(seed)),
	}
	for _, p := range seed {
		clone := *p
		r.byID[clone.ID] = &clone
		r.byReg[clone.RegNumber] = clone.ID
		r.ordered = append(r.ordered, clone.ID)
	}
	return r
}

func (r *PermitRepository) FindByID(_ context.Context, id string) (*domain.Permit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if p, ok := r.byID[id]; ok {
		return clonePermit(p), nil
	}
	return nil, domain.ErrPermitNotFound
}

func (r *PermitRepository) FindByRegNumber(_ context.Context, regNumber string) (*domain.Permit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id, ok := r.byReg[regNumber]; ok {
		return clonePermit(r.byID[id]), nil
	}
	return nil, domain.ErrPermitNotFound
}

func (r *PermitRepository) List(_ context.Context) ([]*domain.Permit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Permit, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, clonePermit(r.byID[id]))
	}
	return out, nil
}

func (r *PermitRepository) UpdateStatus(_ context.Context, id string, status domain.PermitStatus, approvedBy string) (*domain.Permit, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrPermitNotFound
	}
	p.Status = status
	if status == domain.PermitApproved && approvedBy != "" {
		now := time.Now().UTC()
		p.ApprovedBy = approvedBy
		p.ApprovedAt = &now
	}
	return clonePermit(p), nil
}

func clonePermit(p *domain.Permit) *domain.Permit {
	clone := *p
	if p.CourseUnits != nil {
		clone.CourseUnits = make([]domain.CourseUnit, len(p.CourseUnits))
		copy(clone.CourseUnits, p.CourseUnits)
	}
	return &clone
}
