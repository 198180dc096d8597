package memory

import (
	"context"
	"sync"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// RosterRepository holds the provisioned student and invigilator records.
type RosterRepository struct {
	mu           sync.RWMutex
	students     map[string]*domain.Identity // keyed by reg number
	studentOrder []string
	invigilators map[string]*domain.Identity // keyed by ID
	invigOrder   []string
}

// NewRosterRepository builds a roster from seed identities, partitioning
// them by role. Non student/invigilator roles are ignored.
func NewRosterRepository(seed []domain.Identity) *RosterRepository {
	r := &RosterRepository{
		students:     make(map[string]*domain.Identity),
		invigilators: make(map[string]*domain.Identity),
	}
	for _, id := range seed {
		clone := id
		switch id.Role {
		case domain.RoleStudent:
			r.students[clone.RegNumber] = &clone
			r.studentOrder = append(r.studentOrder, clone.RegNumber)
		case domain.RoleInvigilator:
			r.invigilators[clone.ID] = &clone
			r.invigOrder = append(r.invigOrder, clone.ID)
		}
	}
	return r
}

func (r *RosterRepository) ListStudents(_ context.Context) ([]*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Identity, 0, len(r.studentOrder))
	for _, reg := range r.studentOrder {
		clone := *r.students[reg]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *RosterRepository) FindStudentByReg(_ context.Context, regNumber string) (*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if s, ok := r.students[regNumber]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, domain.ErrStudentNotFound
}

func (r *RosterRepository) CreateStudent(_ context.Context, student *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.students[student.RegNumber]; exists {
		return domain.ErrRosterEntryExists
	}
	clone := *student
	r.students[clone.RegNumber] = &clone
	r.studentOrder = append(r.studentOrder, clone.RegNumber)
	return nil
}

func (r *RosterRepository) ListInvigilators(_ context.Context) ([]*domain.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*domain.Identity, 0, len(r.invigOrder))
	for _, id := range r.invigOrder {
		clone := *r.invigilators[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *RosterRepository) CreateInvigilator(_ context.Context, invigilator *domain.Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.invigilators[invigilator.ID]; exists {
		return domain.ErrRosterEntryExists
	}
	clone := *invigilator
	r.invigilators[clone.ID] = &clone
	r.invigOrder = append(r.invigOrder, clone.ID)
	return nil
}
