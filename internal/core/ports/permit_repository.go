package ports

import (
	"context"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// PermitRepository defines persistence operations for exam permits.
type PermitRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Permit, error)
	// FindByRegNumber retrieves the permit issued to the given registration
	// number for the current academic period.
	FindByRegNumber(ctx context.Context, regNumber string) (*domain.Permit, error)
	List(ctx context.Context) ([]*domain.Permit, error)
	// UpdateStatus sets a permit's status and, for approvals, records who
	// approved it and when.
	UpdateStatus(ctx context.Context, id string, status domain.PermitStatus, approvedBy string) (*domain.Permit, error)
}
