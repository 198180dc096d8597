package ports

import (
	"context"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// PermitService exposes the permit surface consumed by students and admins.
type PermitService interface {
	// OwnPermit returns the permit belonging to the authenticated student.
	// Withheld permits (pending, expired) fail with ErrPermitNotPrintable.
	OwnPermit(ctx context.Context, student domain.Identity) (*domain.Permit, error)
	List(ctx context.Context) ([]*domain.Permit, error)
	// Approve marks a pending permit approved on behalf of approvedBy.
	Approve(ctx context.Context, permitID, approvedBy string) (*domain.Permit, error)
	Revoke(ctx context.Context, permitID string) (*domain.Permit, error)
}
