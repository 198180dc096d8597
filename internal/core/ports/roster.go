package ports

import (
	"context"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// RosterRepository holds the provisioned student and invigilator records
// that the admin surface manages.
type RosterRepository interface {
	ListStudents(ctx context.Context) ([]*domain.Identity, error)
	FindStudentByReg(ctx context.Context, regNumber string) (*domain.Identity, error)
	CreateStudent(ctx context.Context, student *domain.Identity) error
	ListInvigilators(ctx context.Context) ([]*domain.Identity, error)
	CreateInvigilator(ctx context.Context, invigilator *domain.Identity) error
}

// RosterService is the admin-facing management surface over the roster.
type RosterService interface {
	Students(ctx context.Context) ([]*domain.Identity, error)
	StudentByReg(ctx context.Context, regNumber string) (*domain.Identity, error)
	AddStudent(ctx context.Context, student domain.Identity) (*domain.Identity, error)
	Invigilators(ctx context.Context) ([]*domain.Identity, error)
	AddInvigilator(ctx context.Context, invigilator domain.Identity) (*domain.Identity, error)
}
