package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

type rosterService struct {
	repo ports.RosterRepository
	log  zerolog.Logger
}

// NewRosterService returns the admin-facing RosterService implementation.
func NewRosterService(repo ports.RosterRepository, log zerolog.Logger) ports.RosterService {
	return &rosterService{repo: repo, log: log}
}

func (s *rosterService) Students(ctx context.Context) ([]*domain.Identity, error) {
	return s.repo.ListStudents(ctx)
}

func (s *rosterService) StudentByReg(ctx context.Context, regNumber string) (*domain.Identity, error) {
	return s.repo.FindStudentByReg(ctx, regNumber)
}

func (s *rosterService) AddStudent(ctx context.Context, student domain.Identity) (*domain.Identity, error) {
	student.Role = domain.RoleStudent
	if student.ID == "" {
		student.ID = "S" + uuid.NewString()[:8]
	}
	if err := s.repo.CreateStudent(ctx, &student); err != nil {
		return nil, fmt.Errorf("add student: %w", err)
	}

	s.log.Info().Str("reg_number", student.RegNumber).Msg("student added to roster")
	return &student, nil
}

func (s *rosterService) Invigilators(ctx context.Context) ([]*domain.Identity, error) {
	return s.repo.ListInvigilators(ctx)
}

func (s *rosterService) AddInvigilator(ctx context.Context, invigilator domain.Identity) (*domain.Identity, error) {
	invigilator.Role = domain.RoleInvigilator
	if invigilator.ID == "" {
		invigilator.ID = "I" + uuid.NewString()[:8]
	}
	if err := s.repo.CreateInvigilator(ctx, &invigilator); err != nil {
		return nil, fmt.Errorf("add invigilator: %w", err)
	}

	s.log.Info().Str("invigilator_id", invigilator.ID).Msg("invigilator added to roster")
	return &invigilator, nil
}
