package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

type permitService struct {
	repo ports.PermitRepository
	log  zerolog.Logger
}

// NewPermitService returns a PermitService implementation.
func NewPermitService(repo ports.PermitRepository, log zerolog.Logger) ports.PermitService {
	return &permitService{repo: repo, log: log}
}

// OwnPermit fetches the permit issued to the authenticated student. Only
// students own permits; permits that are pending or expired are withheld.
func (s *permitService) OwnPermit(ctx context.Context, student domain.Identity) (*domain.Permit, error) {
	if student.Role != domain.RoleStudent {
		return nil, domain.ErrForbidden
	}

	permit, err := s.repo.FindByRegNumber(ctx, student.RegNumber)
	if err != nil {
		return nil, fmt.Errorf("own permit: %w", err)
	}
	if !permit.Status.Printable() {
		return nil, fmt.Errorf("own permit: %w (status %s)", domain.ErrPermitNotPrintable, permit.Status)
	}
	return permit, nil
}

func (s *permitService) List(ctx context.Context) ([]*domain.Permit, error) {
	return s.repo.List(ctx)
}

func (s *permitService) Approve(ctx context.Context, permitID, approvedBy string) (*domain.Permit, error) {
	permit, err := s.repo.UpdateStatus(ctx, permitID, domain.PermitApproved, approvedBy)
	if err != nil {
		return nil, fmt.Errorf("approve permit: %w", err)
	}

	s.log.Info().
		Str("permit_id", permitID).
		Str("approved_by", approvedBy).
		Msg("permit approved")

	return permit, nil
}

func (s *permitService) Revoke(ctx context.Context, permitID string) (*domain.Permit, error) {
	permit, err := s.repo.UpdateStatus(ctx, permitID, domain.PermitExpired, "")
	if err != nil {
		return nil, fmt.Errorf("revoke permit: %w", err)
	}

	s.log.Info().Str("permit_id", permitID).Msg("permit revoked")
	return permit, nil
}
