package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

// ScanDedup abstracts the duplicate-scan store (Redis).
type ScanDedup interface {
	Seen(ctx context.Context, permitID string, ts time.Time) (bool, error)
	Mark(ctx context.Context, permitID string, ts time.Time) error
}

// ScanRecorder is the pipeline that persists invigilation records
// asynchronously.
type ScanRecorder interface {
	Enqueue(in ports.ScanRecordInput)
}

type scanService struct {
	roster   ports.RosterRepository
	permits  ports.PermitRepository
	scans    ports.ScanRepository
	dedup    ScanDedup
	recorder ScanRecorder
	log      zerolog.Logger

	// pickIndex selects the simulated scan target; overridable in tests.
	pickIndex func(n int) int
}

// NewScanService returns a ScanService implementation. There is no real QR
// decoding: a scan resolves to a random provisioned student record.
func NewScanService(
	roster ports.RosterRepository,
	permits ports.PermitRepository,
	scans ports.ScanRepository,
	dedup ScanDedup,
	recorder ScanRecorder,
	log zerolog.Logger,
) ports.ScanService {
	return &scanService{
		roster:    roster,
		permits:   permits,
		scans:     scans,
		dedup:     dedup,
		recorder:  recorder,
		log:       log,
		pickIndex: rand.Intn,
	}
}

// Scan resolves a simulated QR read to a student, checks their permit, and
// hands the resulting invigilation record to the async recorder.
func (s *scanService) Scan(ctx context.Context, invigilator domain.Identity) (*ports.ScanResult, error) {
	if invigilator.Role != domain.RoleInvigilator {
		return nil, domain.ErrForbidden
	}

	// 1. Resolve the "decoded" QR payload to a student record.
	students, err := s.roster.ListStudents(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan: list students: %w", err)
	}
	if len(students) == 0 {
		return nil, fmt.Errorf("scan: %w", domain.ErrStudentNotFound)
	}
	student := *students[s.pickIndex(len(students))]

	now := time.Now().UTC()
	rec := domain.Invigilation{
		ID:              uuid.NewString(),
		RegNumber:       student.RegNumber,
		StudentName:     student.Name,
		InvigilatorID:   invigilator.ID,
		InvigilatorName: invigilator.Name,
		ScanTime:        now,
	}

	// 2. Verify the permit. A missing or withheld permit rejects the scan
	// rather than failing it.
	permit, err := s.permits.FindByRegNumber(ctx, student.RegNumber)
	switch {
	case err != nil:
		rec.Outcome = domain.ScanRejected
		rec.Notes = "no permit on file"
	case !permit.Status.Printable():
		rec.PermitID = permit.ID
		rec.Outcome = domain.ScanRejected
		rec.Notes = fmt.Sprintf("permit %s", permit.Status)
	case student.FeesBalance > 0:
		rec.PermitID = permit.ID
		rec.Outcome = domain.ScanRejected
		rec.Notes = "outstanding fees balance"
	default:
		rec.PermitID = permit.ID
		rec.Outcome = domain.ScanApproved
	}

	// 3. Flag repeat scans of the same permit. Dedup failures are tolerated;
	// the scan proceeds unflagged.
	if rec.PermitID != "" {
		seen, dedupErr := s.dedup.Seen(ctx, rec.PermitID, now)
		if dedupErr != nil {
			s.log.Warn().Err(dedupErr).Str("permit_id", rec.PermitID).Msg("scan dedup check failed, proceeding")
		} else if seen {
			rec.Duplicate = true
		}
		if markErr := s.dedup.Mark(ctx, rec.PermitID, now); markErr != nil {
			s.log.Warn().Err(markErr).Str("permit_id", rec.PermitID).Msg("failed to set scan dedup key")
		}
	}

	// 4. Persist asynchronously; the invigilator gets the verdict now.
	s.recorder.Enqueue(ports.ScanRecordInput{Record: rec, ScanTime: now})

	s.log.Info().
		Str("reg_number", rec.RegNumber).
		Str("outcome", string(rec.Outcome)).
		Bool("duplicate", rec.Duplicate).
		Str("invigilator_id", invigilator.ID).
		Msg("permit scanned")

	result := &ports.ScanResult{Record: rec, Student: student}
	if rec.PermitID != "" && permit != nil {
		result.Permit = permit
	}
	return result, nil
}

// History scopes the scan log to the requester: admins see everything,
// invigilators their own scans, students the scans of their permit.
func (s *scanService) History(ctx context.Context, requester domain.Identity, limit int) ([]*domain.Invigilation, error) {
	switch requester.Role {
	case domain.RoleAdmin:
		return s.scans.List(ctx, limit)
	case domain.RoleInvigilator:
		return s.scans.ListByInvigilator(ctx, requester.ID, limit)
	case domain.RoleStudent:
		all, err := s.scans.List(ctx, 0)
		if err != nil {
			return nil, err
		}
		own := make([]*domain.Invigilation, 0)
		for _, rec := range all {
			if rec.RegNumber != requester.RegNumber {
				continue
			}
			own = append(own, rec)
			if limit > 0 && len(own) >= limit {
				break
			}
		}
		return own, nil
	}
	return nil, domain.ErrForbidden
}
