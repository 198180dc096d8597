package ports

import (
	"context"
	"time"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// ScanResult is returned to the invigilator immediately after a scan.
// Persistence of the underlying record happens asynchronously.
type ScanResult struct {
	Record  domain.Invigilation `json:"record"`
	Student domain.Identity     `json:"student"`
	Permit  *domain.Permit      `json:"permit,omitempty"`
}

// ScanService runs the simulated QR scan flow for invigilators.
type ScanService interface {
	// Scan picks a candidate student record, verifies their permit, and
	// produces an invigilation record attributed to the invigilator.
	Scan(ctx context.Context, invigilator domain.Identity) (*ScanResult, error)
	// History returns the scan log scoped to the requester's role: admins
	// see all records, invigilators their own scans, students the scans of
	// their permit.
	History(ctx context.Context, requester domain.Identity, limit int) ([]*domain.Invigilation, error)
}

// ScanRecordInput is the DTO handed from ScanService to the recording
// pipeline for asynchronous persistence.
type ScanRecordInput struct {
	Record   domain.Invigilation
	ScanTime time.Time
}
