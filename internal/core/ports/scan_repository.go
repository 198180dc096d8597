package ports

import (
	"context"

	"github.com/kyambogo/exam-permit-system/internal/core/domain"
)

// ScanRepository persists invigilation records (the scan history).
type ScanRepository interface {
	Insert(ctx context.Context, rec *domain.Invigilation) error
	// ListByInvigilator returns records for one invigilator, newest first.
	ListByInvigilator(ctx context.Context, invigilatorID string, limit int) ([]*domain.Invigilation, error)
	// List returns all records, newest first (admin view).
	List(ctx context.Context, limit int) ([]*domain.Invigilation, error)
}
