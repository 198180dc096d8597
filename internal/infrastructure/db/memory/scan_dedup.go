package memory

import (
	"context"
	"sync"
	"time"
)

// ScanDedup is the in-process fallback for duplicate-scan detection when no
// Redis backend is configured. Keys reset when the process restarts.
type ScanDedup struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewScanDedup() *ScanDedup {
	return &ScanDedup{seen: make(map[string]struct{})}
}

func (d *ScanDedup) Seen(_ context.Context, permitID string, ts time.Time) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[key(permitID, ts)]
	return ok, nil
}

func (d *ScanDedup) Mark(_ context.Context, permitID string, ts time.Time) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[key(permitID, ts)] = struct{}{}
	return nil
}

func key(permitID string, ts time.Time) string {
	return permitID + ":" + ts.UTC().Format("2006-01-02")
}
