package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// ScanDedup flags repeat scans of the same permit on the same day.
// Key format: scan:<permit_id>:<yyyy-mm-dd>
type ScanDedup struct {
	client *redis.Client
}

func NewScanDedup(client *redis.Client) *ScanDedup {
	return &ScanDedup{client: client}
}

// Seen reports whether this permit was already scanned today.
func (d *ScanDedup) Seen(ctx context.Context, permitID string, ts time.Time) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(permitID, ts)).Result()
	if err != nil {
		return false, fmt.Errorf("scan dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records that this permit has been scanned (expires after dedupTTL).
func (d *ScanDedup) Mark(ctx context.Context, permitID string, ts time.Time) error {
	return d.client.Set(ctx, d.key(permitID, ts), "1", dedupTTL).Err()
}

func (d *ScanDedup) key(permitID string, ts time.Time) string {
	return fmt.Sprintf("scan:%s:%s", permitID, ts.UTC().Format("2006-01-02"))
}
