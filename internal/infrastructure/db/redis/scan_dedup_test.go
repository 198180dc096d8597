package redis

import (
	"context"
	"testing"
	"time"
)

func TestScanDedup_SeenAfterMark(t *testing.T) {
	_, client := newTestClient(t)
	dedup := NewScanDedup(client)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	seen, err := dedup.Seen(ctx, "P-0001", now)
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	if seen {
		t.Fatalf("unmarked permit must not be seen")
	}

	if err := dedup.Mark(ctx, "P-0001", now); err != nil {
		t.Fatalf("mark: %v", err)
	}
	seen, err = dedup.Seen(ctx, "P-0001", now)
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	if !seen {
		t.Fatalf("marked permit must be seen the same day")
	}
}

func TestScanDedup_ScopedToDay(t *testing.T) {
	_, client := newTestClient(t)
	dedup := NewScanDedup(client)
	ctx := context.Background()
	today := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)
	tomorrow := today.Add(24 * time.Hour)

	if err := dedup.Mark(ctx, "P-0001", today); err != nil {
		t.Fatalf("mark: %v", err)
	}
	seen, err := dedup.Seen(ctx, "P-0001", tomorrow)
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	if seen {
		t.Fatalf("dedup must not carry over to the next day")
	}
}

func TestScanDedup_ScopedToPermit(t *testing.T) {
	_, client := newTestClient(t)
	dedup := NewScanDedup(client)
	ctx := context.Background()
	now := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	if err := dedup.Mark(ctx, "P-0001", now); err != nil {
		t.Fatalf("mark: %v", err)
	}
	seen, err := dedup.Seen(ctx, "P-0002", now)
	if err != nil {
		t.Fatalf("seen: %v", err)
	}
	if seen {
		t.Fatalf("marking one permit must not flag another")
	}
}
