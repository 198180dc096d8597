package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/kyambogo/exam-permit-system/internal/api/metrics"
	"github.com/kyambogo/exam-permit-system/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 128
)

// Dispatcher routes invigilation records to a fixed set of workers using
// consistent hashing on the permit ID, so repeat scans of one permit are
// persisted in order.
type Dispatcher struct {
	workers []chan ports.ScanRecordInput
	repo    ports.ScanRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, repo ports.ScanRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.ScanRecordInput, numWorkers),
		repo:    repo,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.ScanRecordInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a record to the worker responsible for its permit.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.ScanRecordInput) {
	d.workers[d.shardIndex(in.Record.PermitID)] <- in
}

// shardIndex maps a permit ID deterministically to a worker index. Records
// without a permit (rejected scans of unknown students) share shard zero's
// hash of the empty string.
func (d *Dispatcher) shardIndex(permitID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(permitID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.ScanRecordInput) {
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			if err := d.repo.Insert(ctx, &in.Record); err != nil {
				metrics.ScanRecordErrorsTotal.WithLabelValues("insert_failed").Inc()
				d.log.Error().Err(err).
					Str("record_id", in.Record.ID).
					Int("worker_id", id).
					Msg("scan record persistence failed")
				continue
			}
			metrics.ScanRecordsPersistedTotal.WithLabelValues(string(in.Record.Outcome)).Inc()
		}
	}
}
