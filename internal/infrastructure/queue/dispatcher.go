package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/veriscan/veriscan-api/internal/api/metrics"
	"github.com/veriscan/veriscan-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Processor consumes completed detections off the queue.
type Processor interface {
	Record(ctx context.Context, in ports.DetectionRecordInput) error
}

// Dispatcher routes detection records to a fixed set of workers using
// consistent hashing on the user ID, so one user's detections are
// persisted in submission order and the counter never races itself.
type Dispatcher struct {
	workers []chan ports.DetectionRecordInput
	service Processor
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service Processor, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.DetectionRecordInput, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.DetectionRecordInput, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a record to the worker responsible for its user.
// The call is non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(in ports.DetectionRecordInput) {
	idx := d.shardIndex(in.UserID)
	d.workers[idx] <- in
	metrics.DetectionQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a user ID deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.DetectionRecordInput) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-ch:
			if !ok {
				return
			}
			if err := d.service.Record(ctx, in); err != nil {
				metrics.DetectionsErrorsTotal.WithLabelValues("record_failed").Inc()
				d.log.Error().Err(err).
					Str("user_id", in.UserID).
					Int("worker_id", id).
					Msg("detection recording failed")
			} else {
				metrics.DetectionsProcessedTotal.WithLabelValues(string(in.Kind), string(in.Verdict)).Inc()
			}
			metrics.DetectionQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
		}
	}
}
