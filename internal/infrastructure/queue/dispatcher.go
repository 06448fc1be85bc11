package queue

import (
	"context"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/pkg/metrics"
	"github.com/sweetshop/sweet-inventory/internal/core/domain"
	"github.com/sweetshop/sweet-inventory/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher records stock movements in the background. Movements are sharded
// by sweet id so the audit trail of one sweet is written in publish order.
type Dispatcher struct {
	workers []chan domain.StockMovement
	service ports.MovementService
	log     zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers shards.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, service ports.MovementService, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan domain.StockMovement, numWorkers),
		service: service,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan domain.StockMovement, channelBuffer)
	}
	return d
}

// Start launches the workers. ctx is passed to every Record call, so cancel it
// only after Stop has returned.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		d.wg.Add(1)
		go d.runWorker(ctx, i, ch)
	}
}

// Publish never blocks. A movement is dropped when its shard is full or the
// dispatcher has been stopped.
func (d *Dispatcher) Publish(m domain.StockMovement) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.stopped {
		d.drop(m, "dispatcher stopped")
		return
	}

	select {
	case d.workers[d.shardIndex(m.SweetID)] <- m:
	default:
		d.drop(m, "queue full")
	}
}

// Stop refuses new movements and waits until every queued one is recorded.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.stopped = true
	for _, ch := range d.workers {
		close(ch)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) shardIndex(sweetID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sweetID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) drop(m domain.StockMovement, reason string) {
	metrics.MovementsRecordedTotal.WithLabelValues("dropped").Inc()
	d.log.Warn().
		Str("sweet_id", m.SweetID).
		Str("kind", string(m.Kind)).
		Str("reason", reason).
		Msg("stock movement dropped")
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan domain.StockMovement) {
	defer d.wg.Done()
	for m := range ch {
		if err := d.service.Record(ctx, m); err != nil {
			d.log.Error().Err(err).
				Str("sweet_id", m.SweetID).
				Int("worker_id", id).
				Msg("stock movement recording failed")
		}
	}
}
