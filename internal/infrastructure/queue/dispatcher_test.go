package queue

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/sweetshop/sweet-inventory/internal/core/domain"
)

type recordingService struct {
	mu       sync.Mutex
	recorded []domain.StockMovement
	block    chan struct{}
	failFor  string
}

func (s *recordingService) Record(_ context.Context, m domain.StockMovement) error {
	if s.block != nil {
		<-s.block
	}
	if m.SweetID == s.failFor {
		return errors.New("insert failed")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recorded = append(s.recorded, m)
	return nil
}

func (s *recordingService) List(context.Context, string) ([]*domain.StockMovement, error) {
	return nil, nil
}

func (s *recordingService) snapshot() []domain.StockMovement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.StockMovement(nil), s.recorded...)
}

func discard() zerolog.Logger { return zerolog.New(io.Discard) }

func TestDispatcher_StopDrainsQueue(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(3, svc, discard())
	d.Start(context.Background())

	for i := 0; i < 50; i++ {
		d.Publish(domain.StockMovement{SweetID: fmt.Sprintf("sweet-%d", i%5), Kind: domain.MovementPurchase, Amount: 1})
	}
	d.Stop()

	if got := len(svc.snapshot()); got != 50 {
		t.Fatalf("expected 50 recorded movements, got %d", got)
	}
}

func TestDispatcher_PreservesOrderPerSweet(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(4, svc, discard())
	d.Start(context.Background())

	for i := 1; i <= 100; i++ {
		d.Publish(domain.StockMovement{SweetID: "barfi", Kind: domain.MovementRestock, Amount: i})
	}
	d.Stop()

	recorded := svc.snapshot()
	if len(recorded) != 100 {
		t.Fatalf("expected 100 movements, got %d", len(recorded))
	}
	for i, m := range recorded {
		if m.Amount != i+1 {
			t.Fatalf("movement %d out of order: amount %d", i, m.Amount)
		}
	}
}

func TestDispatcher_PublishAfterStopIsDropped(t *testing.T) {
	svc := &recordingService{}
	d := NewDispatcher(1, svc, discard())
	d.Start(context.Background())
	d.Stop()

	d.Publish(domain.StockMovement{SweetID: "late"})
	d.Stop()

	if got := len(svc.snapshot()); got != 0 {
		t.Fatalf("expected no movements after stop, got %d", got)
	}
}

func TestDispatcher_FullQueueDoesNotBlock(t *testing.T) {
	svc := &recordingService{block: make(chan struct{})}
	d := NewDispatcher(1, svc, discard())
	d.Start(context.Background())

	// one movement held by the worker plus a full buffer
	total := channelBuffer + 10
	for i := 0; i < total; i++ {
		d.Publish(domain.StockMovement{SweetID: "same"})
	}

	close(svc.block)
	d.Stop()

	got := len(svc.snapshot())
	if got >= total {
		t.Fatalf("expected some movements to be dropped, recorded %d of %d", got, total)
	}
	if got < channelBuffer {
		t.Fatalf("expected at least a full buffer recorded, got %d", got)
	}
}

func TestDispatcher_RecordErrorDoesNotStopWorker(t *testing.T) {
	svc := &recordingService{failFor: "bad"}
	d := NewDispatcher(1, svc, discard())
	d.Start(context.Background())

	d.Publish(domain.StockMovement{SweetID: "bad"})
	d.Publish(domain.StockMovement{SweetID: "good"})
	d.Stop()

	recorded := svc.snapshot()
	if len(recorded) != 1 || recorded[0].SweetID != "good" {
		t.Fatalf("expected only the good movement, got %+v", recorded)
	}
}

func TestShardIndex_Stable(t *testing.T) {
	d := NewDispatcher(7, &recordingService{}, discard())
	first := d.shardIndex("65f0c0ffee")
	for i := 0; i < 10; i++ {
		if d.shardIndex("65f0c0ffee") != first {
			t.Fatal("shard index changed between calls")
		}
	}
	if first < 0 || first >= 7 {
		t.Fatalf("shard index out of range: %d", first)
	}
}
