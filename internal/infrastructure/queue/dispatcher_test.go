package queue

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/agrilink/farm-market/internal/core/ports"
)

type captureService struct {
	mu      sync.Mutex
	entries []ports.ActivityInput
	done    chan struct{} // closed once expected entries arrive
	expect  int
}

func newCaptureService(expect int) *captureService {
	return &captureService{done: make(chan struct{}), expect: expect}
}

func (s *captureService) Process(_ context.Context, input ports.ActivityInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, input)
	if len(s.entries) == s.expect {
		close(s.done)
	}
	return nil
}

func (s *captureService) wait(t *testing.T) []ports.ActivityInput {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for activity entries")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.ActivityInput(nil), s.entries...)
}

func TestDispatcher_ProcessesAllEntries(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc := newCaptureService(10)
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < 10; i++ {
		d.Record(ports.ActivityInput{
			Kind:    "product_created",
			ActorID: fmt.Sprintf("actor-%d", i),
			Subject: fmt.Sprintf("p%d", i),
		})
	}

	entries := svc.wait(t)
	if len(entries) != 10 {
		t.Fatalf("expected 10 processed entries, got %d", len(entries))
	}
}

// Entries from the same actor land on the same worker, so their relative
// order survives the fan-out.
func TestDispatcher_PerActorOrder(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	const n = 20
	svc := newCaptureService(n)
	d := NewDispatcher(4, svc, zerolog.Nop())
	d.Start(ctx)

	for i := 0; i < n; i++ {
		d.Record(ports.ActivityInput{
			Kind:    "advice_requested",
			ActorID: "actor-1",
			Subject: fmt.Sprintf("%d", i),
		})
	}

	entries := svc.wait(t)
	for i, entry := range entries {
		if want := fmt.Sprintf("%d", i); entry.Subject != want {
			t.Fatalf("position %d: expected subject %q, got %q", i, want, entry.Subject)
		}
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(4, newCaptureService(0), zerolog.Nop())

	first := d.shardIndex("actor-1")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("actor-1"); got != first {
			t.Fatalf("shard index changed: %d vs %d", first, got)
		}
	}
	if first < 0 || first >= 4 {
		t.Fatalf("shard index out of range: %d", first)
	}
}

// Record must never block, even when no worker is draining the queue.
func TestDispatcher_RecordNeverBlocks(t *testing.T) {
	d := NewDispatcher(1, newCaptureService(0), zerolog.Nop())
	// Start deliberately not called.

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < channelBuffer*2; i++ {
			d.Record(ports.ActivityInput{Kind: "user_registered", ActorID: "actor-1"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Record blocked on a full queue")
	}
}
