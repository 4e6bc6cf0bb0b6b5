package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"guest-order-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

type fakeSource struct {
	mu      sync.Mutex
	slots   []entity.TimeSlot
	fetches int
	events  chan string
}

func newFakeSource(slots ...entity.TimeSlot) *fakeSource {
	return &fakeSource{slots: slots, events: make(chan string, 16)}
}

func (f *fakeSource) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.TimeSlot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetches++
	out := make([]entity.TimeSlot, len(f.slots))
	copy(out, f.slots)
	return out, nil
}

func (f *fakeSource) Subscribe(ctx context.Context, tenantID uuid.UUID) (<-chan string, func()) {
	return f.events, func() {}
}

func (f *fakeSource) setSlots(slots ...entity.TimeSlot) {
	f.mu.Lock()
	f.slots = slots
	f.mu.Unlock()
}

func (f *fakeSource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fetches
}

func namedSlot(label string) entity.TimeSlot {
	s := entity.TimeSlot{Label: label, StartTime: "08:00:00", EndTime: "12:00:00"}
	s.ID = uuid.New()
	return s
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before timeout")
}

func TestWatcherInitialSnapshot(t *testing.T) {
	source := newFakeSource(namedSlot("Breakfast"), namedSlot("Dinner"))
	w := NewWatcher(source, uuid.New())
	w.debounce = 20 * time.Millisecond

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	snapshot := w.Snapshot()
	if len(snapshot) != 2 {
		t.Fatalf("expected 2 slots in initial snapshot, got %d", len(snapshot))
	}
}

func TestWatcherRefreshesAfterEvent(t *testing.T) {
	source := newFakeSource(namedSlot("Breakfast"))
	w := NewWatcher(source, uuid.New())
	w.debounce = 20 * time.Millisecond

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	source.setSlots(namedSlot("Breakfast"), namedSlot("Lunch"))
	source.events <- "changed"

	waitFor(t, time.Second, func() bool {
		return len(w.Snapshot()) == 2
	})
}

func TestWatcherCoalescesEventBurst(t *testing.T) {
	source := newFakeSource(namedSlot("Breakfast"))
	w := NewWatcher(source, uuid.New())
	w.debounce = 50 * time.Millisecond

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	defer w.Stop()

	base := source.fetchCount() // the initial fetch

	// A burst of edits inside one debounce window.
	for i := 0; i < 5; i++ {
		source.events <- "changed"
		time.Sleep(5 * time.Millisecond)
	}

	waitFor(t, time.Second, func() bool {
		return source.fetchCount() > base
	})
	// Give a second pending refresh time to fire if one is wrongly queued.
	time.Sleep(150 * time.Millisecond)

	if got := source.fetchCount(); got != base+1 {
		t.Errorf("expected exactly one coalesced refetch, got %d extra", got-base)
	}
}

func TestWatcherStopEndsLoop(t *testing.T) {
	source := newFakeSource(namedSlot("Breakfast"))
	w := NewWatcher(source, uuid.New())
	w.debounce = 20 * time.Millisecond

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	w.Stop() // must not hang

	// Events after Stop are ignored without panicking.
	source.events <- "changed"
}

func TestWatcherRegistryLazyStartAndShutdown(t *testing.T) {
	source := newFakeSource(namedSlot("Breakfast"))
	registry := NewWatcherRegistry(source)

	tenantA := uuid.New()
	tenantB := uuid.New()

	snapA, err := registry.SnapshotFor(context.Background(), tenantA)
	if err != nil {
		t.Fatalf("SnapshotFor: %v", err)
	}
	if len(snapA) != 1 {
		t.Fatalf("expected 1 slot, got %d", len(snapA))
	}

	fetchesAfterA := source.fetchCount()
	if _, err := registry.SnapshotFor(context.Background(), tenantA); err != nil {
		t.Fatalf("SnapshotFor second call: %v", err)
	}
	if source.fetchCount() != fetchesAfterA {
		t.Error("second snapshot for the same tenant must reuse the watcher")
	}

	if _, err := registry.SnapshotFor(context.Background(), tenantB); err != nil {
		t.Fatalf("SnapshotFor tenantB: %v", err)
	}
	if source.fetchCount() != fetchesAfterA+1 {
		t.Error("a new tenant should trigger its own initial fetch")
	}

	registry.Shutdown()
}
