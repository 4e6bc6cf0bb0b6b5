package service

import (
	"context"
	"sync"
	"time"

	"guest-order-api/core/constants"
	"guest-order-api/core/logger"
	"guest-order-api/modules/timeslot/entity"

	"github.com/google/uuid"
)

// SlotSource is what a Watcher needs from the repository: a snapshot read and
// a change-event subscription.
type SlotSource interface {
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]entity.TimeSlot, error)
	Subscribe(ctx context.Context, tenantID uuid.UUID) (<-chan string, func())
}

// Watcher keeps an in-memory snapshot of a tenant's time slots and refreshes
// it when change events arrive. Events are debounced with a single-slot queue:
// a newer event within the debounce window replaces the pending one, so a
// burst of edits causes exactly one coalesced re-fetch. The refresh is
// at-least-once and eventually consistent; readers may observe a snapshot up
// to roughly one debounce window stale.
type Watcher struct {
	source   SlotSource
	tenantID uuid.UUID
	debounce time.Duration

	mu    sync.RWMutex
	slots []entity.TimeSlot

	cancel context.CancelFunc
	done   chan struct{}
}

func NewWatcher(source SlotSource, tenantID uuid.UUID) *Watcher {
	return &Watcher{
		source:   source,
		tenantID: tenantID,
		debounce: constants.SlotRefreshDebounce,
	}
}

// Start performs the initial fetch and begins listening for change events.
func (w *Watcher) Start(ctx context.Context) error {
	slots, err := w.source.ListByTenant(ctx, w.tenantID)
	if err != nil {
		return err
	}
	w.setSnapshot(slots)

	watchCtx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	w.done = make(chan struct{})

	events, unsubscribe := w.source.Subscribe(watchCtx, w.tenantID)
	go w.loop(watchCtx, events, unsubscribe)

	return nil
}

func (w *Watcher) loop(ctx context.Context, events <-chan string, unsubscribe func()) {
	defer close(w.done)
	defer unsubscribe()

	// The timer is inert until the first event arrives.
	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			// Replace any pending refresh rather than queueing another.
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)
		case <-timer.C:
			w.refresh(ctx)
		}
	}
}

func (w *Watcher) refresh(ctx context.Context) {
	slots, err := w.source.ListByTenant(ctx, w.tenantID)
	if err != nil {
		// Keep serving the previous snapshot; the next event retries.
		logger.Warn("Watcher:refresh:Error", "tenant_id", w.tenantID, "error", err)
		return
	}
	w.setSnapshot(slots)
	logger.Debug("Watcher:refresh:Done", "tenant_id", w.tenantID, "slots", len(slots))
}

func (w *Watcher) setSnapshot(slots []entity.TimeSlot) {
	w.mu.Lock()
	w.slots = slots
	w.mu.Unlock()
}

// Snapshot returns the current slot set. Callers must not mutate it.
func (w *Watcher) Snapshot() []entity.TimeSlot {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.slots
}

// Stop unsubscribes and waits for the event loop to exit.
func (w *Watcher) Stop() {
	if w.cancel == nil {
		return
	}
	w.cancel()
	<-w.done
}

// WatcherRegistry lazily starts one Watcher per tenant and hands out their
// snapshots. It is the single owner of slot-watching goroutines.
type WatcherRegistry struct {
	source SlotSource

	mu       sync.Mutex
	watchers map[uuid.UUID]*Watcher
}

func NewWatcherRegistry(source SlotSource) *WatcherRegistry {
	return &WatcherRegistry{
		source:   source,
		watchers: make(map[uuid.UUID]*Watcher),
	}
}

// SnapshotFor returns the tenant's current slot snapshot, starting a watcher
// on first use.
func (r *WatcherRegistry) SnapshotFor(ctx context.Context, tenantID uuid.UUID) ([]entity.TimeSlot, error) {
	r.mu.Lock()
	w, ok := r.watchers[tenantID]
	if !ok {
		w = NewWatcher(r.source, tenantID)
		if err := w.Start(ctx); err != nil {
			r.mu.Unlock()
			return nil, err
		}
		r.watchers[tenantID] = w
	}
	r.mu.Unlock()

	return w.Snapshot(), nil
}

// Shutdown stops every watcher. Called from the server's shutdown path.
func (r *WatcherRegistry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, w := range r.watchers {
		w.Stop()
		delete(r.watchers, id)
	}
}
