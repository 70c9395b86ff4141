package scheduling

import "sync"

// Snapshot is one emission of the change feed: the full widget projection
// plus the statistics derived from the same list state.
type Snapshot struct {
	Events     []CalendarEvent
	Statistics Statistics
}

// Feed is an explicit publish/subscribe channel for store snapshots.
// Delivery is at-most-once per emission with no buffering beyond the most
// recent value: a slow subscriber only ever sees the latest snapshot.
type Feed struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Snapshot
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]chan Snapshot)}
}

// Subscribe registers a subscriber and returns its channel plus a cancel
// function. The channel has capacity one and is closed on cancel.
// PRE: none
// POST: the subscriber receives snapshots published after this call
func (f *Feed) Subscribe() (<-chan Snapshot, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	id := f.nextID
	f.nextID++
	ch := make(chan Snapshot, 1)
	f.subs[id] = ch

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if sub, ok := f.subs[id]; ok {
			delete(f.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// publish delivers the snapshot to every subscriber without blocking.
// A pending undelivered snapshot is replaced by the new one.
func (f *Feed) publish(s Snapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		select {
		case ch <- s:
		default:
			// Drop the stale pending value, then offer the latest.
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s:
			default:
			}
		}
	}
}
