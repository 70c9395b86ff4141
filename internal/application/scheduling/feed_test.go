package scheduling

import (
	"testing"
	"time"
)

// TestFeed_LatestValueWins verifies a slow subscriber only sees the most
// recent snapshot.
func TestFeed_LatestValueWins(t *testing.T) {
	f := NewFeed()
	ch, cancel := f.Subscribe()
	defer cancel()

	f.publish(Snapshot{Statistics: Statistics{TodaySessions: 1}})
	f.publish(Snapshot{Statistics: Statistics{TodaySessions: 2}})
	f.publish(Snapshot{Statistics: Statistics{TodaySessions: 3}})

	got := <-ch
	if got.Statistics.TodaySessions != 3 {
		t.Fatalf("today=%d, want latest value 3", got.Statistics.TodaySessions)
	}

	select {
	case extra := <-ch:
		t.Fatalf("unexpected buffered snapshot: %+v", extra)
	default:
	}
}

// TestFeed_Cancel closes the channel and stops delivery.
func TestFeed_Cancel(t *testing.T) {
	f := NewFeed()
	ch, cancel := f.Subscribe()
	cancel()
	cancel() // cancelling twice is safe

	if _, ok := <-ch; ok {
		t.Fatal("channel should be closed after cancel")
	}
	f.publish(Snapshot{}) // must not panic on a cancelled subscriber
}

// TestStore_PublishesAfterEveryMutation verifies the mandatory
// recompute-and-publish post-condition.
func TestStore_PublishesAfterEveryMutation(t *testing.T) {
	now := time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)
	store := newTestStore(now)
	ch, cancel := store.Subscribe()
	defer cancel()

	created, err := store.Create(draftAt(now, time.Hour))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	snap := <-ch
	if len(snap.Events) != 1 || snap.Statistics.TodaySessions != 1 {
		t.Fatalf("snapshot after create=%+v", snap)
	}

	if _, err := store.Resize(created.ID, now.Add(90*time.Minute)); err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	snap = <-ch
	if snap.Statistics.AverageDurationMin != 90 {
		t.Fatalf("avg=%d, want 90", snap.Statistics.AverageDurationMin)
	}

	store.Remove(created.ID)
	snap = <-ch
	if len(snap.Events) != 0 || snap.Statistics != (Statistics{}) {
		t.Fatalf("snapshot after remove=%+v", snap)
	}
}
