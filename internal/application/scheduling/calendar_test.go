package scheduling

import (
	"errors"
	"testing"
	"time"

	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// recordingNotifier captures outcome messages for assertions.
type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(message string) { n.successes = append(n.successes, message) }
func (n *recordingNotifier) Error(message string)   { n.errors = append(n.errors, message) }

func (n *recordingNotifier) last() string {
	if len(n.errors) > 0 {
		return n.errors[len(n.errors)-1]
	}
	if len(n.successes) > 0 {
		return n.successes[len(n.successes)-1]
	}
	return ""
}

// TestStatusColor maps statuses to hints with an indigo default.
func TestStatusColor(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{session.StatusScheduled, ColorScheduled},
		{session.StatusCompleted, ColorCompleted},
		{session.StatusCancelled, ColorCancelled},
		{"unknown", ColorScheduled},
	}
	for _, tc := range tests {
		if got := StatusColor(tc.status); got != tc.want {
			t.Fatalf("StatusColor(%q)=%q, want %q", tc.status, got, tc.want)
		}
	}
}

// TestProject regenerates the full event list from sessions.
func TestProject(t *testing.T) {
	now := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)
	s := sessionAt("s1", "client1", now, 60)
	s.Status = session.StatusCompleted

	events := Project([]session.Session{s})
	if len(events) != 1 {
		t.Fatalf("events=%d, want 1", len(events))
	}
	e := events[0]
	if e.ID != "s1" || e.Title != s.Title || !e.Start.Equal(s.Start) || !e.End.Equal(s.End) {
		t.Fatalf("projected event mismatch: %+v", e)
	}
	if e.ColorHint != ColorCompleted {
		t.Fatalf("color=%q, want %q", e.ColorHint, ColorCompleted)
	}

	if events := Project(nil); len(events) != 0 {
		t.Fatalf("empty list should project zero events, got %d", len(events))
	}
}

// TestCalendarSync_DateRangeSelected defaults to a one-hour draft.
func TestCalendarSync_DateRangeSelected(t *testing.T) {
	sync := NewCalendarSync(newTestStore(time.Now()), nil)
	start := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)

	d := sync.DateRangeSelected(start, start)
	if !d.End.Equal(start.Add(time.Hour)) {
		t.Fatalf("end=%v, want one hour after start", d.End)
	}

	explicit := sync.DateRangeSelected(start, start.Add(30*time.Minute))
	if !explicit.End.Equal(start.Add(30 * time.Minute)) {
		t.Fatalf("explicit range overridden: %v", explicit.End)
	}
}

// TestCalendarSync_DragResizeCallbacks covers the drop/resize round trip
// and the stale-id failure the widget must revert from.
func TestCalendarSync_DragResizeCallbacks(t *testing.T) {
	now := time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)
	store := newTestStore(now)
	notifier := &recordingNotifier{}
	sync := NewCalendarSync(store, notifier)

	created, _ := store.Create(draftAt(now.Add(time.Hour), time.Hour))

	moved, err := sync.EventDropped(created.ID, now.Add(2*time.Hour), now.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("drop failed: %v", err)
	}
	if moved.Duration != 60 {
		t.Fatalf("duration=%d, want 60", moved.Duration)
	}
	if notifier.last() != "Session updated successfully" {
		t.Fatalf("notifier=%q", notifier.last())
	}

	resized, err := sync.EventResized(created.ID, now.Add(4*time.Hour))
	if err != nil {
		t.Fatalf("resize failed: %v", err)
	}
	if resized.Duration != 120 {
		t.Fatalf("duration=%d, want 120", resized.Duration)
	}

	// Stale callback after deletion: NotFound, widget owns the revert.
	store.Remove(created.ID)
	if _, err := sync.EventDropped(created.ID, now, now.Add(time.Hour)); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
	if notifier.last() != "Session not found" {
		t.Fatalf("notifier=%q", notifier.last())
	}
}

// TestCalendarSync_SubmitForm reconciles create, update, delete and cancel.
func TestCalendarSync_SubmitForm(t *testing.T) {
	now := time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)
	store := newTestStore(now)
	notifier := &recordingNotifier{}
	sync := NewCalendarSync(store, notifier)

	// Cancelled form mutates nothing.
	if _, err := sync.SubmitForm(FormResult{Cancelled: true}); err != nil {
		t.Fatalf("cancelled form errored: %v", err)
	}
	if len(store.List()) != 0 {
		t.Fatal("cancelled form must not mutate the store")
	}

	// New draft inserts.
	created, err := sync.SubmitForm(FormResult{Draft: draftAt(now, time.Hour)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if notifier.last() != "Session created successfully" {
		t.Fatalf("notifier=%q", notifier.last())
	}

	// Existing id patches.
	d := created.Draft()
	d.Title = "Evening Session"
	updated, err := sync.SubmitForm(FormResult{ID: created.ID, Draft: d})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Evening Session" {
		t.Fatalf("title=%q", updated.Title)
	}

	// Delete request removes.
	if _, err := sync.SubmitForm(FormResult{Delete: true, ID: created.ID}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(store.List()) != 0 {
		t.Fatal("delete request must remove the session")
	}
	if notifier.last() != "Session deleted successfully" {
		t.Fatalf("notifier=%q", notifier.last())
	}
}

// TestCalendarSync_EventClicked resolves the session for form pre-fill.
func TestCalendarSync_EventClicked(t *testing.T) {
	now := time.Date(2024, 4, 15, 8, 0, 0, 0, time.UTC)
	store := newTestStore(now)
	sync := NewCalendarSync(store, nil)
	created, _ := store.Create(draftAt(now, time.Hour))

	got, err := sync.EventClicked(created.ID)
	if err != nil {
		t.Fatalf("click failed: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("id=%q, want %q", got.ID, created.ID)
	}
	if _, err := sync.EventClicked("stale"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
