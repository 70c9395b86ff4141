package scheduling

import (
	"errors"
	"time"

	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// Status color hints consumed by the calendar-rendering widget.
const (
	ColorScheduled = "#6366f1" // indigo
	ColorCompleted = "#22c55e" // green
	ColorCancelled = "#ef4444" // red
)

// DefaultSessionDuration is the pre-filled length of a session created
// from a bare date selection.
const DefaultSessionDuration = time.Hour

// CalendarEvent is the projected, read-only shape of a session for a
// generic calendar-rendering widget.
type CalendarEvent struct {
	ID        string
	Title     string
	Start     time.Time
	End       time.Time
	ColorHint string
}

// StatusColor maps a session status to its widget color hint.
// Unrecognized statuses fall back to the scheduled color; status is
// already constrained at the store boundary, so this is only a default.
func StatusColor(status string) string {
	switch status {
	case session.StatusCompleted:
		return ColorCompleted
	case session.StatusCancelled:
		return ColorCancelled
	default:
		return ColorScheduled
	}
}

// Project regenerates the full widget projection from the session list.
// PRE: none
// POST: one CalendarEvent per session, in list order
func Project(sessions []session.Session) []CalendarEvent {
	events := make([]CalendarEvent, 0, len(sessions))
	for _, s := range sessions {
		events = append(events, CalendarEvent{
			ID:        s.ID,
			Title:     s.Title,
			Start:     s.Start,
			End:       s.End,
			ColorHint: StatusColor(s.Status),
		})
	}
	return events
}

// Notifier receives human-readable outcome messages after mutations.
// Display and dismissal timing are the implementation's concern.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// FormResult is what the session-edit form collaborator returns on close.
type FormResult struct {
	Cancelled bool          // form dismissed without submitting
	Delete    bool          // delete requested for ID
	ID        string        // empty for a new session
	Draft     session.Draft // submitted fields when not cancelled/deleted
}

// CalendarSync translates widget callback intents into SessionStore
// operations and reconciles edit-form results back into the store.
// It only reports failures; reverting the widget's optimistic UI change
// is the widget's own concern.
type CalendarSync struct {
	store    *SessionStore
	notifier Notifier
}

// NewCalendarSync wires the sync layer to its store and notifier.
// PRE: store is non-nil; notifier may be nil to suppress messages
func NewCalendarSync(store *SessionStore, notifier Notifier) *CalendarSync {
	return &CalendarSync{store: store, notifier: notifier}
}

// Events returns the current widget projection.
func (c *CalendarSync) Events() []CalendarEvent {
	return c.store.Events()
}

// DateRangeSelected pre-fills a draft for the selected range. A selection
// without a meaningful end defaults to a one-hour session.
// PRE: none
// POST: returns a draft for the edit form; no store mutation
func (c *CalendarSync) DateRangeSelected(start, end time.Time) session.Draft {
	if !end.After(start) {
		end = start.Add(DefaultSessionDuration)
	}
	return session.Draft{Start: start, End: end}
}

// EventClicked resolves the clicked event back to its session so the
// edit form can open pre-filled.
// PRE: none
// POST: session.ErrNotFound for a stale id
func (c *CalendarSync) EventClicked(id string) (session.Session, error) {
	return c.store.Get(id)
}

// EventDropped applies a drag-and-drop time change.
// PRE: none
// POST: on failure the stored session is unchanged and the caller must
// revert the widget's optimistic move
func (c *CalendarSync) EventDropped(id string, newStart, newEnd time.Time) (session.Session, error) {
	moved, err := c.store.Move(id, newStart, newEnd)
	c.report(err, "Session updated successfully", "Failed to update session")
	return moved, err
}

// EventResized applies a resize end-time change.
// PRE: none
// POST: same guarantees as EventDropped
func (c *CalendarSync) EventResized(id string, newEnd time.Time) (session.Session, error) {
	resized, err := c.store.Resize(id, newEnd)
	c.report(err, "Session updated successfully", "Failed to update session")
	return resized, err
}

// SubmitForm reconciles an edit-form result into the store: insert for a
// new draft, patch for an existing id, removal for a delete request.
// PRE: none
// POST: a cancelled form mutates nothing and returns a zero session
func (c *CalendarSync) SubmitForm(res FormResult) (session.Session, error) {
	switch {
	case res.Cancelled:
		return session.Session{}, nil
	case res.Delete:
		if c.store.Remove(res.ID) {
			c.report(nil, "Session deleted successfully", "")
		}
		return session.Session{}, nil
	case res.ID == "":
		created, err := c.store.Create(res.Draft)
		c.report(err, "Session created successfully", "Failed to create session")
		return created, err
	default:
		d := res.Draft
		updated, err := c.store.Update(res.ID, Patch{
			Title:       &d.Title,
			Start:       &d.Start,
			End:         &d.End,
			ClientID:    &d.ClientID,
			Description: &d.Description,
			Location:    &d.Location,
		})
		c.report(err, "Session updated successfully", "Failed to update session")
		return updated, err
	}
}

// report forwards the mutation outcome to the notifier.
func (c *CalendarSync) report(err error, success, failure string) {
	if c.notifier == nil {
		return
	}
	switch {
	case err == nil:
		c.notifier.Success(success)
	case errors.Is(err, session.ErrNotFound):
		c.notifier.Error("Session not found")
	default:
		c.notifier.Error(failure)
	}
}
