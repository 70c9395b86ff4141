package scheduling

import (
	"iter"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// SessionStore owns the authoritative in-memory session list. It is the
// sole mutator of that list; every session it holds satisfies end > start
// and carries a valid status. All mutations are atomic: on validation
// failure the stored state is left unchanged.
//
// Statistics recomputation and snapshot publication are mandatory
// post-conditions of every mutation, not a caller-triggered afterthought.
type SessionStore struct {
	mu       sync.Mutex
	sessions []session.Session
	feed     *Feed
	now      func() time.Time
	newID    func() string
}

// NewSessionStore creates an empty store.
// PRE: none
// POST: store is ready for use; Subscribe delivers a snapshot after each mutation
func NewSessionStore() *SessionStore {
	return &SessionStore{
		feed:  NewFeed(),
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// Patch carries optional field updates for an existing session.
// Nil fields are left untouched.
type Patch struct {
	Title       *string
	Start       *time.Time
	End         *time.Time
	ClientID    *string
	Description *string
	Location    *string
	Status      *string
}

// Create validates the draft and appends a new scheduled session.
// PRE: none
// POST: on success the session is stored with a fresh ID, status=scheduled
// and derived duration; on *session.ValidationError no state changes
func (s *SessionStore) Create(d session.Draft) (session.Session, error) {
	if err := d.Validate(); err != nil {
		return session.Session{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	created := session.FromDraft(s.newID(), d)
	s.sessions = append(s.sessions, created)
	s.publishLocked()
	return created, nil
}

// Insert adopts a fully-built session, keeping its id. Used by the
// persistence collaborator to apply a session after a durable write.
// PRE: none
// POST: on success the session is stored; a duplicate id or invalid
// session is rejected with no state change
func (s *SessionStore) Insert(sess session.Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexLocked(sess.ID) >= 0 {
		return &session.ValidationError{Fields: []string{"id"}}
	}
	s.sessions = append(s.sessions, sess)
	s.publishLocked()
	return nil
}

// Get returns the session with the given id.
// PRE: none
// POST: returns session.ErrNotFound if absent; never mutates state
func (s *SessionStore) Get(id string) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return session.Session{}, session.ErrNotFound
	}
	return s.sessions[idx], nil
}

// Update merges the patch onto the stored session, re-validates the
// end > start invariant and recomputes the duration.
// PRE: none
// POST: on success the merged session replaces the stored one; on
// validation or transition failure the stored session is unchanged
func (s *SessionStore) Update(id string, p Patch) (session.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return session.Session{}, session.ErrNotFound
	}

	merged := s.sessions[idx]
	if p.Title != nil {
		merged.Title = *p.Title
	}
	if p.Start != nil {
		merged.Start = *p.Start
	}
	if p.End != nil {
		merged.End = *p.End
	}
	if p.ClientID != nil {
		merged.ClientID = *p.ClientID
	}
	if p.Description != nil {
		merged.Description = *p.Description
	}
	if p.Location != nil {
		merged.Location = *p.Location
	}
	if p.Status != nil && *p.Status != merged.Status {
		if !merged.CanTransition(*p.Status) {
			return session.Session{}, session.ErrInvalidTransition
		}
		merged.Status = *p.Status
	}

	if err := merged.Validate(); err != nil {
		return session.Session{}, err
	}
	merged.Duration = session.DurationMinutes(merged.Start, merged.End)

	s.sessions[idx] = merged
	s.publishLocked()
	return merged, nil
}

// Move updates only the time range, used for drag-and-drop.
// PRE: none
// POST: same guarantees as Update
func (s *SessionStore) Move(id string, newStart, newEnd time.Time) (session.Session, error) {
	return s.Update(id, Patch{Start: &newStart, End: &newEnd})
}

// Resize updates only the end time; the duration is recomputed from the
// unchanged start.
// PRE: none
// POST: same guarantees as Update
func (s *SessionStore) Resize(id string, newEnd time.Time) (session.Session, error) {
	return s.Update(id, Patch{End: &newEnd})
}

// Complete transitions the session to completed.
// PRE: none
// POST: session.ErrNotFound if absent, session.ErrInvalidTransition if terminal
func (s *SessionStore) Complete(id string) (session.Session, error) {
	status := session.StatusCompleted
	return s.Update(id, Patch{Status: &status})
}

// Cancel transitions the session to cancelled.
// PRE: none
// POST: session.ErrNotFound if absent, session.ErrInvalidTransition if terminal
func (s *SessionStore) Cancel(id string) (session.Session, error) {
	status := session.StatusCancelled
	return s.Update(id, Patch{Status: &status})
}

// Remove deletes the session if present. Deletion is idempotent: removing
// an absent id is a no-op, not an error.
// PRE: none
// POST: returns true if a session was removed
func (s *SessionStore) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexLocked(id)
	if idx < 0 {
		return false
	}
	s.sessions = append(s.sessions[:idx], s.sessions[idx+1:]...)
	s.publishLocked()
	return true
}

// Load replaces the session list wholesale, used to hydrate the store
// from the persistence collaborator at startup.
// PRE: none
// POST: on success the store holds exactly the given sessions; if any
// session is invalid nothing changes
func (s *SessionStore) Load(sessions []session.Session) error {
	for i := range sessions {
		if err := sessions[i].Validate(); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make([]session.Session, len(sessions))
	copy(s.sessions, sessions)
	s.publishLocked()
	return nil
}

// List returns a copy of the current session list.
// PRE: none
// POST: the returned slice is the caller's to keep; never mutates state
func (s *SessionStore) List() []session.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]session.Session, len(s.sessions))
	copy(out, s.sessions)
	return out
}

// Sessions returns a restartable sequence of sessions, optionally
// filtered. A nil predicate yields every session. The sequence iterates
// over a snapshot, so it is safe to call store operations mid-iteration.
func (s *SessionStore) Sessions(pred func(session.Session) bool) iter.Seq[session.Session] {
	return func(yield func(session.Session) bool) {
		for _, sess := range s.List() {
			if pred != nil && !pred(sess) {
				continue
			}
			if !yield(sess) {
				return
			}
		}
	}
}

// Statistics derives the display statistics from the current list.
// PRE: none
// POST: pure derivation, no side effects; zero values on an empty store
func (s *SessionStore) Statistics() Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComputeStatistics(s.sessions, s.now())
}

// Events returns the calendar-widget projection of the current list.
// PRE: none
// POST: one projected event per session; never mutates state
func (s *SessionStore) Events() []CalendarEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Project(s.sessions)
}

// Subscribe registers a change-feed subscriber. The returned cancel
// function must be called to release the subscription.
func (s *SessionStore) Subscribe() (<-chan Snapshot, func()) {
	return s.feed.Subscribe()
}

// indexLocked returns the position of id in the session list, or -1.
// PRE: s.mu is held
func (s *SessionStore) indexLocked(id string) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// publishLocked regenerates the projection and statistics and emits a
// snapshot. Called after every mutation.
// PRE: s.mu is held
func (s *SessionStore) publishLocked() {
	s.feed.publish(Snapshot{
		Events:     Project(s.sessions),
		Statistics: ComputeStatistics(s.sessions, s.now()),
	})
}
