package session

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// Status constants. Scheduled is the initial status for every new session;
// completed and cancelled are terminal.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// ValidStatuses contains all permitted status values.
var ValidStatuses = []string{StatusScheduled, StatusCompleted, StatusCancelled}

// Max length constants for user-editable fields.
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxLocationLength    = 200
)

// Domain errors
var (
	ErrNotFound          = errors.New("session not found")
	ErrSessionFinished   = errors.New("session is already completed or cancelled")
	ErrInvalidTransition = errors.New("invalid session status transition")
)

// Session represents a scheduled coaching appointment.
// PRE: Title and ClientID are non-empty. Status is a valid status value.
// INVARIANT: End is strictly after Start. Duration equals End-Start in minutes.
type Session struct {
	ID          string
	Title       string
	Start       time.Time
	End         time.Time
	ClientID    string // reference to a client; not owned by this package
	Status      string
	Description string // optional, markdown allowed
	Location    string // optional
	Duration    int    // derived minutes, never set independently
}

// Draft is an unvalidated, user-supplied set of fields proposed for
// creating or patching a Session.
type Draft struct {
	Title       string
	Start       time.Time
	End         time.Time
	ClientID    string
	Description string
	Location    string
}

// ValidationError reports the draft fields that failed validation.
type ValidationError struct {
	Fields []string
}

// Error returns the failing field names joined into one message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid session fields: %s", strings.Join(e.Fields, ", "))
}

// Validate checks the draft's invariants.
// PRE: none
// POST: returns nil if valid, *ValidationError listing every violation otherwise
func (d Draft) Validate() error {
	var fields []string
	if strings.TrimSpace(d.Title) == "" || len(d.Title) > MaxTitleLength {
		fields = append(fields, "title")
	}
	if strings.TrimSpace(d.ClientID) == "" {
		fields = append(fields, "clientId")
	}
	if d.Start.IsZero() {
		fields = append(fields, "start")
	}
	if d.End.IsZero() || !d.End.After(d.Start) {
		fields = append(fields, "end")
	}
	if len(d.Description) > MaxDescriptionLength {
		fields = append(fields, "description")
	}
	if len(d.Location) > MaxLocationLength {
		fields = append(fields, "location")
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// FromDraft builds a scheduled Session from a validated draft.
// PRE: d.Validate() returned nil; id is non-empty
// POST: returns a Session with Status=scheduled and Duration computed
func FromDraft(id string, d Draft) Session {
	return Session{
		ID:          id,
		Title:       d.Title,
		Start:       d.Start,
		End:         d.End,
		ClientID:    d.ClientID,
		Status:      StatusScheduled,
		Description: d.Description,
		Location:    d.Location,
		Duration:    DurationMinutes(d.Start, d.End),
	}
}

// DurationMinutes computes the whole-minute duration between start and end.
// PRE: none
// POST: returns end-start rounded to the nearest minute
func DurationMinutes(start, end time.Time) int {
	return int(math.Round(end.Sub(start).Minutes()))
}

// Validate checks the session's invariants.
// PRE: Session struct is populated
// POST: returns nil if valid, error describing the violation otherwise
func (s *Session) Validate() error {
	if err := s.Draft().Validate(); err != nil {
		return err
	}
	if !IsValidStatus(s.Status) {
		return &ValidationError{Fields: []string{"status"}}
	}
	return nil
}

// Draft returns the editable fields of the session as a Draft,
// used to pre-fill the edit form.
func (s *Session) Draft() Draft {
	return Draft{
		Title:       s.Title,
		Start:       s.Start,
		End:         s.End,
		ClientID:    s.ClientID,
		Description: s.Description,
		Location:    s.Location,
	}
}

// IsFinished returns true if the session is in a terminal status.
// INVARIANT: Status field is not mutated
func (s *Session) IsFinished() bool {
	return s.Status == StatusCompleted || s.Status == StatusCancelled
}

// Complete transitions the session from scheduled to completed.
// PRE: Status is scheduled
// POST: Status is completed, or ErrSessionFinished if already terminal
func (s *Session) Complete() error {
	if s.IsFinished() {
		return ErrSessionFinished
	}
	s.Status = StatusCompleted
	return nil
}

// Cancel transitions the session from scheduled to cancelled.
// PRE: Status is scheduled
// POST: Status is cancelled, or ErrSessionFinished if already terminal
func (s *Session) Cancel() error {
	if s.IsFinished() {
		return ErrSessionFinished
	}
	s.Status = StatusCancelled
	return nil
}

// CanTransition reports whether the status machine permits moving to next.
// Only scheduled->completed and scheduled->cancelled are allowed.
func (s *Session) CanTransition(next string) bool {
	if s.Status != StatusScheduled {
		return false
	}
	return next == StatusCompleted || next == StatusCancelled
}

// IsValidStatus returns true if status is one of the permitted values.
func IsValidStatus(status string) bool {
	for _, v := range ValidStatuses {
		if v == status {
			return true
		}
	}
	return false
}
