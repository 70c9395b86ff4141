package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/azizzarr/CoachSync/internal/application/scheduling"
	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// SessionDurableStore defines the persistence interface for sessions.
type SessionDurableStore interface {
	Save(ctx context.Context, s session.Session) error
	Delete(ctx context.Context, id string) error
}

// Notifier receives user-facing outcome messages.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ScheduleSessionInput carries the draft for a new session.
type ScheduleSessionInput struct {
	Draft session.Draft
}

// ScheduleSessionDeps holds dependencies for ExecuteScheduleSession.
type ScheduleSessionDeps struct {
	Calendar     *scheduling.SessionStore
	SessionStore SessionDurableStore
	Notifier     Notifier // optional: nil skips messages
}

// ExecuteScheduleSession validates the draft, writes the session durably
// and only then applies it to the in-memory calendar, so the calendar
// never shows a session the backend rejected.
// PRE: none
// POST: on success the session exists both durably and in memory;
// on any failure neither holds it
func ExecuteScheduleSession(ctx context.Context, input ScheduleSessionInput, deps ScheduleSessionDeps) (session.Session, error) {
	if err := input.Draft.Validate(); err != nil {
		notifyError(deps.Notifier, "Failed to create session")
		return session.Session{}, err
	}

	sess := session.FromDraft(uuid.New().String(), input.Draft)
	if err := deps.SessionStore.Save(ctx, sess); err != nil {
		notifyError(deps.Notifier, "Failed to create session")
		return session.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}
	if err := deps.Calendar.Insert(sess); err != nil {
		// Keep durable and in-memory state aligned.
		_ = deps.SessionStore.Delete(ctx, sess.ID)
		notifyError(deps.Notifier, "Failed to create session")
		return session.Session{}, err
	}

	slog.Info("session_event", "event", "session_scheduled", "session_id", sess.ID,
		"client_id", sess.ClientID, "start", sess.Start.Format(time.RFC3339), "duration_min", sess.Duration)
	notifySuccess(deps.Notifier, "Session created successfully")
	return sess, nil
}

// RemoveSessionDeps holds dependencies for ExecuteRemoveSession.
type RemoveSessionDeps struct {
	Calendar     *scheduling.SessionStore
	SessionStore SessionDurableStore
	Notifier     Notifier // optional: nil skips messages
}

// ExecuteRemoveSession deletes the session durably and from the calendar.
// Removal is idempotent end to end: an absent id is not an error.
// PRE: none
// POST: the session exists in neither store
func ExecuteRemoveSession(ctx context.Context, sessionID string, deps RemoveSessionDeps) error {
	if err := deps.SessionStore.Delete(ctx, sessionID); err != nil {
		notifyError(deps.Notifier, "Failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if deps.Calendar.Remove(sessionID) {
		slog.Info("session_event", "event", "session_removed", "session_id", sessionID)
		notifySuccess(deps.Notifier, "Session deleted successfully")
	}
	return nil
}

func notifySuccess(n Notifier, message string) {
	if n != nil {
		n.Success(message)
	}
}

func notifyError(n Notifier, message string) {
	if n != nil {
		n.Error(message)
	}
}
