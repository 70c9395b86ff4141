package orchestrators

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/azizzarr/CoachSync/internal/application/scheduling"
	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// RescheduleSessionInput carries a time change for an existing session.
// A zero NewStart means resize: only the end time changes.
type RescheduleSessionInput struct {
	SessionID string
	NewStart  time.Time
	NewEnd    time.Time
}

// RescheduleSessionDeps holds dependencies for ExecuteRescheduleSession.
type RescheduleSessionDeps struct {
	Calendar     *scheduling.SessionStore
	SessionStore SessionDurableStore
	Notifier     Notifier // optional: nil skips messages
}

// ExecuteRescheduleSession validates the new range against the stored
// session, persists the change, then applies it to the calendar.
// PRE: none
// POST: on success both stores hold the new range; on failure neither does
func ExecuteRescheduleSession(ctx context.Context, input RescheduleSessionInput, deps RescheduleSessionDeps) (session.Session, error) {
	prev, err := deps.Calendar.Get(input.SessionID)
	if err != nil {
		notifyError(deps.Notifier, "Session not found")
		return session.Session{}, err
	}

	candidate := prev
	if !input.NewStart.IsZero() {
		candidate.Start = input.NewStart
	}
	candidate.End = input.NewEnd
	if err := candidate.Validate(); err != nil {
		notifyError(deps.Notifier, "Failed to update session")
		return session.Session{}, err
	}
	candidate.Duration = session.DurationMinutes(candidate.Start, candidate.End)

	if err := deps.SessionStore.Save(ctx, candidate); err != nil {
		notifyError(deps.Notifier, "Failed to update session")
		return session.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	applied, err := deps.Calendar.Move(input.SessionID, candidate.Start, candidate.End)
	if err != nil {
		// The session disappeared between Get and Move; undo the write.
		_ = deps.SessionStore.Save(ctx, prev)
		notifyError(deps.Notifier, "Session not found")
		return session.Session{}, err
	}

	slog.Info("session_event", "event", "session_rescheduled", "session_id", applied.ID,
		"start", applied.Start.Format(time.RFC3339), "duration_min", applied.Duration)
	notifySuccess(deps.Notifier, "Session updated successfully")
	return applied, nil
}
