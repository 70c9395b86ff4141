package orchestrators

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/azizzarr/CoachSync/internal/application/scheduling"
	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// FinishSessionInput closes out a scheduled session one way or the other.
type FinishSessionInput struct {
	SessionID string
	Outcome   string // session.StatusCompleted or session.StatusCancelled
}

// FinishSessionDeps holds dependencies for ExecuteFinishSession.
type FinishSessionDeps struct {
	Calendar     *scheduling.SessionStore
	SessionStore SessionDurableStore
	Notifier     Notifier // optional: nil skips messages
}

// ExecuteFinishSession transitions a session into a terminal status,
// persisting the transition before applying it to the calendar.
// PRE: none
// POST: on success the session is completed/cancelled in both stores;
// a session already in a terminal status is rejected unchanged
func ExecuteFinishSession(ctx context.Context, input FinishSessionInput, deps FinishSessionDeps) (session.Session, error) {
	prev, err := deps.Calendar.Get(input.SessionID)
	if err != nil {
		notifyError(deps.Notifier, "Session not found")
		return session.Session{}, err
	}
	if !prev.CanTransition(input.Outcome) {
		notifyError(deps.Notifier, "Failed to update session")
		return session.Session{}, session.ErrInvalidTransition
	}

	candidate := prev
	candidate.Status = input.Outcome
	if err := deps.SessionStore.Save(ctx, candidate); err != nil {
		notifyError(deps.Notifier, "Failed to update session")
		return session.Session{}, fmt.Errorf("failed to persist session: %w", err)
	}

	var applied session.Session
	if input.Outcome == session.StatusCompleted {
		applied, err = deps.Calendar.Complete(input.SessionID)
	} else {
		applied, err = deps.Calendar.Cancel(input.SessionID)
	}
	if err != nil {
		_ = deps.SessionStore.Save(ctx, prev)
		notifyError(deps.Notifier, "Failed to update session")
		return session.Session{}, err
	}

	slog.Info("session_event", "event", "session_finished", "session_id", applied.ID, "status", applied.Status)
	notifySuccess(deps.Notifier, "Session updated successfully")
	return applied, nil
}
