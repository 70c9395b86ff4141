package orchestrators

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/azizzarr/CoachSync/internal/adapters/email"
	"github.com/azizzarr/CoachSync/internal/application/scheduling"
	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// ReminderSender is the outbound email interface for session reminders.
type ReminderSender interface {
	Send(ctx context.Context, req email.SendRequest) (email.SendResult, error)
	SendBatch(ctx context.Context, reqs []email.SendRequest) ([]email.SendResult, error)
}

// SendSessionReminderDeps holds dependencies for the reminder orchestrators.
type SendSessionReminderDeps struct {
	Calendar    *scheduling.SessionStore
	ClientStore ClientLookupStore
	Sender      ReminderSender
}

// ExecuteSendSessionReminder emails the client of one scheduled session.
// Finished sessions never get reminders.
// PRE: none
// POST: on success exactly one email was accepted by the provider
func ExecuteSendSessionReminder(ctx context.Context, sessionID string, deps SendSessionReminderDeps) error {
	sess, err := deps.Calendar.Get(sessionID)
	if err != nil {
		return err
	}
	if sess.IsFinished() {
		return fmt.Errorf("session %s is %s: %w", sess.ID, sess.Status, session.ErrSessionFinished)
	}

	req, err := composeFor(ctx, sess, deps.ClientStore)
	if err != nil {
		return err
	}
	if _, err := deps.Sender.Send(ctx, req); err != nil {
		return fmt.Errorf("failed to send reminder for session %s: %w", sessionID, err)
	}
	return nil
}

// ExecuteSendDailyReminders emails every client with a scheduled session
// on the given day, in one provider batch. Sessions whose client cannot
// be resolved are skipped, not fatal.
// PRE: day is the calendar day to remind for
// POST: returns the number of reminders accepted by the provider
func ExecuteSendDailyReminders(ctx context.Context, day time.Time, deps SendSessionReminderDeps) (int, error) {
	date := day.Format("2006-01-02")
	var reqs []email.SendRequest
	for sess := range deps.Calendar.Sessions(func(s session.Session) bool {
		return s.Status == session.StatusScheduled && s.Start.In(day.Location()).Format("2006-01-02") == date
	}) {
		req, err := composeFor(ctx, sess, deps.ClientStore)
		if err != nil {
			slog.Warn("reminder_skipped", "session_id", sess.ID, "error", err)
			continue
		}
		reqs = append(reqs, req)
	}
	if len(reqs) == 0 {
		return 0, nil
	}

	results, err := deps.Sender.SendBatch(ctx, reqs)
	if err != nil {
		return len(results), fmt.Errorf("failed to send daily reminders: %w", err)
	}
	return len(results), nil
}

func composeFor(ctx context.Context, sess session.Session, clients ClientLookupStore) (email.SendRequest, error) {
	c, err := clients.GetByID(ctx, sess.ClientID)
	if err != nil {
		return email.SendRequest{}, errors.New("client not found")
	}
	return email.ComposeReminder(sess, c.Name, c.Email)
}
