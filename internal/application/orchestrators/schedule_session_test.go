package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/azizzarr/CoachSync/internal/application/scheduling"
	clientDomain "github.com/azizzarr/CoachSync/internal/domain/client"
	"github.com/azizzarr/CoachSync/internal/domain/session"
)

// mockDurableStore records saves and deletes and can fail on demand.
type mockDurableStore struct {
	saved   map[string]session.Session
	deleted []string
	saveErr error
}

func newMockDurableStore() *mockDurableStore {
	return &mockDurableStore{saved: make(map[string]session.Session)}
}

func (m *mockDurableStore) Save(_ context.Context, s session.Session) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved[s.ID] = s
	return nil
}

func (m *mockDurableStore) Delete(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.saved, id)
	return nil
}

// mockClientStore resolves seeded clients by id.
type mockClientStore struct {
	clients map[string]clientDomain.Client
}

func (m *mockClientStore) GetByID(_ context.Context, id string) (clientDomain.Client, error) {
	c, ok := m.clients[id]
	if !ok {
		return clientDomain.Client{}, errors.New("client not found")
	}
	return c, nil
}

func validInput(start time.Time) ScheduleSessionInput {
	return ScheduleSessionInput{Draft: session.Draft{
		Title:    "Morning Session",
		Start:    start,
		End:      start.Add(time.Hour),
		ClientID: "client1",
	}}
}

// TestExecuteScheduleSession_Success persists then applies in memory.
func TestExecuteScheduleSession_Success(t *testing.T) {
	calendar := scheduling.NewSessionStore()
	durable := newMockDurableStore()
	deps := ScheduleSessionDeps{Calendar: calendar, SessionStore: durable}
	start := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)

	sess, err := ExecuteScheduleSession(context.Background(), validInput(start), deps)
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}
	if sess.Status != session.StatusScheduled || sess.Duration != 60 {
		t.Fatalf("unexpected session: %+v", sess)
	}
	if _, ok := durable.saved[sess.ID]; !ok {
		t.Fatal("session not persisted")
	}
	if _, err := calendar.Get(sess.ID); err != nil {
		t.Fatalf("session not in calendar: %v", err)
	}
}

// TestExecuteScheduleSession_InvalidDraft rejects without touching stores.
func TestExecuteScheduleSession_InvalidDraft(t *testing.T) {
	calendar := scheduling.NewSessionStore()
	durable := newMockDurableStore()
	deps := ScheduleSessionDeps{Calendar: calendar, SessionStore: durable}
	start := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)

	input := validInput(start)
	input.Draft.End = start.Add(-time.Hour)
	_, err := ExecuteScheduleSession(context.Background(), input, deps)
	var verr *session.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got: %v", err)
	}
	if len(durable.saved) != 0 || len(calendar.List()) != 0 {
		t.Fatal("rejected draft must not reach either store")
	}
}

// TestExecuteScheduleSession_PersistFailure keeps the calendar clean.
func TestExecuteScheduleSession_PersistFailure(t *testing.T) {
	calendar := scheduling.NewSessionStore()
	durable := newMockDurableStore()
	durable.saveErr = errors.New("disk full")
	deps := ScheduleSessionDeps{Calendar: calendar, SessionStore: durable}
	start := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)

	if _, err := ExecuteScheduleSession(context.Background(), validInput(start), deps); err == nil {
		t.Fatal("expected persistence error")
	}
	if len(calendar.List()) != 0 {
		t.Fatal("calendar must not show a session the backend rejected")
	}
}

// TestExecuteRemoveSession_Idempotent removes once, tolerates twice.
func TestExecuteRemoveSession_Idempotent(t *testing.T) {
	calendar := scheduling.NewSessionStore()
	durable := newMockDurableStore()
	start := time.Date(2024, 4, 15, 9, 0, 0, 0, time.UTC)
	sess, err := ExecuteScheduleSession(context.Background(), validInput(start),
		ScheduleSessionDeps{Calendar: calendar, SessionStore: durable})
	if err != nil {
		t.Fatalf("schedule failed: %v", err)
	}

	deps := RemoveSessionDeps{Calendar: calendar, SessionStore: durable}
	if err := ExecuteRemoveSession(context.Background(), sess.ID, deps); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if err := ExecuteRemoveSession(context.Background(), sess.ID, deps); err != nil {
		t.Fatalf("second remove should be a no-op, got: %v", err)
	}
	if len(calendar.List()) != 0 || len(durable.saved) != 0 {
		t.Fatal("session should be gone from both stores")
	}
}
