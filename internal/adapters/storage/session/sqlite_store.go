package session

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/azizzarr/CoachSync/internal/adapters/storage"
	domain "github.com/azizzarr/CoachSync/internal/domain/session"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
// PRE: db is a valid, open database connection with the schema applied
// POST: store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts or updates a session.
// PRE: s is a valid Session (Validate() returns nil)
// POST: session is persisted
func (s *SQLiteStore) Save(ctx context.Context, sess domain.Session) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session (id, title, start_at, end_at, client_id, status, description, location, duration_min)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   title=excluded.title, start_at=excluded.start_at, end_at=excluded.end_at,
		   client_id=excluded.client_id, status=excluded.status,
		   description=excluded.description, location=excluded.location,
		   duration_min=excluded.duration_min`,
		sess.ID, sess.Title,
		sess.Start.UTC().Format(time.RFC3339), sess.End.UTC().Format(time.RFC3339),
		sess.ClientID, sess.Status, sess.Description, sess.Location, sess.Duration,
	)
	return err
}

// GetByID retrieves a session by ID.
// PRE: id is non-empty
// POST: returns domain.ErrNotFound if no row matches
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, title, start_at, end_at, client_id, status, description, location, duration_min
		 FROM session WHERE id = ?`, id)
	sess, err := scanSession(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Session{}, domain.ErrNotFound
	}
	return sess, err
}

// List returns all sessions ordered by start time.
// PRE: none
// POST: returns sessions sorted by start_at ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, start_at, end_at, client_id, status, description, location, duration_min
		 FROM session ORDER BY start_at ASC`)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// ListByClientID returns all sessions for one client ordered by start time.
// PRE: clientID is non-empty
// POST: returns matching sessions sorted by start_at ascending
func (s *SQLiteStore) ListByClientID(ctx context.Context, clientID string) ([]domain.Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, start_at, end_at, client_id, status, description, location, duration_min
		 FROM session WHERE client_id = ? ORDER BY start_at ASC`, clientID)
	if err != nil {
		return nil, err
	}
	return collectSessions(rows)
}

// Delete removes a session by ID.
// PRE: id is non-empty
// POST: session is removed from storage; deleting an absent id is a no-op
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session WHERE id = ?`, id)
	return err
}

func scanSession(scan func(dest ...any) error) (domain.Session, error) {
	var sess domain.Session
	var startStr, endStr string
	err := scan(&sess.ID, &sess.Title, &startStr, &endStr,
		&sess.ClientID, &sess.Status, &sess.Description, &sess.Location, &sess.Duration)
	if err != nil {
		return sess, err
	}
	sess.Start = parseTime(startStr)
	sess.End = parseTime(endStr)
	return sess, nil
}

func collectSessions(rows *sql.Rows) ([]domain.Session, error) {
	defer rows.Close()
	var sessions []domain.Session
	for rows.Next() {
		sess, err := scanSession(rows.Scan)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
