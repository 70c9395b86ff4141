package weight

import (
	"context"
	"time"

	"github.com/azizzarr/CoachSync/internal/adapters/storage"
	domain "github.com/azizzarr/CoachSync/internal/domain/weight"
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

// Save inserts or updates a weight entry.
// PRE: e is a valid Entry (Validate() returns nil)
// POST: entry is persisted
func (s *SQLiteStore) Save(ctx context.Context, e domain.Entry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO weight_entry (id, client_id, kg, measured_at, notes, photo_url, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   kg=excluded.kg, measured_at=excluded.measured_at,
		   notes=excluded.notes, photo_url=excluded.photo_url`,
		e.ID, e.ClientID, e.Kg,
		e.MeasuredAt.UTC().Format(time.RFC3339), e.Notes, e.PhotoURL,
		e.CreatedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// ListByClientID returns a client's weight entries, most recent first.
// PRE: clientID is non-empty
// POST: returns entries sorted by measured_at descending
func (s *SQLiteStore) ListByClientID(ctx context.Context, clientID string) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, client_id, kg, measured_at, notes, photo_url, created_at
		 FROM weight_entry WHERE client_id = ? ORDER BY measured_at DESC`, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var measuredStr, createdStr string
		if err := rows.Scan(&e.ID, &e.ClientID, &e.Kg, &measuredStr, &e.Notes, &e.PhotoURL, &createdStr); err != nil {
			return nil, err
		}
		e.MeasuredAt = parseTime(measuredStr)
		e.CreatedAt = parseTime(createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes a weight entry by ID.
// PRE: id is non-empty
// POST: entry is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM weight_entry WHERE id = ?`, id)
	return err
}

func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}
