package client

import (
	"context"
	"database/sql"
	"errors"

	"github.com/azizzarr/CoachSync/internal/adapters/storage"
	domain "github.com/azizzarr/CoachSync/internal/domain/client"
)

// ErrNotFound is returned when no client matches the given id.
var ErrNotFound = errors.New("client not found")

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

// Save inserts or updates a client.
// PRE: c is a valid Client (Validate() returns nil)
// POST: client is persisted
func (s *SQLiteStore) Save(ctx context.Context, c domain.Client) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO client (id, name, email, trainer_name, status)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, email=excluded.email,
		   trainer_name=excluded.trainer_name, status=excluded.status`,
		c.ID, c.Name, c.Email, c.TrainerName, c.Status,
	)
	return err
}

// GetByID retrieves a client by ID.
// PRE: id is non-empty
// POST: returns ErrNotFound if no row matches
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.Client, error) {
	var c domain.Client
	err := s.db.QueryRowContext(ctx,
		`SELECT id, name, email, trainer_name, status FROM client WHERE id = ?`, id,
	).Scan(&c.ID, &c.Name, &c.Email, &c.TrainerName, &c.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Client{}, ErrNotFound
	}
	return c, err
}

// List returns all clients ordered by name.
// PRE: none
// POST: returns clients sorted by name ascending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Client, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, email, trainer_name, status FROM client ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var c domain.Client
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.TrainerName, &c.Status); err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// Delete removes a client by ID.
// PRE: id is non-empty
// POST: client is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM client WHERE id = ?`, id)
	return err
}
