package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLDB is the database interface used by all stores.
type SQLDB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Compile-time check that *sql.DB satisfies SQLDB.
var _ SQLDB = (*sql.DB)(nil)

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: All tables are created, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	// Enable foreign key enforcement
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS client (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		trainer_name TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS session (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		start_at TEXT NOT NULL,
		end_at TEXT NOT NULL,
		client_id TEXT NOT NULL,
		status TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		duration_min INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS weight_entry (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		kg REAL NOT NULL,
		measured_at TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		photo_url TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		FOREIGN KEY (client_id) REFERENCES client(id)
	);

	CREATE TABLE IF NOT EXISTS workout_plan (
		id TEXT PRIMARY KEY,
		client_id TEXT NOT NULL,
		weekly_schedule TEXT NOT NULL,
		progression_plan TEXT NOT NULL DEFAULT '',
		safety_precautions TEXT NOT NULL DEFAULT '',
		profile_description TEXT NOT NULL DEFAULT '',
		generated_at TEXT NOT NULL,
		FOREIGN KEY (client_id) REFERENCES client(id)
	);

	CREATE INDEX IF NOT EXISTS idx_session_start ON session(start_at);
	CREATE INDEX IF NOT EXISTS idx_weight_client ON weight_entry(client_id, measured_at);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
