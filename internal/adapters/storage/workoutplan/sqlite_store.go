package workoutplan

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/azizzarr/CoachSync/internal/adapters/storage"
	domain "github.com/azizzarr/CoachSync/internal/domain/workoutplan"
)

// ErrNotFound is returned when a client has no stored plan.
var ErrNotFound = errors.New("workout plan not found")

// SQLiteStore implements Store using SQLite. The weekly schedule is a
// nested document generated by the backend, stored as a JSON column.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
// PRE: db is a valid, open database connection with the schema applied
// POST: store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts or updates a workout plan.
// PRE: p is a valid Plan (Validate() returns nil)
// POST: plan is persisted
func (s *SQLiteStore) Save(ctx context.Context, p domain.Plan) error {
	schedule, err := json.Marshal(p.WeeklySchedule)
	if err != nil {
		return fmt.Errorf("failed to encode weekly schedule: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO workout_plan (id, client_id, weekly_schedule, progression_plan, safety_precautions, profile_description, generated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   weekly_schedule=excluded.weekly_schedule,
		   progression_plan=excluded.progression_plan,
		   safety_precautions=excluded.safety_precautions,
		   profile_description=excluded.profile_description,
		   generated_at=excluded.generated_at`,
		p.ID, p.ClientID, string(schedule),
		p.ProgressionPlan, p.SafetyPrecautions, p.ProfileDescription,
		p.GeneratedAt.UTC().Format(time.RFC3339),
	)
	return err
}

// GetLatestByClientID retrieves the most recently generated plan for a client.
// PRE: clientID is non-empty
// POST: returns ErrNotFound if the client has no plan
func (s *SQLiteStore) GetLatestByClientID(ctx context.Context, clientID string) (domain.Plan, error) {
	var p domain.Plan
	var scheduleStr, generatedStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT id, client_id, weekly_schedule, progression_plan, safety_precautions, profile_description, generated_at
		 FROM workout_plan WHERE client_id = ? ORDER BY generated_at DESC LIMIT 1`, clientID,
	).Scan(&p.ID, &p.ClientID, &scheduleStr, &p.ProgressionPlan, &p.SafetyPrecautions, &p.ProfileDescription, &generatedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plan{}, ErrNotFound
	}
	if err != nil {
		return domain.Plan{}, err
	}
	if err := json.Unmarshal([]byte(scheduleStr), &p.WeeklySchedule); err != nil {
		return domain.Plan{}, fmt.Errorf("failed to decode weekly schedule: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, generatedStr); err == nil {
		p.GeneratedAt = t
	}
	return p, nil
}

// Delete removes a workout plan by ID.
// PRE: id is non-empty
// POST: plan is removed from storage
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM workout_plan WHERE id = ?`, id)
	return err
}
