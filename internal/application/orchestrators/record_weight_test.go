package orchestrators

import (
	"context"
	"errors"
	"testing"
	"time"

	clientDomain "github.com/azizzarr/CoachSync/internal/domain/client"
	"github.com/azizzarr/CoachSync/internal/domain/weight"
	"github.com/azizzarr/CoachSync/internal/domain/workoutplan"
)

// mockWeightStore records saved entries.
type mockWeightStore struct {
	saved []weight.Entry
}

func (m *mockWeightStore) Save(_ context.Context, e weight.Entry) error {
	m.saved = append(m.saved, e)
	return nil
}

// mockPlanStore records saved plans.
type mockPlanStore struct {
	saved []workoutplan.Plan
}

func (m *mockPlanStore) Save(_ context.Context, p workoutplan.Plan) error {
	m.saved = append(m.saved, p)
	return nil
}

func seededClients() *mockClientStore {
	return &mockClientStore{clients: map[string]clientDomain.Client{
		"client1": {ID: "client1", Name: "John Doe", Email: "john@example.com", Status: clientDomain.StatusActive},
	}}
}

// TestExecuteRecordWeight_Success persists a valid entry with a fresh id.
func TestExecuteRecordWeight_Success(t *testing.T) {
	store := &mockWeightStore{}
	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	deps := RecordWeightDeps{WeightStore: store, ClientStore: seededClients()}

	entry, err := ExecuteRecordWeight(context.Background(), RecordWeightInput{
		ClientID:   "client1",
		Kg:         82.5,
		MeasuredAt: now.AddDate(0, 0, -1),
		Now:        now,
	}, deps)
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if entry.ID == "" {
		t.Fatal("expected a fresh id")
	}
	if len(store.saved) != 1 || store.saved[0].Kg != 82.5 {
		t.Fatalf("unexpected saved entries: %+v", store.saved)
	}
}

// TestExecuteRecordWeight_UnknownClient rejects before persisting.
func TestExecuteRecordWeight_UnknownClient(t *testing.T) {
	store := &mockWeightStore{}
	deps := RecordWeightDeps{WeightStore: store, ClientStore: seededClients()}

	_, err := ExecuteRecordWeight(context.Background(), RecordWeightInput{
		ClientID:   "ghost",
		Kg:         82.5,
		MeasuredAt: time.Now(),
	}, deps)
	if err == nil {
		t.Fatal("expected error for unknown client")
	}
	if len(store.saved) != 0 {
		t.Fatal("nothing should be persisted for an unknown client")
	}
}

// TestExecuteRecordWeight_Implausible rejects out-of-range measurements.
func TestExecuteRecordWeight_Implausible(t *testing.T) {
	store := &mockWeightStore{}
	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	deps := RecordWeightDeps{WeightStore: store, ClientStore: seededClients()}

	_, err := ExecuteRecordWeight(context.Background(), RecordWeightInput{
		ClientID:   "client1",
		Kg:         5,
		MeasuredAt: now,
		Now:        now,
	}, deps)
	if !errors.Is(err, weight.ErrImplausibleKg) {
		t.Fatalf("expected ErrImplausibleKg, got: %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatal("implausible entry must not be persisted")
	}
}

// TestExecuteAssignWorkoutPlan_Success stores a validated plan.
func TestExecuteAssignWorkoutPlan_Success(t *testing.T) {
	store := &mockPlanStore{}
	now := time.Date(2024, 4, 15, 12, 0, 0, 0, time.UTC)
	deps := AssignWorkoutPlanDeps{PlanStore: store, ClientStore: seededClients()}

	plan, err := ExecuteAssignWorkoutPlan(context.Background(), AssignWorkoutPlanInput{
		ClientID: "client1",
		WeeklySchedule: []workoutplan.WorkoutDay{
			{Day: workoutplan.Monday, WorkoutType: "Strength", DurationMinutes: 45,
				Exercises: []workoutplan.Exercise{{Name: "Squat", Sets: 3, Reps: 8}}},
		},
		ProgressionPlan: "Add 2.5kg per week.",
		Now:             now,
	}, deps)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if plan.ID == "" || !plan.GeneratedAt.Equal(now) {
		t.Fatalf("unexpected plan: %+v", plan)
	}
	if len(store.saved) != 1 {
		t.Fatalf("saved=%d, want 1", len(store.saved))
	}
}

// TestExecuteAssignWorkoutPlan_Invalid rejects an empty schedule.
func TestExecuteAssignWorkoutPlan_Invalid(t *testing.T) {
	store := &mockPlanStore{}
	deps := AssignWorkoutPlanDeps{PlanStore: store, ClientStore: seededClients()}

	_, err := ExecuteAssignWorkoutPlan(context.Background(), AssignWorkoutPlanInput{
		ClientID: "client1",
	}, deps)
	if !errors.Is(err, workoutplan.ErrEmptySchedule) {
		t.Fatalf("expected ErrEmptySchedule, got: %v", err)
	}
	if len(store.saved) != 0 {
		t.Fatal("invalid plan must not be persisted")
	}
}
