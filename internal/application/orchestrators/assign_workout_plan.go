package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/azizzarr/CoachSync/internal/domain/workoutplan"
)

// WorkoutPlanStore defines the persistence interface for workout plans.
type WorkoutPlanStore interface {
	Save(ctx context.Context, p workoutplan.Plan) error
}

// AssignWorkoutPlanInput carries a backend-generated plan for a client.
type AssignWorkoutPlanInput struct {
	ClientID           string
	WeeklySchedule     []workoutplan.WorkoutDay
	ProgressionPlan    string
	SafetyPrecautions  string
	ProfileDescription string
	Now                time.Time // zero means time.Now
}

// AssignWorkoutPlanDeps holds dependencies for ExecuteAssignWorkoutPlan.
type AssignWorkoutPlanDeps struct {
	PlanStore   WorkoutPlanStore
	ClientStore ClientLookupStore
	Notifier    Notifier // optional: nil skips messages
}

// ExecuteAssignWorkoutPlan validates and stores a generated workout plan
// as the client's latest plan.
// PRE: none
// POST: on success the plan is persisted with a fresh id and GeneratedAt
func ExecuteAssignWorkoutPlan(ctx context.Context, input AssignWorkoutPlanInput, deps AssignWorkoutPlanDeps) (workoutplan.Plan, error) {
	now := input.Now
	if now.IsZero() {
		now = time.Now()
	}

	if _, err := deps.ClientStore.GetByID(ctx, input.ClientID); err != nil {
		notifyError(deps.Notifier, "Client not found")
		return workoutplan.Plan{}, errors.New("client not found")
	}

	plan := workoutplan.Plan{
		ID:                 uuid.New().String(),
		ClientID:           input.ClientID,
		WeeklySchedule:     input.WeeklySchedule,
		ProgressionPlan:    input.ProgressionPlan,
		SafetyPrecautions:  input.SafetyPrecautions,
		ProfileDescription: input.ProfileDescription,
		GeneratedAt:        now,
	}
	if err := plan.Validate(); err != nil {
		notifyError(deps.Notifier, "Failed to assign workout plan")
		return workoutplan.Plan{}, err
	}
	if err := deps.PlanStore.Save(ctx, plan); err != nil {
		notifyError(deps.Notifier, "Failed to assign workout plan")
		return workoutplan.Plan{}, err
	}

	slog.Info("plan_event", "event", "workout_plan_assigned", "client_id", input.ClientID,
		"days", len(plan.WeeklySchedule), "weekly_minutes", plan.TotalWeeklyMinutes())
	notifySuccess(deps.Notifier, "Workout plan assigned")
	return plan, nil
}
