package workoutplan

import (
	"context"

	domain "github.com/azizzarr/CoachSync/internal/domain/workoutplan"
)

// Store persists WorkoutPlan state.
type Store interface {
	Save(ctx context.Context, p domain.Plan) error
	GetLatestByClientID(ctx context.Context, clientID string) (domain.Plan, error)
	Delete(ctx context.Context, id string) error
}
