package weight

import (
	"context"

	domain "github.com/azizzarr/CoachSync/internal/domain/weight"
)

// Store persists WeightEntry state.
type Store interface {
	Save(ctx context.Context, e domain.Entry) error
	ListByClientID(ctx context.Context, clientID string) ([]domain.Entry, error)
	Delete(ctx context.Context, id string) error
}
