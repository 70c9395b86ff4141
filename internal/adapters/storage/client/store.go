package client

import (
	"context"

	domain "github.com/azizzarr/CoachSync/internal/domain/client"
)

// Store persists Client state.
type Store interface {
	Save(ctx context.Context, c domain.Client) error
	GetByID(ctx context.Context, id string) (domain.Client, error)
	List(ctx context.Context) ([]domain.Client, error)
	Delete(ctx context.Context, id string) error
}
