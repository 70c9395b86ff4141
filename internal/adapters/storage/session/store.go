package session

import (
	"context"

	domain "github.com/azizzarr/CoachSync/internal/domain/session"
)

// Store persists Session state on behalf of the in-memory scheduling core.
type Store interface {
	Save(ctx context.Context, s domain.Session) error
	GetByID(ctx context.Context, id string) (domain.Session, error)
	List(ctx context.Context) ([]domain.Session, error)
	ListByClientID(ctx context.Context, clientID string) ([]domain.Session, error)
	Delete(ctx context.Context, id string) error
}
