package repository

import (
	"context"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// Garden persists garden snapshots keyed by username.
// Get returns domain.ErrGardenNotFound when no snapshot exists.
type Garden interface {
	// Get loads the garden for username
	Get(ctx context.Context, username string) (*domain.Garden, error)

	// Save creates or replaces the snapshot for garden.Username
	Save(ctx context.Context, garden *domain.Garden) error

	// Delete removes the snapshot; deleting a missing garden is not an error
	Delete(ctx context.Context, username string) error

	// List returns every stored garden. Snapshots that cannot be decoded
	// are logged and left out.
	List(ctx context.Context) ([]*domain.Garden, error)

	// ListUsernames returns the username of every stored garden, sorted,
	// without decoding the snapshots
	ListUsernames(ctx context.Context) ([]string, error)

	// Ping checks the backing store is reachable
	Ping(ctx context.Context) error
}
