// Package memory provides an in-process garden store for tests and demos.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// GardenStore keeps snapshots in a map. Stored values are deep copies,
// so callers never share state with the store.
type GardenStore struct {
	mu      sync.RWMutex
	gardens map[string]*domain.Garden
}

// NewGardenStore creates an empty store
func NewGardenStore() *GardenStore {
	return &GardenStore{gardens: make(map[string]*domain.Garden)}
}

// Get loads the garden for username
func (s *GardenStore) Get(ctx context.Context, username string) (*domain.Garden, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.gardens[username]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrGardenNotFound, username)
	}
	return g.Clone(), nil
}

// Save creates or replaces the garden snapshot
func (s *GardenStore) Save(ctx context.Context, garden *domain.Garden) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if garden == nil || garden.Username == "" {
		return fmt.Errorf("%w: garden without username", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c := garden.Clone()
	c.Version = domain.SnapshotVersion
	s.gardens[garden.Username] = c
	return nil
}

// Delete removes the garden snapshot
func (s *GardenStore) Delete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.gardens, username)
	return nil
}

// List returns every stored garden ordered by username
func (s *GardenStore) List(ctx context.Context) ([]*domain.Garden, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Garden, 0, len(s.gardens))
	for _, g := range s.gardens {
		out = append(out, g.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

// ListUsernames returns every stored username in order
func (s *GardenStore) ListUsernames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.gardens))
	for name := range s.gardens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Ping always succeeds
func (s *GardenStore) Ping(ctx context.Context) error {
	return ctx.Err()
}
