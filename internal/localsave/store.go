// Package localsave stores garden snapshots in the per-user application
// data directory, the desktop counterpart of browser local storage.
package localsave

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/quasilyte/gdata/v2"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
)

const (
	// storageObject is the gdata object holding every snapshot, named after
	// the local-storage key the browser client used
	storageObject = "trench-garden-storage"

	// indexProperty lists the usernames with a stored snapshot
	indexProperty = "index"

	// gardenPropertyPrefix keeps garden props apart from the index
	gardenPropertyPrefix = "garden_"
)

// GardenStore implements repository.Garden on top of a gdata.Manager
type GardenStore struct {
	mu      sync.Mutex
	manager *gdata.Manager
}

// Open creates the gdata manager for appName
func Open(appName string) (*GardenStore, error) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open local save %q: %w", appName, err)
	}
	return NewGardenStore(manager), nil
}

// NewGardenStore wraps an existing manager
func NewGardenStore(manager *gdata.Manager) *GardenStore {
	return &GardenStore{manager: manager}
}

func gardenProperty(username string) string {
	return gardenPropertyPrefix + username
}

// storable reports whether username can be used as a prop name
func storable(username string) bool {
	return username != "" && !strings.ContainsAny(username, domain.UsernameReservedChars)
}

// Get loads the garden for username
func (s *GardenStore) Get(ctx context.Context, username string) (*domain.Garden, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(username)
}

func (s *GardenStore) load(username string) (*domain.Garden, error) {
	if !storable(username) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGardenNotFound, username)
	}
	prop := gardenProperty(username)
	if !s.manager.ObjectPropExists(storageObject, prop) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGardenNotFound, username)
	}
	data, err := s.manager.LoadObjectProp(storageObject, prop)
	if err != nil {
		return nil, fmt.Errorf("load garden %s: %w", username, err)
	}
	// deleted gardens leave an empty prop behind
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrGardenNotFound, username)
	}
	return repository.DecodeSnapshot(data)
}

// Save creates or replaces the garden snapshot
func (s *GardenStore) Save(ctx context.Context, garden *domain.Garden) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := repository.EncodeSnapshot(garden)
	if err != nil {
		return err
	}
	if !storable(garden.Username) {
		return fmt.Errorf("%w: username %q cannot be stored locally", domain.ErrInvalidInput, garden.Username)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.manager.SaveObjectProp(storageObject, gardenProperty(garden.Username), data); err != nil {
		return fmt.Errorf("save garden %s: %w", garden.Username, err)
	}

	index, err := s.readIndex()
	if err != nil {
		return err
	}
	if _, ok := index[garden.Username]; !ok {
		index[garden.Username] = struct{}{}
		return s.writeIndex(index)
	}
	return nil
}

// Delete removes the garden from the index and blanks its prop
func (s *GardenStore) Delete(ctx context.Context, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return err
	}
	if _, ok := index[username]; !ok {
		return nil
	}

	if err := s.manager.SaveObjectProp(storageObject, gardenProperty(username), []byte{}); err != nil {
		return fmt.Errorf("delete garden %s: %w", username, err)
	}
	delete(index, username)
	return s.writeIndex(index)
}

// List returns every indexed garden ordered by username
func (s *GardenStore) List(ctx context.Context) ([]*domain.Garden, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Garden, 0, len(index))
	for _, name := range sortedNames(index) {
		g, err := s.load(name)
		if err != nil {
			logger.FromContext(ctx).Warn(repository.LogMsgSnapshotSkipped, "username", name, "error", err)
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// ListUsernames returns the indexed usernames in order
func (s *GardenStore) ListUsernames(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	index, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	return sortedNames(index), nil
}

// Ping checks the index is readable
func (s *GardenStore) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.readIndex()
	return err
}

func (s *GardenStore) readIndex() (map[string]struct{}, error) {
	index := make(map[string]struct{})
	if !s.manager.ObjectPropExists(storageObject, indexProperty) {
		return index, nil
	}
	data, err := s.manager.LoadObjectProp(storageObject, indexProperty)
	if err != nil {
		return nil, fmt.Errorf("load garden index: %w", err)
	}
	var names []string
	if len(data) > 0 {
		if err := json.Unmarshal(data, &names); err != nil {
			return nil, fmt.Errorf("decode garden index: %w", err)
		}
	}
	for _, n := range names {
		index[n] = struct{}{}
	}
	return index, nil
}

func (s *GardenStore) writeIndex(index map[string]struct{}) error {
	data, err := json.Marshal(sortedNames(index))
	if err != nil {
		return fmt.Errorf("encode garden index: %w", err)
	}
	if err := s.manager.SaveObjectProp(storageObject, indexProperty, data); err != nil {
		return fmt.Errorf("save garden index: %w", err)
	}
	return nil
}

func sortedNames(index map[string]struct{}) []string {
	names := make([]string, 0, len(index))
	for n := range index {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
