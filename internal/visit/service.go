// Package visit serves read-only views of other players' gardens.
package visit

import (
	"context"
	"sort"
	"time"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/growth"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
	"github.com/osse101/TrenchGarden_Go/internal/tracing"
)

// Service defines the garden visiting logic
type Service interface {
	// View returns the public view of one garden, growth applied
	View(ctx context.Context, username string) (*domain.GardenView, error)
	// Featured ranks gardens by level, then plant count, then username
	Featured(ctx context.Context, limit int) ([]domain.GardenView, error)
	// Subscribe invalidates the featured cache on ranking-relevant events
	Subscribe(bus event.Bus)
}

type service struct {
	repo      repository.Garden
	growthSvc growth.Service
	cache     *featuredCache
}

// NewService creates a new visit service
func NewService(repo repository.Garden, growthSvc growth.Service, cacheTTL time.Duration) Service {
	return &service{
		repo:      repo,
		growthSvc: growthSvc,
		cache:     newFeaturedCache(cacheTTL),
	}
}

// View returns the public view of username's garden
func (s *service) View(ctx context.Context, username string) (*domain.GardenView, error) {
	ctx, span := tracing.Start(ctx, SpanView)
	defer span.End()

	g, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	s.growthSvc.Preview(g)

	return &domain.GardenView{
		Username:   g.Username,
		Level:      g.Level,
		PlantCount: len(g.Plants),
		Plants:     g.Plants,
	}, nil
}

// ClampLimit maps a requested limit into [1, MaxFeaturedLimit], using the
// default for non-positive values
func ClampLimit(limit int) int {
	switch {
	case limit <= 0:
		return domain.DefaultFeaturedLimit
	case limit > domain.MaxFeaturedLimit:
		return domain.MaxFeaturedLimit
	default:
		return limit
	}
}

// Featured returns the top gardens. Results are cached per limit.
func (s *service) Featured(ctx context.Context, limit int) ([]domain.GardenView, error) {
	ctx, span := tracing.Start(ctx, SpanFeatured)
	defer span.End()

	limit = ClampLimit(limit)
	if views, ok := s.cache.Get(limit); ok {
		return views, nil
	}

	gardens, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := rank(gardens, limit)
	s.cache.Set(limit, views)
	logger.FromContext(ctx).Debug(LogMsgFeaturedComputed, "limit", limit, "count", len(views))
	return views, nil
}

// rank orders gardens by level desc, plant count desc, username asc
func rank(gardens []*domain.Garden, limit int) []domain.GardenView {
	views := make([]domain.GardenView, 0, len(gardens))
	for _, g := range gardens {
		views = append(views, domain.GardenView{
			Username:   g.Username,
			Level:      g.Level,
			PlantCount: len(g.Plants),
		})
	}

	sort.Slice(views, func(i, j int) bool {
		a, b := views[i], views[j]
		if a.Level != b.Level {
			return a.Level > b.Level
		}
		if a.PlantCount != b.PlantCount {
			return a.PlantCount > b.PlantCount
		}
		return a.Username < b.Username
	})

	if len(views) > limit {
		views = views[:limit]
	}
	return views
}

// Subscribe clears the featured cache whenever a ranking input changes
func (s *service) Subscribe(bus event.Bus) {
	invalidate := func(ctx context.Context, evt event.Event) error {
		s.cache.Clear()
		return nil
	}
	for _, t := range []event.Type{event.GardenCreated, event.GardenRenamed, event.PlantPlaced, event.PlantRemoved, event.GardenLevelUp} {
		bus.Subscribe(t, invalidate)
	}
}
