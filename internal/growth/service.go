// Package growth advances plant growth over time and reports maturities.
package growth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/osse101/TrenchGarden_Go/internal/concurrency"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/metrics"
	"github.com/osse101/TrenchGarden_Go/internal/progression"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
	"github.com/osse101/TrenchGarden_Go/internal/tracing"
)

// TickResult summarises one pass over every stored garden
type TickResult struct {
	Gardens int `json:"gardens"`
	Updated int `json:"updated"`
	Matured int `json:"matured"`
	Failed  int `json:"failed"`
}

// Service defines the growth updater
type Service interface {
	// Tick advances every stored garden and persists the ones that changed
	Tick(ctx context.Context) (TickResult, error)
	// UpdateGarden forces a growth pass for one garden and persists it
	UpdateGarden(ctx context.Context, username string) (*domain.Garden, error)
	// Preview applies pending growth to g in memory without saving or publishing
	Preview(g *domain.Garden) GardenResult
}

type service struct {
	repo   repository.Garden
	defs   DefinitionLookup
	engine *Engine
	locks  *concurrency.LockManager
	bus    event.Bus
	now    func() time.Time
}

// NewService creates a new growth service. bus may be nil.
func NewService(repo repository.Garden, defs DefinitionLookup, locks *concurrency.LockManager, bus event.Bus) Service {
	return newService(repo, defs, locks, bus, time.Now)
}

func newService(repo repository.Garden, defs DefinitionLookup, locks *concurrency.LockManager, bus event.Bus, now func() time.Time) *service {
	return &service{
		repo:   repo,
		defs:   defs,
		engine: NewEngine(defs),
		locks:  locks,
		bus:    bus,
		now:    now,
	}
}

// Tick advances every stored garden. One failing garden, including one whose
// snapshot cannot be decoded, is logged and does not stop the pass. Only a
// failure to list usernames is returned.
func (s *service) Tick(ctx context.Context) (TickResult, error) {
	ctx, span := tracing.Start(ctx, SpanTick)
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.GrowthTickDuration.Observe(time.Since(start).Seconds())
	}()

	log := logger.FromContext(ctx)
	log.Debug(LogMsgTickStarted)

	usernames, err := s.repo.ListUsernames(ctx)
	if err != nil {
		log.Error(LogMsgListGardensFailed, "error", err)
		return TickResult{}, fmt.Errorf("failed to list gardens: %w", err)
	}

	result := TickResult{Gardens: len(usernames)}
	metrics.GardensTracked.Set(float64(len(usernames)))

	for _, username := range usernames {
		if ctx.Err() != nil {
			break
		}

		_, matured, err := s.updateGarden(ctx, username)
		if err != nil {
			// renamed or deleted since List
			if errors.Is(err, domain.ErrGardenNotFound) {
				continue
			}
			result.Failed++
			log.Error(LogMsgGardenUpdateFailed, "username", username, "error", err)
			continue
		}
		if matured != nil {
			result.Updated++
			result.Matured += len(matured.Matured)
		}
	}

	span.SetAttributes(
		attribute.Int("gardens", result.Gardens),
		attribute.Int("updated", result.Updated),
		attribute.Int("matured", result.Matured),
	)
	log.Debug(LogMsgTickCompleted,
		"gardens", result.Gardens,
		"updated", result.Updated,
		"matured", result.Matured,
		"failed", result.Failed)

	return result, ctx.Err()
}

// UpdateGarden forces a growth pass for one garden
func (s *service) UpdateGarden(ctx context.Context, username string) (*domain.Garden, error) {
	ctx, span := tracing.Start(ctx, SpanUpdateGarden)
	defer span.End()
	span.SetAttributes(attribute.String("username", username))

	g, _, err := s.updateGarden(ctx, username)
	return g, err
}

// Preview applies growth in memory. Skipping the save loses nothing: the
// stored timestamp is older, so the next persisted pass covers the same span.
func (s *service) Preview(g *domain.Garden) GardenResult {
	return s.engine.AdvanceGarden(g, s.now())
}

// updateGarden advances one garden under its lock and saves it when any plant
// changed stage. Maturity events are published after the lock is released.
// The returned GardenResult is nil when nothing changed.
func (s *service) updateGarden(ctx context.Context, username string) (*domain.Garden, *GardenResult, error) {
	g, res, err := s.advanceLocked(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	if res == nil {
		return g, nil, nil
	}

	s.publishMatured(ctx, username, res.Matured)
	return g, res, nil
}

func (s *service) advanceLocked(ctx context.Context, username string) (*domain.Garden, *GardenResult, error) {
	unlock := s.locks.Lock(username)
	defer unlock()

	g, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	now := s.now()
	res := s.engine.AdvanceGarden(g, now)
	if !res.Changed() {
		return g, nil, nil
	}

	g.UpdatedAt = now
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, nil, fmt.Errorf("failed to save garden %s: %w", username, err)
	}
	return g, &res, nil
}

func (s *service) publishMatured(ctx context.Context, username string, plants []domain.Plant) {
	log := logger.FromContext(ctx)
	for _, p := range plants {
		def, ok := s.defs.Plant(p.Type)
		if !ok {
			log.Warn(LogMsgUnknownPlantDetails, "username", username, "plant_id", p.ID, "type", p.Type)
			continue
		}
		xp := progression.ExperienceForRarity(def.Rarity)
		log.Info(LogMsgPlantMatured, "username", username, "plant_id", p.ID, "type", p.Type, "experience", xp)

		if s.bus == nil {
			continue
		}
		if err := s.bus.Publish(ctx, event.NewPlantMaturedEvent(username, p, def.Rarity, xp)); err != nil {
			log.Error(LogMsgPublishMaturedFailed, "username", username, "plant_id", p.ID, "error", err)
		}
	}
}
