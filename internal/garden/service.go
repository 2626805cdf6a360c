// Package garden implements the per-player garden actions: registration,
// coins, plant placement and removal, and experience.
package garden

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/osse101/TrenchGarden_Go/internal/catalog"
	"github.com/osse101/TrenchGarden_Go/internal/concurrency"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/growth"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/plot"
	"github.com/osse101/TrenchGarden_Go/internal/progression"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
	"github.com/osse101/TrenchGarden_Go/internal/tracing"
)

// PlacePlantRequest describes a plant to add to a garden
type PlacePlantRequest struct {
	Type     string
	Position domain.Position
	Color    string // empty uses the catalog color
	Rotation float64
}

// Service defines the garden business logic
type Service interface {
	// Register creates a garden with starting coins and the starter plants
	Register(ctx context.Context, username string) (*domain.Garden, error)
	// Rename moves a garden to a new username
	Rename(ctx context.Context, oldName, newName string) (*domain.Garden, error)
	// Get returns the garden with pending growth applied
	Get(ctx context.Context, username string) (*domain.Garden, error)
	AddCoins(ctx context.Context, username string, amount int) (*domain.Garden, error)
	// SpendCoins fails with ErrInsufficientFunds, leaving the balance unchanged
	SpendCoins(ctx context.Context, username string, amount int) (*domain.Garden, error)
	PlacePlant(ctx context.Context, username string, req PlacePlantRequest) (*domain.Plant, error)
	RemovePlant(ctx context.Context, username, plantID string) (*domain.Plant, error)
	GainExperience(ctx context.Context, username string, amount int) (domain.LevelChange, error)
	// UpdateGrowth forces a persisted growth pass for one garden
	UpdateGrowth(ctx context.Context, username string) (*domain.Garden, error)
	// Subscribe registers the garden's event handlers on bus
	Subscribe(bus event.Bus)
}

type service struct {
	repo      repository.Garden
	catalog   *catalog.Catalog
	growthSvc growth.Service
	locks     *concurrency.LockManager
	bus       event.Bus
	now       func() time.Time
}

// NewService creates a new garden service. bus may be nil.
func NewService(
	repo repository.Garden,
	cat *catalog.Catalog,
	growthSvc growth.Service,
	locks *concurrency.LockManager,
	bus event.Bus,
) Service {
	return newService(repo, cat, growthSvc, locks, bus, time.Now)
}

func newService(
	repo repository.Garden,
	cat *catalog.Catalog,
	growthSvc growth.Service,
	locks *concurrency.LockManager,
	bus event.Bus,
	now func() time.Time,
) *service {
	return &service{
		repo:      repo,
		catalog:   cat,
		growthSvc: growthSvc,
		locks:     locks,
		bus:       bus,
		now:       now,
	}
}

// NormalizeUsername trims surrounding space and checks the length limits and
// reserved characters
func NormalizeUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	n := utf8.RuneCountInString(username)
	if n < domain.MinUsernameLength || n > domain.MaxUsernameLength {
		return "", fmt.Errorf("%w: username must be %d-%d characters", domain.ErrInvalidInput, domain.MinUsernameLength, domain.MaxUsernameLength)
	}
	if strings.ContainsAny(username, domain.UsernameReservedChars) {
		return "", fmt.Errorf("%w: username must not contain / or \\", domain.ErrInvalidInput)
	}
	return username, nil
}

// Register creates a new garden
func (s *service) Register(ctx context.Context, username string) (*domain.Garden, error) {
	ctx, span := tracing.Start(ctx, SpanRegister)
	defer span.End()

	username, err := NormalizeUsername(username)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("username", username))

	g, err := s.register(ctx, username)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgGardenRegistered, "username", username, "plants", len(g.Plants))
	s.publish(ctx, event.NewGardenCreatedEvent(username, len(g.Plants)))
	return g, nil
}

func (s *service) register(ctx context.Context, username string) (*domain.Garden, error) {
	unlock := s.locks.Lock(username)
	defer unlock()

	if err := s.ensureAbsent(ctx, username); err != nil {
		return nil, err
	}

	now := s.now()
	g := domain.NewGarden(username, now)
	g.Plants = s.starterPlants(username, now)

	if err := s.repo.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save garden: %w", err)
	}
	return g, nil
}

// ensureAbsent returns ErrGardenExists when username already has a garden
func (s *service) ensureAbsent(ctx context.Context, username string) error {
	_, err := s.repo.Get(ctx, username)
	switch {
	case err == nil:
		return fmt.Errorf("%w: %s", domain.ErrGardenExists, username)
	case errors.Is(err, domain.ErrGardenNotFound):
		return nil
	default:
		return fmt.Errorf("failed to check garden %s: %w", username, err)
	}
}

func (s *service) starterPlants(username string, now time.Time) []domain.Plant {
	plants := make([]domain.Plant, 0, len(starterPlants))
	for i, sp := range starterPlants {
		t := domain.PlantType(sp.Type)
		def, ok := s.catalog.Plant(t)
		if !ok {
			continue
		}
		plants = append(plants, domain.Plant{
			ID:               fmt.Sprintf("%s%d", domain.InitialPlantIDPrefix, i+1),
			Type:             t,
			Position:         domain.Position{X: sp.Position[0], Y: domain.GroundHeight, Z: sp.Position[1]},
			GrowthStage:      sp.Stage,
			Color:            def.Color,
			PlantedAt:        now.Add(-sp.Age),
			LastGrowthUpdate: now,
			Owner:            username,
		})
	}
	return plants
}

// Rename moves the garden stored under oldName to newName
func (s *service) Rename(ctx context.Context, oldName, newName string) (*domain.Garden, error) {
	ctx, span := tracing.Start(ctx, SpanRename)
	defer span.End()

	newName, err := NormalizeUsername(newName)
	if err != nil {
		return nil, err
	}
	if oldName == newName {
		return s.Get(ctx, oldName)
	}

	unlock := s.locks.LockPair(oldName, newName)
	defer unlock()

	g, err := s.repo.Get(ctx, oldName)
	if err != nil {
		return nil, err
	}
	if err := s.ensureAbsent(ctx, newName); err != nil {
		return nil, err
	}

	g.Username = newName
	for i := range g.Plants {
		g.Plants[i].Owner = newName
	}
	g.UpdatedAt = s.now()

	if err := s.repo.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save renamed garden: %w", err)
	}
	// the old garden stays authoritative until it is gone
	if err := s.repo.Delete(ctx, oldName); err != nil {
		if rbErr := s.repo.Delete(ctx, newName); rbErr != nil {
			logger.FromContext(ctx).Error(LogMsgRenameRollbackFailed, "from", oldName, "to", newName, "error", rbErr)
		}
		return nil, fmt.Errorf("failed to remove old garden %s: %w", oldName, err)
	}

	logger.FromContext(ctx).Info(LogMsgGardenRenamed, "from", oldName, "to", newName)
	s.publish(ctx, event.NewGardenRenamedEvent(oldName, newName))
	return g, nil
}

// Get loads the garden and applies pending growth in memory
func (s *service) Get(ctx context.Context, username string) (*domain.Garden, error) {
	ctx, span := tracing.Start(ctx, SpanGet)
	defer span.End()

	unlock := s.locks.Lock(username)
	defer unlock()

	g, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	s.growthSvc.Preview(g)
	return g, nil
}

// mutate runs fn on a fresh copy of the garden under its lock and saves the
// result. When fn fails nothing is saved.
func (s *service) mutate(ctx context.Context, username string, fn func(g *domain.Garden) error) (*domain.Garden, error) {
	unlock := s.locks.Lock(username)
	defer unlock()

	g, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := fn(g); err != nil {
		return nil, err
	}

	g.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save garden %s: %w", username, err)
	}
	return g, nil
}

// AddCoins credits amount coins
func (s *service) AddCoins(ctx context.Context, username string, amount int) (*domain.Garden, error) {
	ctx, span := tracing.Start(ctx, SpanAddCoins)
	defer span.End()

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return s.mutate(ctx, username, func(g *domain.Garden) error {
		g.Coins += amount
		return nil
	})
}

// SpendCoins debits amount coins
func (s *service) SpendCoins(ctx context.Context, username string, amount int) (*domain.Garden, error) {
	ctx, span := tracing.Start(ctx, SpanSpendCoins)
	defer span.End()

	if amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}
	return s.mutate(ctx, username, func(g *domain.Garden) error {
		if g.Coins < amount {
			return fmt.Errorf("%w: need %d, have %d", domain.ErrInsufficientFunds, amount, g.Coins)
		}
		g.Coins -= amount
		return nil
	})
}

// PlacePlant adds a new stage-1 plant
func (s *service) PlacePlant(ctx context.Context, username string, req PlacePlantRequest) (*domain.Plant, error) {
	ctx, span := tracing.Start(ctx, SpanPlacePlant)
	defer span.End()

	def, err := s.catalog.Resolve(req.Type)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("username", username), attribute.String("plant_type", string(def.Type)))

	pos := req.Position
	if pos.Y == 0 {
		pos.Y = domain.GroundHeight
	}
	color := req.Color
	if color == "" {
		color = def.Color
	}

	var placed domain.Plant
	_, err = s.mutate(ctx, username, func(g *domain.Garden) error {
		if !s.catalog.IsDefault(def.Type) && !g.OwnsType(def.Type) {
			return fmt.Errorf("%w: buy %s in the shop first", domain.ErrPlantLocked, def.Name)
		}
		if err := plot.Validate(g.Plants, pos); err != nil {
			return err
		}

		now := s.now()
		placed = domain.Plant{
			ID:               domain.PlantIDPrefix + uuid.NewString(),
			Type:             def.Type,
			Position:         pos,
			GrowthStage:      domain.MinGrowthStage,
			Color:            color,
			Rotation:         plot.NormalizeRotation(req.Rotation),
			PlantedAt:        now,
			LastGrowthUpdate: now,
			Owner:            g.Username,
		}
		g.Plants = append(g.Plants, placed)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPlantPlaced, "username", username, "plant_id", placed.ID, "type", placed.Type)
	s.publish(ctx, event.NewPlantPlacedEvent(username, placed))
	return &placed, nil
}

// RemovePlant deletes the plant with plantID
func (s *service) RemovePlant(ctx context.Context, username, plantID string) (*domain.Plant, error) {
	ctx, span := tracing.Start(ctx, SpanRemovePlant)
	defer span.End()

	var removed domain.Plant
	_, err := s.mutate(ctx, username, func(g *domain.Garden) error {
		i := g.FindPlant(plantID)
		if i < 0 {
			return fmt.Errorf("%w: %s", domain.ErrPlantNotFound, plantID)
		}
		removed = g.Plants[i]
		g.Plants = append(g.Plants[:i], g.Plants[i+1:]...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgPlantRemoved, "username", username, "plant_id", plantID)
	s.publish(ctx, event.NewPlantRemovedEvent(username, removed))
	return &removed, nil
}

// GainExperience awards experience and resolves level-ups.
// One garden.level_up event is published per level gained.
func (s *service) GainExperience(ctx context.Context, username string, amount int) (domain.LevelChange, error) {
	ctx, span := tracing.Start(ctx, SpanGainExperience)
	defer span.End()

	if amount <= 0 {
		return domain.LevelChange{}, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, amount)
	}

	var change domain.LevelChange
	_, err := s.mutate(ctx, username, func(g *domain.Garden) error {
		change = progression.Apply(g, amount)
		return nil
	})
	if err != nil {
		return domain.LevelChange{}, err
	}

	log := logger.FromContext(ctx)
	log.Info(LogMsgExperienceGained, "username", username, "amount", amount, "level", change.NewLevel, "experience", change.Experience)

	for level := change.OldLevel; level < change.NewLevel; level++ {
		step := domain.LevelChange{
			OldLevel:   level,
			NewLevel:   level + 1,
			Experience: change.Experience,
			Coins:      change.Coins - (change.NewLevel-level-1)*domain.LevelUpCoinBonus,
		}
		log.Info(LogMsgLevelUp, "username", username, "level", step.NewLevel)
		s.publish(ctx, event.NewGardenLevelUpEvent(username, step))
	}
	return change, nil
}

// UpdateGrowth forces a persisted growth pass
func (s *service) UpdateGrowth(ctx context.Context, username string) (*domain.Garden, error) {
	ctx, span := tracing.Start(ctx, SpanUpdateGrowth)
	defer span.End()

	return s.growthSvc.UpdateGarden(ctx, username)
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
