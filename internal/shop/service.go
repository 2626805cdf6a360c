// Package shop lists catalog items for a player and handles purchases.
package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/osse101/TrenchGarden_Go/internal/catalog"
	"github.com/osse101/TrenchGarden_Go/internal/concurrency"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
	"github.com/osse101/TrenchGarden_Go/internal/tracing"
)

// FilterAll disables the rarity filter
const FilterAll = "all"

// Service defines the shop business logic
type Service interface {
	// List returns catalog items annotated for username. An empty username
	// annotates against a freshly registered garden.
	List(ctx context.Context, username, rarity string) ([]domain.ShopListing, error)
	// Purchase debits the item price and adds the item to the inventory
	Purchase(ctx context.Context, username, itemID string) (*domain.PurchaseResult, error)
}

type service struct {
	repo    repository.Garden
	catalog *catalog.Catalog
	locks   *concurrency.LockManager
	bus     event.Bus
}

// NewService creates a new shop service. bus may be nil.
func NewService(repo repository.Garden, cat *catalog.Catalog, locks *concurrency.LockManager, bus event.Bus) Service {
	return &service{
		repo:    repo,
		catalog: cat,
		locks:   locks,
		bus:     bus,
	}
}

// parseRarity accepts "", "all" or a known rarity
func parseRarity(s string) (domain.Rarity, bool, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == FilterAll {
		return "", false, nil
	}
	r := domain.Rarity(s)
	if !r.IsValid() {
		return "", false, fmt.Errorf("%w: unknown rarity %q", domain.ErrInvalidInput, s)
	}
	return r, true, nil
}

// List returns the shop for username filtered by rarity
func (s *service) List(ctx context.Context, username, rarity string) ([]domain.ShopListing, error) {
	ctx, span := tracing.Start(ctx, SpanList)
	defer span.End()

	want, filtered, err := parseRarity(rarity)
	if err != nil {
		return nil, err
	}

	level, coins := domain.StartingLevel, domain.StartingCoins
	if username != "" {
		g, err := s.repo.Get(ctx, username)
		if err != nil {
			return nil, err
		}
		level, coins = g.Level, g.Coins
	}

	items := s.catalog.ShopItems()
	listings := make([]domain.ShopListing, 0, len(items))
	for _, item := range items {
		if filtered && item.Rarity != want {
			continue
		}
		listings = append(listings, domain.ShopListing{
			ShopItem:   item,
			Unlocked:   level >= item.UnlockLevel,
			Affordable: coins >= item.Price,
		})
	}
	return listings, nil
}

// Purchase buys itemID for username. Checks run in order: item exists,
// level is high enough, coins cover the price. A failed purchase changes nothing.
func (s *service) Purchase(ctx context.Context, username, itemID string) (*domain.PurchaseResult, error) {
	ctx, span := tracing.Start(ctx, SpanPurchase)
	defer span.End()

	item, err := s.catalog.ResolveShopItem(itemID)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("username", username), attribute.String("item_id", item.ID))

	result, err := s.purchaseLocked(ctx, username, item)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgItemPurchased,
		"username", username,
		"item", item.ID,
		"price", item.Price,
		"coins_remaining", result.CoinsRemaining)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewShopPurchasedEvent(username, item)); err != nil {
			logger.FromContext(ctx).Error(LogMsgPublishPurchaseFailed, "username", username, "error", err)
		}
	}
	return result, nil
}

func (s *service) purchaseLocked(ctx context.Context, username string, item domain.ShopItem) (*domain.PurchaseResult, error) {
	unlock := s.locks.Lock(username)
	defer unlock()

	g, err := s.repo.Get(ctx, username)
	if err != nil {
		return nil, err
	}

	if g.Level < item.UnlockLevel {
		return nil, fmt.Errorf("%w: %s unlocks at level %d, you are level %d", domain.ErrLevelTooLow, item.Name, item.UnlockLevel, g.Level)
	}
	if g.Coins < item.Price {
		return nil, fmt.Errorf("%w: %s costs %d, you have %d", domain.ErrInsufficientFunds, item.Name, item.Price, g.Coins)
	}

	g.Coins -= item.Price
	g.Inventory = append(g.Inventory, item)
	g.UpdatedAt = time.Now()

	if err := s.repo.Save(ctx, g); err != nil {
		return nil, fmt.Errorf("failed to save purchase: %w", err)
	}

	return &domain.PurchaseResult{
		Item:           item,
		CoinsRemaining: g.Coins,
		InventorySize:  len(g.Inventory),
	}, nil
}

// IsPurchaseRejection reports whether err is an expected purchase refusal
// rather than a storage failure
func IsPurchaseRejection(err error) bool {
	return errors.Is(err, domain.ErrShopItemNotFound) ||
		errors.Is(err, domain.ErrLevelTooLow) ||
		errors.Is(err, domain.ErrInsufficientFunds)
}
