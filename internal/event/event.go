package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}
	return nil
}

// Garden event types
const (
	GardenCreated   Type = domain.EventTypeGardenCreated
	GardenRenamed   Type = domain.EventTypeGardenRenamed
	PlantPlaced     Type = domain.EventTypePlantPlaced
	PlantRemoved    Type = domain.EventTypePlantRemoved
	PlantMatured    Type = domain.EventTypePlantMatured
	GardenLevelUp   Type = domain.EventTypeGardenLevelUp
	ShopPurchased   Type = domain.EventTypeShopPurchased
	WalletConnected Type = domain.EventTypeWalletConnected
)

// Type-safe event constructors

// NewGardenCreatedEvent creates a garden.created event
func NewGardenCreatedEvent(username string, plantCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GardenCreated,
		Payload: domain.GardenCreatedPayload{
			Username:   username,
			PlantCount: plantCount,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewGardenRenamedEvent creates a garden.renamed event
func NewGardenRenamedEvent(oldName, newName string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GardenRenamed,
		Payload: domain.GardenRenamedPayload{
			Username:    newName,
			OldUsername: oldName,
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewPlantPlacedEvent creates a plant.placed event
func NewPlantPlacedEvent(username string, plant domain.Plant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantPlaced,
		Payload: domain.PlantPlacedPayload{
			Username:  username,
			PlantID:   plant.ID,
			PlantType: plant.Type,
			Position:  plant.Position,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPlantRemovedEvent creates a plant.removed event
func NewPlantRemovedEvent(username string, plant domain.Plant) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantRemoved,
		Payload: domain.PlantRemovedPayload{
			Username:  username,
			PlantID:   plant.ID,
			PlantType: plant.Type,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewPlantMaturedEvent creates a plant.matured event carrying the experience to award
func NewPlantMaturedEvent(username string, plant domain.Plant, rarity domain.Rarity, experience int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    PlantMatured,
		Payload: domain.PlantMaturedPayload{
			Username:   username,
			PlantID:    plant.ID,
			PlantType:  plant.Type,
			Rarity:     rarity,
			Experience: experience,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewGardenLevelUpEvent creates a garden.level_up event
func NewGardenLevelUpEvent(username string, change domain.LevelChange) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    GardenLevelUp,
		Payload: domain.GardenLevelUpPayload{
			Username:  username,
			OldLevel:  change.OldLevel,
			NewLevel:  change.NewLevel,
			Coins:     change.Coins,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewShopPurchasedEvent creates a shop.purchased event
func NewShopPurchasedEvent(username string, item domain.ShopItem) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    ShopPurchased,
		Payload: domain.ShopPurchasedPayload{
			Username:  username,
			ItemID:    item.ID,
			PlantType: item.Type,
			Price:     item.Price,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewWalletConnectedEvent creates a wallet.connected event
func NewWalletConnectedEvent(conn domain.WalletConnection) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    WalletConnected,
		Payload: domain.WalletConnectedPayload{
			Username:  conn.Username,
			Address:   conn.Address,
			Tokens:    conn.Tokens,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// Redeliverer is a Bus that can run a subset of an event's handlers again.
// Positions are those reported by a DeliveryError.
type Redeliverer interface {
	Redeliver(ctx context.Context, event Event, handlers []int) error
}

// DeliveryError reports which handlers failed for one event
type DeliveryError struct {
	Type Type
	// Failed holds handler positions in subscription order
	Failed []int
	Errs   []error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf(LogMsgHandlerErrorFormat, len(e.Errs), e.Type, e.Errs)
}

func (e *DeliveryError) Unwrap() []error {
	return e.Errs
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers.
// Handlers run synchronously on the caller's goroutine. A failure is
// returned as a *DeliveryError naming the handlers that failed.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	return b.deliver(ctx, event, nil)
}

// Redeliver runs only the handlers at the given positions. Handlers are
// never removed, so positions from an earlier DeliveryError stay valid.
func (b *MemoryBus) Redeliver(ctx context.Context, event Event, handlers []int) error {
	return b.deliver(ctx, event, handlers)
}

// deliver runs the handlers at positions, or all of them when positions is nil
func (b *MemoryBus) deliver(ctx context.Context, event Event, positions []int) error {
	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[event.Type]...)
	b.mu.RUnlock()

	if positions == nil {
		positions = make([]int, len(handlers))
		for i := range handlers {
			positions[i] = i
		}
	}

	var failed []int
	var errs []error
	for _, i := range positions {
		if i < 0 || i >= len(handlers) {
			continue
		}
		if err := handlers[i](ctx, event); err != nil {
			failed = append(failed, i)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return &DeliveryError{Type: event.Type, Failed: failed, Errs: errs}
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
