package metrics

import (
	"context"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all garden events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, eventType := range domain.AllEventTypes {
		bus.Subscribe(event.Type(eventType), e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics.
// Undecodable payloads are logged and skipped so metrics never fail a publish.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	if err := e.record(evt); err != nil {
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

func (e *EventMetricsCollector) record(evt event.Event) error {
	switch evt.Type {
	case event.GardenCreated:
		GardensCreated.Inc()

	case event.PlantPlaced:
		p, err := event.DecodePayload[domain.PlantPlacedPayload](evt.Payload)
		if err != nil {
			return err
		}
		PlantsPlaced.WithLabelValues(string(p.PlantType)).Inc()

	case event.PlantRemoved:
		p, err := event.DecodePayload[domain.PlantRemovedPayload](evt.Payload)
		if err != nil {
			return err
		}
		PlantsRemoved.WithLabelValues(string(p.PlantType)).Inc()

	case event.PlantMatured:
		p, err := event.DecodePayload[domain.PlantMaturedPayload](evt.Payload)
		if err != nil {
			return err
		}
		PlantsMatured.WithLabelValues(string(p.PlantType), string(p.Rarity)).Inc()

	case event.ShopPurchased:
		p, err := event.DecodePayload[domain.ShopPurchasedPayload](evt.Payload)
		if err != nil {
			return err
		}
		ShopPurchases.WithLabelValues(p.ItemID).Inc()
		CoinsSpent.Add(float64(p.Price))

	case event.GardenLevelUp:
		p, err := event.DecodePayload[domain.GardenLevelUpPayload](evt.Payload)
		if err != nil {
			return err
		}
		if gained := p.NewLevel - p.OldLevel; gained > 0 {
			LevelUps.Add(float64(gained))
		}

	case event.WalletConnected:
		WalletsConnected.Inc()
	}
	return nil
}

// instrumentedBus counts subscriber errors per event type
type instrumentedBus struct {
	event.Bus
}

// InstrumentBus wraps bus so every handler subscribed through it reports
// failures to EventHandlerErrors. Publish is passed through unchanged.
func InstrumentBus(bus event.Bus) event.Bus {
	return instrumentedBus{Bus: bus}
}

func (b instrumentedBus) Subscribe(eventType event.Type, handler event.Handler) {
	b.Bus.Subscribe(eventType, func(ctx context.Context, evt event.Event) error {
		err := handler(ctx, evt)
		if err != nil {
			EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		}
		return err
	})
}
