package sse

import (
	"context"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe forwards every garden event type to the hub
func (s *Subscriber) Subscribe() {
	for _, t := range domain.AllEventTypes {
		s.bus.Subscribe(event.Type(t), s.forward)
	}

	logger.FromContext(context.Background()).Info(LogMsgSubscribed, "types", domain.AllEventTypes)
}

// forward re-broadcasts a bus event unchanged, tagged with its garden owner
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	owner, err := event.DecodePayload[usernamePayload](evt.Payload)
	if err != nil {
		log.Warn(LogMsgInvalidPayload, "type", evt.Type, "error", err)
		return nil
	}

	if !s.hub.Broadcast(string(evt.Type), owner.Username, evt.Payload) {
		log.Warn(LogMsgEventDropped, "event_type", evt.Type)
		return nil
	}

	log.Debug(LogMsgEventBroadcast, "event_type", evt.Type, "username", owner.Username)
	return nil
}
