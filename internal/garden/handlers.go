package garden

import (
	"context"
	"errors"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
)

// Subscribe registers the garden's event handlers on bus
func (s *service) Subscribe(bus event.Bus) {
	bus.Subscribe(event.PlantMatured, s.handlePlantMatured)
}

// handlePlantMatured awards the maturity experience to the plant's owner
func (s *service) handlePlantMatured(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.PlantMaturedPayload](evt.Payload)
	if err != nil {
		return err
	}
	if payload.Experience <= 0 {
		return nil
	}

	_, err = s.GainExperience(ctx, payload.Username, payload.Experience)
	if errors.Is(err, domain.ErrGardenNotFound) {
		logger.FromContext(ctx).Warn(LogMsgMaturedAwardSkipped, "username", payload.Username, "plant_id", payload.PlantID)
		return nil
	}
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgMaturedAwardFailed, "username", payload.Username, "error", err)
		return err
	}
	return nil
}
