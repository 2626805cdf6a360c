package bootstrap

import (
	"log/slog"

	"github.com/osse101/TrenchGarden_Go/internal/config"
	"github.com/osse101/TrenchGarden_Go/internal/discord"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/garden"
	"github.com/osse101/TrenchGarden_Go/internal/metrics"
	"github.com/osse101/TrenchGarden_Go/internal/sse"
	"github.com/osse101/TrenchGarden_Go/internal/visit"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus      event.Bus
	GardenService garden.Service
	VisitService  visit.Service
	Hub           *sse.Hub
	Config        *config.Config
}

// RegisterEventHandlers sets up all event subscribers, each counted by the
// handler error metric:
// - Metrics collector (event counters)
// - Garden service (experience from matured plants)
// - Visit service (featured cache invalidation)
// - SSE subscriber (live stream fan-out)
// - Discord notifier, when configured
//
// The returned notifier is nil when Discord is disabled or failed to connect.
func RegisterEventHandlers(deps EventHandlerDependencies) *discord.Notifier {
	bus := metrics.InstrumentBus(deps.EventBus)

	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	deps.GardenService.Subscribe(bus)
	deps.VisitService.Subscribe(bus)

	if deps.Hub != nil {
		sse.NewSubscriber(deps.Hub, bus).Subscribe()
		slog.Info(LogMsgSSESubscriberRegistered)
	}

	if deps.Config == nil || !deps.Config.DiscordEnabled() {
		return nil
	}

	notifier, err := discord.New(deps.Config.DiscordToken, deps.Config.DiscordChannelID)
	if err == nil {
		err = notifier.Open()
	}
	if err != nil {
		slog.Warn(LogMsgDiscordNotifierFailed, "error", err)
		return nil
	}
	notifier.Subscribe(bus)
	slog.Info(LogMsgDiscordNotifierEnabled, "channel_id", deps.Config.DiscordChannelID)

	return notifier
}
