package discord

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
)

// embedSender is the slice of *discordgo.Session the notifier needs
type embedSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Notifier posts garden milestones to a Discord channel
type Notifier struct {
	session   *discordgo.Session
	sender    embedSender
	channelID string
	now       func() time.Time
}

// New creates a notifier backed by a bot session. Call Open before use.
func New(token, channelID string) (*Notifier, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}
	return &Notifier{session: s, sender: s, channelID: channelID, now: time.Now}, nil
}

func newNotifier(sender embedSender, channelID string, now func() time.Time) *Notifier {
	return &Notifier{sender: sender, channelID: channelID, now: now}
}

// Open connects the bot session
func (n *Notifier) Open() error {
	if n.session == nil {
		return nil
	}
	if err := n.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}
	logger.FromContext(context.Background()).Info(LogMsgNotifierOpened, "channel_id", n.channelID)
	return nil
}

// Close disconnects the bot session
func (n *Notifier) Close() error {
	if n.session == nil {
		return nil
	}
	return n.session.Close()
}

// Subscribe registers the notifier's handlers on the bus
func (n *Notifier) Subscribe(bus event.Bus) {
	bus.Subscribe(event.GardenLevelUp, n.handleLevelUp)
	bus.Subscribe(event.PlantMatured, n.handlePlantMatured)
}

func (n *Notifier) handleLevelUp(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.GardenLevelUpPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadDecodeError, "event_type", evt.Type, "error", err)
		return nil
	}

	embed := n.embed(titleLevelUp,
		fmt.Sprintf(descLevelUpFormat, payload.Username, payload.NewLevel, payload.Coins),
		colorGold)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Garden", Value: payload.Username, Inline: true},
		{Name: "New Level", Value: fmt.Sprintf("%d", payload.NewLevel), Inline: true},
	}
	return n.send(ctx, evt.Type, embed)
}

// handlePlantMatured announces legendary maturities only
func (n *Notifier) handlePlantMatured(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.PlantMaturedPayload](evt.Payload)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgPayloadDecodeError, "event_type", evt.Type, "error", err)
		return nil
	}
	if payload.Rarity != domain.RarityLegendary {
		return nil
	}

	embed := n.embed(titleLegendaryBloom,
		fmt.Sprintf(descLegendaryFormat, formatPlantType(payload.PlantType), payload.Username),
		colorLegendary)
	return n.send(ctx, evt.Type, embed)
}

func (n *Notifier) embed(title, description string, color int) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Timestamp:   n.now().Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}

func (n *Notifier) send(ctx context.Context, eventType event.Type, embed *discordgo.MessageEmbed) error {
	log := logger.FromContext(ctx)
	if _, err := n.sender.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		log.Error(LogMsgNotificationFailed, "error", err, "event_type", eventType)
		return err
	}
	log.Info(LogMsgNotificationSent, "event_type", eventType)
	return nil
}

// formatPlantType turns "cosmic-starfruit" into "Cosmic Starfruit"
func formatPlantType(t domain.PlantType) string {
	s := []rune(string(t))
	for i, r := range s {
		if r == '-' || r == '_' {
			s[i] = ' '
		}
	}
	return cases.Title(language.English).String(string(s))
}
