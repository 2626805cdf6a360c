package discord

// Embed colors
const (
	colorGold      = 0xFFD700
	colorLegendary = 0x9B59B6
)

const (
	footerText = "Trench Garden"

	titleLevelUp        = "Level Up!"
	titleLegendaryBloom = "Legendary Bloom"

	descLevelUpFormat   = "**%s** reached **level %d** and earned %d coins!"
	descLegendaryFormat = "A legendary **%s** has fully grown in **%s**'s garden!"
)

// Log messages
const (
	LogMsgNotifierOpened     = "Discord notifier connected"
	LogMsgNotificationSent   = "Discord notification sent"
	LogMsgNotificationFailed = "Discord notification failed"
	LogMsgPayloadDecodeError = "Discord notifier could not decode event payload"
)
