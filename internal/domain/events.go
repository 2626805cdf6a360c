package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "plant.placed")
const (
	// EventTypeGardenCreated is published when a player registers a new garden
	EventTypeGardenCreated = "garden.created"

	// EventTypeGardenRenamed is published when a garden moves to a new username
	EventTypeGardenRenamed = "garden.renamed"

	// EventTypePlantPlaced is published when a plant is placed in a garden
	EventTypePlantPlaced = "plant.placed"

	// EventTypePlantRemoved is published when a plant is removed from a garden
	EventTypePlantRemoved = "plant.removed"

	// EventTypePlantMatured is published when a plant reaches its final growth stage
	EventTypePlantMatured = "plant.matured"

	// EventTypeGardenLevelUp is published when a garden gains one or more levels
	EventTypeGardenLevelUp = "garden.level_up"

	// EventTypeShopPurchased is published after a successful shop purchase
	EventTypeShopPurchased = "shop.purchased"

	// EventTypeWalletConnected is published when a wallet is linked to a garden
	EventTypeWalletConnected = "wallet.connected"
)

// AllEventTypes lists every published event type
var AllEventTypes = []string{
	EventTypeGardenCreated,
	EventTypeGardenRenamed,
	EventTypePlantPlaced,
	EventTypePlantRemoved,
	EventTypePlantMatured,
	EventTypeGardenLevelUp,
	EventTypeShopPurchased,
	EventTypeWalletConnected,
}
