package domain

// GardenCreatedPayload is the event payload for garden.created events
type GardenCreatedPayload struct {
	Username   string `json:"username"`
	PlantCount int    `json:"plant_count"`
	Timestamp  int64  `json:"timestamp"`
}

// GardenRenamedPayload is the event payload for garden.renamed events.
// Username carries the new name.
type GardenRenamedPayload struct {
	Username    string `json:"username"`
	OldUsername string `json:"old_username"`
	Timestamp   int64  `json:"timestamp"`
}

// PlantPlacedPayload is the event payload for plant.placed events
type PlantPlacedPayload struct {
	Username  string    `json:"username"`
	PlantID   string    `json:"plant_id"`
	PlantType PlantType `json:"plant_type"`
	Position  Position  `json:"position"`
	Timestamp int64     `json:"timestamp"`
}

// PlantRemovedPayload is the event payload for plant.removed events
type PlantRemovedPayload struct {
	Username  string    `json:"username"`
	PlantID   string    `json:"plant_id"`
	PlantType PlantType `json:"plant_type"`
	Timestamp int64     `json:"timestamp"`
}

// PlantMaturedPayload is the event payload for plant.matured events
type PlantMaturedPayload struct {
	Username   string    `json:"username"`
	PlantID    string    `json:"plant_id"`
	PlantType  PlantType `json:"plant_type"`
	Rarity     Rarity    `json:"rarity"`
	Experience int       `json:"experience"`
	Timestamp  int64     `json:"timestamp"`
}

// GardenLevelUpPayload is the event payload for garden.level_up events
type GardenLevelUpPayload struct {
	Username  string `json:"username"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Coins     int    `json:"coins"`
	Timestamp int64  `json:"timestamp"`
}

// ShopPurchasedPayload is the event payload for shop.purchased events
type ShopPurchasedPayload struct {
	Username  string    `json:"username"`
	ItemID    string    `json:"item_id"`
	PlantType PlantType `json:"plant_type"`
	Price     int       `json:"price"`
	Timestamp int64     `json:"timestamp"`
}

// WalletConnectedPayload is the event payload for wallet.connected events
type WalletConnectedPayload struct {
	Username  string `json:"username"`
	Address   string `json:"address"`
	Tokens    int    `json:"tokens"`
	Timestamp int64  `json:"timestamp"`
}
