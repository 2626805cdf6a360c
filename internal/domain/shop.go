package domain

// ShopItem is a static catalog entry purchasable with coins
type ShopItem struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Type        PlantType `json:"type" yaml:"type"`
	Price       int       `json:"price" yaml:"price"`
	Description string    `json:"description" yaml:"description"`
	Color       string    `json:"color" yaml:"color"`
	Rarity      Rarity    `json:"rarity" yaml:"rarity"`
	UnlockLevel int       `json:"unlock_level" yaml:"unlock_level"`
}

// ShopListing is a shop item annotated for a specific player
type ShopListing struct {
	ShopItem
	Unlocked   bool `json:"unlocked"`
	Affordable bool `json:"affordable"`
}

// PurchaseResult is returned after a successful purchase
type PurchaseResult struct {
	Item           ShopItem `json:"item"`
	CoinsRemaining int      `json:"coins_remaining"`
	InventorySize  int      `json:"inventory_size"`
}
