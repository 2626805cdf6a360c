package domain

import "time"

// SnapshotVersion is the current version of the persisted garden snapshot.
// Increment it when the Garden structure changes incompatibly.
const SnapshotVersion = 1

// Starting values for a newly registered garden
const (
	StartingCoins      = 100
	StartingLevel      = 1
	StartingExperience = 0
)

// Garden is the complete state of one player: the snapshot written by storage backends
type Garden struct {
	Version       int        `json:"version"`
	Username      string     `json:"username"`
	Coins         int        `json:"coins"`
	Level         int        `json:"level"`
	Experience    int        `json:"experience"`
	Plants        []Plant    `json:"plants"`
	Inventory     []ShopItem `json:"inventory"`
	WalletAddress string     `json:"wallet_address,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewGarden returns a garden with starting values and no plants
func NewGarden(username string, now time.Time) *Garden {
	return &Garden{
		Version:    SnapshotVersion,
		Username:   username,
		Coins:      StartingCoins,
		Level:      StartingLevel,
		Experience: StartingExperience,
		Plants:     []Plant{},
		Inventory:  []ShopItem{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// FindPlant returns the index of the plant with the given ID, or -1
func (g *Garden) FindPlant(id string) int {
	for i := range g.Plants {
		if g.Plants[i].ID == id {
			return i
		}
	}
	return -1
}

// OwnsType reports whether the inventory holds at least one item of the plant type
func (g *Garden) OwnsType(t PlantType) bool {
	for _, item := range g.Inventory {
		if item.Type == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers can mutate without touching shared state
func (g *Garden) Clone() *Garden {
	if g == nil {
		return nil
	}
	c := *g
	c.Plants = append([]Plant(nil), g.Plants...)
	c.Inventory = append([]ShopItem(nil), g.Inventory...)
	return &c
}

// ExperienceToNextLevel is the experience needed to leave the current level
func (g *Garden) ExperienceToNextLevel() int {
	return g.Level * ExperiencePerLevel
}

// GardenView is the read-only public view served to visitors
type GardenView struct {
	Username   string  `json:"username"`
	Level      int     `json:"level"`
	PlantCount int     `json:"plant_count"`
	Plants     []Plant `json:"plants,omitempty"`
}

// Experience and level constants
const (
	ExperiencePerLevel = 100 // threshold is level * ExperiencePerLevel
	LevelUpCoinBonus   = 50
)

// LevelChange describes the outcome of an experience award
type LevelChange struct {
	OldLevel   int `json:"old_level"`
	NewLevel   int `json:"new_level"`
	Experience int `json:"experience"`
	Coins      int `json:"coins"`
}

// LeveledUp reports whether at least one level was gained
func (c LevelChange) LeveledUp() bool {
	return c.NewLevel > c.OldLevel
}

// WalletConnection is the result of the simulated wallet connect flow
type WalletConnection struct {
	Username string `json:"username"`
	Address  string `json:"address"`
	Tokens   int    `json:"tokens"`
	Message  string `json:"message"`
}
