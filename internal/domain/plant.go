package domain

import "time"

// PlantType identifies one of the cosmetic plant kinds
type PlantType string

const (
	PlantBasic      PlantType = "basic"
	PlantMushroom   PlantType = "mushroom"
	PlantCrystal    PlantType = "crystal"
	PlantFlower     PlantType = "flower"
	PlantTree       PlantType = "tree"
	PlantRare       PlantType = "rare"
	PlantLegendary  PlantType = "legendary"
	PlantCactus     PlantType = "cactus"
	PlantVenus      PlantType = "venus"
	PlantBonsai     PlantType = "bonsai"
	PlantGlowshroom PlantType = "glowshroom"
	PlantSunflower  PlantType = "sunflower"
	PlantBamboo     PlantType = "bamboo"
	PlantOrchid     PlantType = "orchid"
	PlantStarfruit  PlantType = "starfruit"
)

// Rarity ranks plants and shop items
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityUncommon  Rarity = "uncommon"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// Rarities lists every rarity from lowest to highest
var Rarities = []Rarity{RarityCommon, RarityUncommon, RarityRare, RarityEpic, RarityLegendary}

// IsValid reports whether r is a known rarity
func (r Rarity) IsValid() bool {
	for _, known := range Rarities {
		if r == known {
			return true
		}
	}
	return false
}

// Growth constants
const (
	MinGrowthStage = 1
	MaxGrowthStage = 5
)

// Position is a point in the garden. Y is the height above the ground plane
// and does not take part in placement rules.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Plant is a cosmetic entity placed in a garden plot
type Plant struct {
	ID               string    `json:"id"`
	Type             PlantType `json:"type"`
	Position         Position  `json:"position"`
	GrowthStage      int       `json:"growth_stage"`
	Color            string    `json:"color"`
	Rotation         float64   `json:"rotation"`
	PlantedAt        time.Time `json:"planted_at"`
	LastGrowthUpdate time.Time `json:"last_growth_update"`
	Owner            string    `json:"owner"`
	GrowthProgress   float64   `json:"growth_progress"`
}

// IsMature reports whether the plant has reached its final stage
func (p Plant) IsMature() bool {
	return p.GrowthStage >= MaxGrowthStage
}

// PlantDefinition describes a plant kind in the catalog
type PlantDefinition struct {
	Type         PlantType `json:"type" yaml:"type"`
	Name         string    `json:"name" yaml:"name"`
	Description  string    `json:"description" yaml:"description"`
	Rarity       Rarity    `json:"rarity" yaml:"rarity"`
	Shape        string    `json:"shape" yaml:"shape"`
	Color        string    `json:"color" yaml:"color"`
	GrowthTime   int       `json:"growth_time" yaml:"growth_time"` // seconds for full growth
	GrowthStages int       `json:"growth_stages" yaml:"growth_stages"`
	Default      bool      `json:"default" yaml:"default"` // placeable without buying
}

// GrowthDuration returns the total time from stage 1 to full growth
func (d PlantDefinition) GrowthDuration() time.Duration {
	return time.Duration(d.GrowthTime) * time.Second
}

// StageDuration returns the time needed to advance a single stage
func (d PlantDefinition) StageDuration() time.Duration {
	return d.GrowthDuration() / MaxGrowthStage
}
