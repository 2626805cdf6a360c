package garden

import "time"

// starterPlant describes one of the plants a new garden begins with
type starterPlant struct {
	Type     string
	Stage    int
	Age      time.Duration
	Position [2]float64 // x, z
}

// starterPlants seed every newly registered garden
var starterPlants = []starterPlant{
	{Type: "basic", Stage: 3, Age: 24 * time.Hour, Position: [2]float64{-10, -10}},
	{Type: "mushroom", Stage: 2, Age: 12 * time.Hour, Position: [2]float64{0, 0}},
	{Type: "flower", Stage: 4, Age: 48 * time.Hour, Position: [2]float64{10, 10}},
	{Type: "cactus", Stage: 5, Age: 72 * time.Hour, Position: [2]float64{-5, 5}},
	{Type: "venus", Stage: 3, Age: 36 * time.Hour, Position: [2]float64{5, -5}},
}

// Span names
const (
	SpanRegister       = "garden.Register"
	SpanRename         = "garden.Rename"
	SpanGet            = "garden.Get"
	SpanAddCoins       = "garden.AddCoins"
	SpanSpendCoins     = "garden.SpendCoins"
	SpanPlacePlant     = "garden.PlacePlant"
	SpanRemovePlant    = "garden.RemovePlant"
	SpanGainExperience = "garden.GainExperience"
	SpanUpdateGrowth   = "garden.UpdateGrowth"
)

// Log messages
const (
	LogMsgGardenRegistered     = "Garden registered"
	LogMsgGardenRenamed        = "Garden renamed"
	LogMsgRenameRollbackFailed = "Failed to remove renamed copy after rename failed"
	LogMsgPlantPlaced          = "Plant placed"
	LogMsgPlantRemoved         = "Plant removed"
	LogMsgExperienceGained     = "Experience gained"
	LogMsgLevelUp              = "Garden levelled up"
	LogMsgPublishFailed        = "Failed to publish garden event"
	LogMsgMaturedAwardSkipped  = "Maturity experience skipped, garden is gone"
	LogMsgMaturedAwardFailed   = "Failed to award maturity experience"
)
