package domain

// Garden plot geometry
const (
	// PlotSize is the width and depth of the square plot centred on the origin
	PlotSize = 30.0

	// PlotHalfExtent bounds X and Z to [-PlotHalfExtent, PlotHalfExtent]
	PlotHalfExtent = PlotSize / 2

	// MinPlantDistance is the minimum XZ distance between two plants
	MinPlantDistance = 2.0

	// GroundHeight is the Y coordinate plants sit at
	GroundHeight = 0.05
)

// Username limits
const (
	MinUsernameLength = 1
	MaxUsernameLength = 32

	// UsernameReservedChars cannot appear in a username. The local save
	// backend turns usernames into file names.
	UsernameReservedChars = `/\`
)

// Wallet flow constants
const (
	WalletTokenBalance    = 23
	WalletConnectedFormat = "Wallet connected successfully. %d TRENCH tokens found."
)

// Featured gardens
const (
	DefaultFeaturedLimit = 6
	MaxFeaturedLimit     = 50
)

// Plant ID prefixes
const (
	InitialPlantIDPrefix = "initial-"
	PlantIDPrefix        = "plant-"
)
