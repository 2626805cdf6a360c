package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Garden errors
	ErrMsgGardenNotFound = "garden not found"
	ErrMsgGardenExists   = "garden already exists"

	// Plant errors
	ErrMsgPlantNotFound    = "plant not found"
	ErrMsgUnknownPlantType = "unknown plant type"
	ErrMsgPlantLocked      = "plant type is locked"

	// Placement errors
	ErrMsgOutsidePlot = "position is outside the garden plot"
	ErrMsgTooClose    = "position is too close to another plant"

	// Shop errors
	ErrMsgShopItemNotFound  = "shop item not found"
	ErrMsgLevelTooLow       = "level too low"
	ErrMsgInsufficientFunds = "insufficient funds"

	// Wallet errors
	ErrMsgInvalidWalletAddress = "invalid wallet address"

	// Storage errors
	ErrMsgUnsupportedSnapshot = "unsupported snapshot version"

	// Input errors
	ErrMsgInvalidInput  = "invalid input"
	ErrMsgInvalidAmount = "amount must be positive"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Garden errors
	ErrGardenNotFound = errors.New(ErrMsgGardenNotFound)
	ErrGardenExists   = errors.New(ErrMsgGardenExists)

	// Plant errors
	ErrPlantNotFound    = errors.New(ErrMsgPlantNotFound)
	ErrUnknownPlantType = errors.New(ErrMsgUnknownPlantType)
	ErrPlantLocked      = errors.New(ErrMsgPlantLocked)

	// Placement errors
	ErrOutsidePlot = errors.New(ErrMsgOutsidePlot)
	ErrTooClose    = errors.New(ErrMsgTooClose)

	// Shop errors
	ErrShopItemNotFound  = errors.New(ErrMsgShopItemNotFound)
	ErrLevelTooLow       = errors.New(ErrMsgLevelTooLow)
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)

	// Wallet errors
	ErrInvalidWalletAddress = errors.New(ErrMsgInvalidWalletAddress)

	// Storage errors
	ErrUnsupportedSnapshot = errors.New(ErrMsgUnsupportedSnapshot)

	// Validation errors
	ErrInvalidInput  = errors.New(ErrMsgInvalidInput)
	ErrInvalidAmount = errors.New(ErrMsgInvalidAmount)
)
