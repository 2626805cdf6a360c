package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidUsername   = "Invalid username"

	// Storage
	MsgStoreUnavailable = "garden store unavailable"
)

// Operation names used in logs and error responses
const (
	opRegister       = "Register garden"
	opGetGarden      = "Get garden"
	opRename         = "Rename garden"
	opAddCoins       = "Add coins"
	opSpendCoins     = "Spend coins"
	opGainExperience = "Gain experience"
	opUpdateGrowth   = "Update growth"
	opPlacePlant     = "Place plant"
	opRemovePlant    = "Remove plant"
	opShopList       = "List shop items"
	opShopPurchase   = "Purchase item"
	opVisit          = "Visit garden"
	opFeatured       = "Featured gardens"
	opWalletConnect  = "Connect wallet"
)

// Route parameter names
const (
	paramUsername = "username"
	paramPlantID  = "plantID"
	paramRarity   = "rarity"
	paramLimit    = "limit"
)
