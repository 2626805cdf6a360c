package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode first so an encoding failure can still produce a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and writes the mapped response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."

	// Garden messages
	ErrMsgGardenNotFoundError = "Garden not found"
	ErrMsgGardenExistsError   = "That username is already taken"

	// Plant messages
	ErrMsgPlantNotFoundError    = "Plant not found"
	ErrMsgUnknownPlantTypeError = "Unknown plant type"
	ErrMsgPlantLockedError      = "You don't own that plant type yet. Buy it in the shop."
	ErrMsgOutsidePlotError      = "That spot is outside the garden plot"
	ErrMsgTooCloseError         = "That spot is too close to another plant"

	// Shop messages
	ErrMsgShopItemNotFoundError = "Shop item not found"
	ErrMsgLevelTooLowError      = "Your garden level is too low for that item"
	ErrMsgNotEnoughCoinsError   = "Not enough coins"

	// Wallet messages
	ErrMsgInvalidWalletError = "Invalid wallet address"

	// Amount messages
	ErrMsgInvalidAmountError = "Amount must be positive"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors become a generic 500 so internal details never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrGardenNotFound):
		return http.StatusNotFound, ErrMsgGardenNotFoundError
	case errors.Is(err, domain.ErrPlantNotFound):
		return http.StatusNotFound, ErrMsgPlantNotFoundError
	case errors.Is(err, domain.ErrShopItemNotFound):
		return http.StatusNotFound, ErrMsgShopItemNotFoundError
	case errors.Is(err, domain.ErrGardenExists):
		return http.StatusConflict, ErrMsgGardenExistsError
	case errors.Is(err, domain.ErrPlantLocked):
		return http.StatusForbidden, ErrMsgPlantLockedError
	case errors.Is(err, domain.ErrLevelTooLow):
		return http.StatusForbidden, ErrMsgLevelTooLowError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrUnknownPlantType):
		return http.StatusBadRequest, ErrMsgUnknownPlantTypeError
	case errors.Is(err, domain.ErrOutsidePlot):
		return http.StatusBadRequest, ErrMsgOutsidePlotError
	case errors.Is(err, domain.ErrTooClose):
		return http.StatusBadRequest, ErrMsgTooCloseError
	case errors.Is(err, domain.ErrInvalidWalletAddress):
		return http.StatusBadRequest, ErrMsgInvalidWalletError
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, ErrMsgInvalidAmountError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
