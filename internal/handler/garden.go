package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/garden"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
)

// RegisterRequest creates a garden for a new player
type RegisterRequest struct {
	Username string `json:"username" validate:"required,username"`
}

// RenameRequest moves a garden to a new username
type RenameRequest struct {
	NewUsername string `json:"new_username" validate:"required,username"`
}

// AmountRequest carries a positive coin or experience amount
type AmountRequest struct {
	Amount int `json:"amount" validate:"gt=0,max=1000000"`
}

// GardenHandlers serves the garden store actions
type GardenHandlers struct {
	svc garden.Service
}

// NewGardenHandlers creates garden handlers backed by svc
func NewGardenHandlers(svc garden.Service) *GardenHandlers {
	return &GardenHandlers{svc: svc}
}

// HandleRegister creates a garden
// @Summary Register garden
// @Description Create a garden with starting coins and the starter plants
// @Tags garden
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Username"
// @Success 201 {object} domain.Garden
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /gardens [post]
func (h *GardenHandlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := DecodeAndValidateRequest(r, w, &req, opRegister); err != nil {
			return
		}

		g, err := h.svc.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, opRegister, err)
			return
		}

		logger.FromContext(r.Context()).Info("Garden registered", "username", g.Username)
		respondJSON(w, http.StatusCreated, g)
	}
}

// HandleGet returns a garden with pending growth applied
// @Summary Get garden
// @Tags garden
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.Garden
// @Failure 404 {object} ErrorResponse
// @Router /gardens/{username} [get]
func (h *GardenHandlers) HandleGet() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		g, err := h.svc.Get(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, opGetGarden, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

// HandleRename moves a garden to a new username
// @Summary Rename garden
// @Tags garden
// @Accept json
// @Produce json
// @Param username path string true "Current username"
// @Param request body RenameRequest true "New username"
// @Success 200 {object} domain.Garden
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /gardens/{username}/username [put]
func (h *GardenHandlers) HandleRename() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		var req RenameRequest
		if err := DecodeAndValidateRequest(r, w, &req, opRename); err != nil {
			return
		}

		g, err := h.svc.Rename(r.Context(), username, req.NewUsername)
		if err != nil {
			respondServiceError(w, r, opRename, err)
			return
		}

		logger.FromContext(r.Context()).Info("Garden renamed", "from", username, "to", g.Username)
		respondJSON(w, http.StatusOK, g)
	}
}

// HandleAddCoins credits coins
// @Summary Add coins
// @Tags garden
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} domain.Garden
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /gardens/{username}/coins [post]
func (h *GardenHandlers) HandleAddCoins() http.HandlerFunc {
	return h.amountAction(opAddCoins, h.svc.AddCoins)
}

// HandleSpendCoins debits coins, leaving the balance unchanged when short
// @Summary Spend coins
// @Tags garden
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} domain.Garden
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /gardens/{username}/coins/spend [post]
func (h *GardenHandlers) HandleSpendCoins() http.HandlerFunc {
	return h.amountAction(opSpendCoins, h.svc.SpendCoins)
}

// HandleGainExperience awards experience and reports any level change
// @Summary Gain experience
// @Tags garden
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body AmountRequest true "Amount"
// @Success 200 {object} domain.LevelChange
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /gardens/{username}/experience [post]
func (h *GardenHandlers) HandleGainExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		var req AmountRequest
		if err := DecodeAndValidateRequest(r, w, &req, opGainExperience); err != nil {
			return
		}

		change, err := h.svc.GainExperience(r.Context(), username, req.Amount)
		if err != nil {
			respondServiceError(w, r, opGainExperience, err)
			return
		}
		respondJSON(w, http.StatusOK, change)
	}
}

// HandleUpdateGrowth runs a persisted growth pass for one garden
// @Summary Update growth
// @Tags garden
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.Garden
// @Failure 404 {object} ErrorResponse
// @Router /gardens/{username}/growth [post]
func (h *GardenHandlers) HandleUpdateGrowth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		g, err := h.svc.UpdateGrowth(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, opUpdateGrowth, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}

// PlacePlantRequest places a plant into the plot
type PlacePlantRequest struct {
	Type     string          `json:"type" validate:"required,max=64"`
	Position domain.Position `json:"position"`
	Color    string          `json:"color,omitempty" validate:"omitempty,hexcolor"`
	Rotation float64         `json:"rotation"`
}

// HandlePlacePlant places a plant
// @Summary Place plant
// @Description Place a default or owned plant type inside the plot
// @Tags plants
// @Accept json
// @Produce json
// @Param username path string true "Username"
// @Param request body PlacePlantRequest true "Plant"
// @Success 201 {object} domain.Plant
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /gardens/{username}/plants [post]
func (h *GardenHandlers) HandlePlacePlant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		var req PlacePlantRequest
		if err := DecodeAndValidateRequest(r, w, &req, opPlacePlant); err != nil {
			return
		}

		plant, err := h.svc.PlacePlant(r.Context(), username, garden.PlacePlantRequest{
			Type:     req.Type,
			Position: req.Position,
			Color:    req.Color,
			Rotation: req.Rotation,
		})
		if err != nil {
			respondServiceError(w, r, opPlacePlant, err)
			return
		}

		logger.FromContext(r.Context()).Info("Plant placed", "username", username, "plant_id", plant.ID, "type", plant.Type)
		respondJSON(w, http.StatusCreated, plant)
	}
}

// HandleRemovePlant removes a plant by ID
// @Summary Remove plant
// @Tags plants
// @Produce json
// @Param username path string true "Username"
// @Param plantID path string true "Plant ID"
// @Success 200 {object} domain.Plant
// @Failure 404 {object} ErrorResponse
// @Router /gardens/{username}/plants/{plantID} [delete]
func (h *GardenHandlers) HandleRemovePlant() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}
		plantID := chi.URLParam(r, paramPlantID)

		plant, err := h.svc.RemovePlant(r.Context(), username, plantID)
		if err != nil {
			respondServiceError(w, r, opRemovePlant, err)
			return
		}
		respondJSON(w, http.StatusOK, plant)
	}
}

type amountFunc func(ctx context.Context, username string, amount int) (*domain.Garden, error)

func (h *GardenHandlers) amountAction(opName string, action amountFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		var req AmountRequest
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		g, err := action(r.Context(), username, req.Amount)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, g)
	}
}
