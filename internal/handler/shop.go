package handler

import (
	"net/http"

	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/shop"
)

// PurchaseRequest buys a shop item for a garden
type PurchaseRequest struct {
	Username string `json:"username" validate:"required,username"`
	ItemID   string `json:"item_id" validate:"required,max=64"`
}

// HandleShopList lists shop items annotated for a player
// @Summary List shop items
// @Description Items are annotated with unlocked and affordable for the given username
// @Tags shop
// @Produce json
// @Param username query string false "Username to annotate for"
// @Param rarity query string false "Rarity filter or all"
// @Success 200 {array} domain.ShopListing
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shop/items [get]
func HandleShopList(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := GetOptionalQueryParam(r, paramUsername, "")
		rarity := GetOptionalQueryParam(r, paramRarity, shop.FilterAll)

		listings, err := svc.List(r.Context(), username, rarity)
		if err != nil {
			respondServiceError(w, r, opShopList, err)
			return
		}
		respondJSON(w, http.StatusOK, listings)
	}
}

// HandleShopPurchase buys an item
// @Summary Purchase item
// @Tags shop
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase"
// @Success 200 {object} domain.PurchaseResult
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shop/purchase [post]
func HandleShopPurchase(svc shop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, opShopPurchase); err != nil {
			return
		}

		result, err := svc.Purchase(r.Context(), req.Username, req.ItemID)
		if err != nil {
			respondServiceError(w, r, opShopPurchase, err)
			return
		}

		logger.FromContext(r.Context()).Info("Item purchased",
			"username", req.Username,
			"item_id", result.Item.ID,
			"coins_remaining", result.CoinsRemaining)
		respondJSON(w, http.StatusOK, result)
	}
}
