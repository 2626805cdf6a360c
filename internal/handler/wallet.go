package handler

import (
	"net/http"

	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/wallet"
)

// WalletConnectRequest starts the simulated wallet handshake
type WalletConnectRequest struct {
	Username string `json:"username" validate:"required,username"`
	Address  string `json:"address" validate:"required,max=128"`
}

// HandleWalletConnect runs the simulated wallet connect flow
// @Summary Connect wallet
// @Description Simulated handshake. No network calls are made.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body WalletConnectRequest true "Wallet"
// @Success 200 {object} domain.WalletConnection
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /wallet/connect [post]
func HandleWalletConnect(svc wallet.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req WalletConnectRequest
		if err := DecodeAndValidateRequest(r, w, &req, opWalletConnect); err != nil {
			return
		}

		conn, err := svc.Connect(r.Context(), req.Username, req.Address)
		if err != nil {
			respondServiceError(w, r, opWalletConnect, err)
			return
		}

		logger.FromContext(r.Context()).Info("Wallet connected", "username", conn.Username)
		respondJSON(w, http.StatusOK, conn)
	}
}
