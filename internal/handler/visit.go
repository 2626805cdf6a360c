package handler

import (
	"net/http"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/visit"
)

// HandleVisit returns the public view of a garden
// @Summary Visit garden
// @Tags visit
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} domain.GardenView
// @Failure 404 {object} ErrorResponse
// @Router /visit/{username} [get]
func HandleVisit(svc visit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username, ok := usernameParam(w, r)
		if !ok {
			return
		}

		view, err := svc.View(r.Context(), username)
		if err != nil {
			respondServiceError(w, r, opVisit, err)
			return
		}
		respondJSON(w, http.StatusOK, view)
	}
}

// HandleFeatured lists the top gardens
// @Summary Featured gardens
// @Description Gardens ranked by level, then plant count, then username
// @Tags visit
// @Produce json
// @Param limit query int false "Maximum gardens (default 6, max 50)"
// @Success 200 {array} domain.GardenView
// @Failure 400 {object} ErrorResponse
// @Router /visit/featured [get]
func HandleFeatured(svc visit.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := getOptionalIntParam(w, r, paramLimit, domain.DefaultFeaturedLimit)
		if !ok {
			return
		}

		views, err := svc.Featured(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, opFeatured, err)
			return
		}
		respondJSON(w, http.StatusOK, views)
	}
}
