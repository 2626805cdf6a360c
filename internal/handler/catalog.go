package handler

import (
	"net/http"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// PlantLister exposes the plant catalog
type PlantLister interface {
	Plants() []domain.PlantDefinition
}

// HandleListPlants returns every plant definition in catalog order
// @Summary Plant catalog
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.PlantDefinition
// @Router /catalog/plants [get]
func HandleListPlants(cat PlantLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, cat.Plants())
	}
}
