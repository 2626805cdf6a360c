package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/visit"
	"github.com/osse101/TrenchGarden_Go/mocks"
)

func visitRouter(svc visit.Service) http.Handler {
	r := chi.NewRouter()
	r.Get("/visit/featured", HandleFeatured(svc))
	r.Get("/visit/{username}", HandleVisit(svc))
	return r
}

func TestHandleVisit(t *testing.T) {
	InitValidator()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockVisitService(t)
		mockSvc.On("View", mock.Anything, "alice").Return(&domain.GardenView{Username: "alice", Level: 3, PlantCount: 5}, nil)

		w := doJSON(t, visitRouter(mockSvc), http.MethodGet, "/visit/alice", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"plant_count":5`)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockSvc := mocks.NewMockVisitService(t)
		mockSvc.On("View", mock.Anything, "ghost").Return(nil, domain.ErrGardenNotFound)

		w := doJSON(t, visitRouter(mockSvc), http.MethodGet, "/visit/ghost", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandleFeatured(t *testing.T) {
	t.Run("Default Limit", func(t *testing.T) {
		mockSvc := mocks.NewMockVisitService(t)
		mockSvc.On("Featured", mock.Anything, domain.DefaultFeaturedLimit).Return([]domain.GardenView{{Username: "a"}}, nil)

		w := doJSON(t, visitRouter(mockSvc), http.MethodGet, "/visit/featured", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Explicit Limit", func(t *testing.T) {
		mockSvc := mocks.NewMockVisitService(t)
		mockSvc.On("Featured", mock.Anything, 3).Return([]domain.GardenView{}, nil)

		w := doJSON(t, visitRouter(mockSvc), http.MethodGet, "/visit/featured?limit=3", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Non Numeric Limit", func(t *testing.T) {
		mockSvc := mocks.NewMockVisitService(t)

		w := doJSON(t, visitRouter(mockSvc), http.MethodGet, "/visit/featured?limit=lots", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidLimit)
	})
}
