package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/catalog"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

func TestHandleListPlants(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	w := doJSON(t, HandleListPlants(cat), http.MethodGet, "/catalog/plants", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var defs []domain.PlantDefinition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &defs))
	assert.Len(t, defs, 15)
	assert.Equal(t, domain.PlantBasic, defs[0].Type)
}

func TestHandleVersion(t *testing.T) {
	w := doJSON(t, HandleVersion("1.2.3"), http.MethodGet, "/version", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var info VersionInfo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.NotEmpty(t, info.GoVersion)

	w = doJSON(t, HandleVersion(""), http.MethodGet, "/version", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &info))
	assert.Equal(t, "dev", info.Version)
}
