package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

func mustDefault(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefault_Contents(t *testing.T) {
	c := mustDefault(t)

	assert.Len(t, c.Plants(), 15)
	assert.Len(t, c.ShopItems(), 15)

	basic, ok := c.Plant(domain.PlantBasic)
	require.True(t, ok)
	assert.Equal(t, "Basic Plant", basic.Name)
	assert.Equal(t, domain.RarityCommon, basic.Rarity)
	assert.Equal(t, 60, basic.GrowthTime)
	assert.Equal(t, "#4caf50", basic.Color)

	starfruit, ok := c.ShopItem("cosmic-starfruit")
	require.True(t, ok)
	assert.Equal(t, 600, starfruit.Price)
	assert.Equal(t, 8, starfruit.UnlockLevel)
	assert.Equal(t, domain.PlantStarfruit, starfruit.Type)
}

func TestDefault_GrowthTimes(t *testing.T) {
	c := mustDefault(t)

	want := map[domain.PlantType]int{
		domain.PlantBasic: 60, domain.PlantMushroom: 120, domain.PlantCrystal: 300,
		domain.PlantFlower: 600, domain.PlantTree: 900, domain.PlantRare: 1800,
		domain.PlantLegendary: 3600, domain.PlantCactus: 240, domain.PlantVenus: 720,
		domain.PlantBonsai: 1500, domain.PlantGlowshroom: 540, domain.PlantSunflower: 360,
		domain.PlantBamboo: 180, domain.PlantOrchid: 1200, domain.PlantStarfruit: 2700,
	}
	for pt, secs := range want {
		def, ok := c.Plant(pt)
		require.True(t, ok, pt)
		assert.Equal(t, secs, def.GrowthTime, pt)
		assert.Equal(t, domain.MaxGrowthStage, def.GrowthStages, pt)
	}
}

func TestDefaultPlantTypes(t *testing.T) {
	c := mustDefault(t)

	assert.Equal(t, []domain.PlantType{
		domain.PlantBasic, domain.PlantMushroom, domain.PlantCactus, domain.PlantVenus, domain.PlantBonsai,
	}, c.DefaultPlantTypes())
	assert.True(t, c.IsDefault(domain.PlantVenus))
	assert.False(t, c.IsDefault(domain.PlantStarfruit))
}

func TestShopItemsOrder(t *testing.T) {
	items := mustDefault(t).ShopItems()

	assert.Equal(t, "basic-plant", items[0].ID)
	assert.Equal(t, "cosmic-starfruit", items[len(items)-1].ID)
}

func TestResolve(t *testing.T) {
	c := mustDefault(t)

	tests := []struct {
		name  string
		input string
		want  domain.PlantType
	}{
		{"type key", "venus", domain.PlantVenus},
		{"mixed case", "  VeNuS ", domain.PlantVenus},
		{"display name", "Trench Shroom", domain.PlantMushroom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def, err := c.Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, def.Type)
		})
	}
}

func TestResolve_Suggestion(t *testing.T) {
	c := mustDefault(t)

	_, err := c.Resolve("cactos")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownPlantType))
	assert.Contains(t, err.Error(), `did you mean "cactus"`)
}

func TestResolve_NoSuggestion(t *testing.T) {
	c := mustDefault(t)

	_, err := c.Resolve("zzzzzzzzzzzz")

	require.ErrorIs(t, err, domain.ErrUnknownPlantType)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestResolveShopItem(t *testing.T) {
	c := mustDefault(t)

	item, err := c.ResolveShopItem("Lucky Bamboo")
	require.NoError(t, err)
	assert.Equal(t, "lucky-bamboo", item.ID)

	item, err = c.ResolveShopItem("BASIC-PLANT")
	require.NoError(t, err)
	assert.Equal(t, "basic-plant", item.ID)

	_, err = c.ResolveShopItem("basic-plnt")
	require.ErrorIs(t, err, domain.ErrShopItemNotFound)
	assert.Contains(t, err.Error(), `did you mean "basic-plant"`)
}

func TestSuggest(t *testing.T) {
	got, ok := Suggest("tre", []string{"tree", "rare"})
	assert.True(t, ok)
	assert.Equal(t, "tree", got)

	_, ok = Suggest("", []string{"tree"})
	assert.False(t, ok)

	_, ok = Suggest("x", nil)
	assert.False(t, ok)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "no plants",
			doc:  "plants: []\n",
			want: "no plants",
		},
		{
			name: "zero growth time",
			doc:  "plants:\n  - {type: basic, rarity: common, growth_time: 0, growth_stages: 5}\n",
			want: "growth_time",
		},
		{
			name: "wrong stages",
			doc:  "plants:\n  - {type: basic, rarity: common, growth_time: 10, growth_stages: 3}\n",
			want: "growth stages",
		},
		{
			name: "bad rarity",
			doc:  "plants:\n  - {type: basic, rarity: mythic, growth_time: 10, growth_stages: 5}\n",
			want: "rarity",
		},
		{
			name: "duplicate plant",
			doc: "plants:\n  - {type: basic, rarity: common, growth_time: 10, growth_stages: 5}\n" +
				"  - {type: basic, rarity: common, growth_time: 10, growth_stages: 5}\n",
			want: "duplicate plant",
		},
		{
			name: "shop item with unknown type",
			doc: "plants:\n  - {type: basic, rarity: common, growth_time: 10, growth_stages: 5}\n" +
				"shop:\n  - {id: x, type: tree, price: 1, rarity: common, unlock_level: 1}\n",
			want: "unknown plant type",
		},
		{
			name: "malformed color",
			doc:  "plants:\n  - {type: basic, rarity: common, color: green, growth_time: 10, growth_stages: 5}\n",
			want: "schema validation failed",
		},
		{
			name: "missing rarity",
			doc:  "plants:\n  - {type: basic, growth_time: 10, growth_stages: 5}\n",
			want: "schema validation failed",
		},
		{
			name: "unknown field",
			doc:  "plants:\n  - {type: basic, rarity: common, growth_time: 10, growth_stages: 5, size: 3}\n",
			want: "failed to parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	doc := "plants:\n  - {type: basic, name: Sprout, rarity: common, growth_time: 5, growth_stages: 5, default: true}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	c, err := New(path)

	require.NoError(t, err)
	def, ok := c.Plant(domain.PlantBasic)
	require.True(t, ok)
	assert.Equal(t, "Sprout", def.Name)
	assert.Empty(t, c.ShopItems())
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open catalog file")
}
