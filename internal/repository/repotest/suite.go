// Package repotest holds behaviour tests shared by every repository.Garden backend.
package repotest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
)

// SampleGarden returns a garden with one plant and one inventory item
func SampleGarden(username string) *domain.Garden {
	now := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	g := domain.NewGarden(username, now)
	g.Coins = 75
	g.Level = 2
	g.Experience = 40
	g.Plants = append(g.Plants, domain.Plant{
		ID:               "plant-1",
		Type:             domain.PlantCactus,
		Position:         domain.Position{X: 1.5, Y: domain.GroundHeight, Z: -3},
		GrowthStage:      3,
		Color:            "#66bb6a",
		Rotation:         1.25,
		PlantedAt:        now.Add(-time.Hour),
		LastGrowthUpdate: now,
		Owner:            username,
		GrowthProgress:   0.5,
	})
	g.Inventory = append(g.Inventory, domain.ShopItem{
		ID: "lucky-bamboo", Name: "Lucky Bamboo", Type: domain.PlantBamboo,
		Price: 35, Rarity: domain.RarityUncommon, UnlockLevel: 1, Color: "#7cb342",
	})
	return g
}

// RunGardenStoreTests exercises the repository.Garden contract against a fresh store
func RunGardenStoreTests(t *testing.T, newStore func(t *testing.T) repository.Garden) {
	t.Helper()
	ctx := context.Background()

	t.Run("get missing returns not found", func(t *testing.T) {
		store := newStore(t)

		_, err := store.Get(ctx, "nobody")

		assert.ErrorIs(t, err, domain.ErrGardenNotFound)
	})

	t.Run("save then get round trips", func(t *testing.T) {
		store := newStore(t)
		g := SampleGarden("alice")

		require.NoError(t, store.Save(ctx, g))
		got, err := store.Get(ctx, "alice")

		require.NoError(t, err)
		assert.Equal(t, g.Username, got.Username)
		assert.Equal(t, g.Coins, got.Coins)
		assert.Equal(t, g.Level, got.Level)
		assert.Equal(t, g.Experience, got.Experience)
		assert.Equal(t, domain.SnapshotVersion, got.Version)
		require.Len(t, got.Plants, 1)
		assert.Equal(t, g.Plants[0].ID, got.Plants[0].ID)
		assert.Equal(t, g.Plants[0].Position, got.Plants[0].Position)
		assert.Equal(t, g.Plants[0].GrowthProgress, got.Plants[0].GrowthProgress)
		assert.True(t, g.Plants[0].LastGrowthUpdate.Equal(got.Plants[0].LastGrowthUpdate))
		assert.Equal(t, g.Inventory, got.Inventory)
	})

	t.Run("save overwrites", func(t *testing.T) {
		store := newStore(t)
		g := SampleGarden("bob")
		require.NoError(t, store.Save(ctx, g))

		g.Coins = 999
		g.Plants = nil
		require.NoError(t, store.Save(ctx, g))

		got, err := store.Get(ctx, "bob")
		require.NoError(t, err)
		assert.Equal(t, 999, got.Coins)
		assert.Empty(t, got.Plants)
	})

	t.Run("returned garden is detached", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Save(ctx, SampleGarden("carol")))

		got, err := store.Get(ctx, "carol")
		require.NoError(t, err)
		got.Plants[0].GrowthStage = 5
		got.Coins = 0

		again, err := store.Get(ctx, "carol")
		require.NoError(t, err)
		assert.Equal(t, 3, again.Plants[0].GrowthStage)
		assert.Equal(t, 75, again.Coins)
	})

	t.Run("delete removes and is idempotent", func(t *testing.T) {
		store := newStore(t)
		require.NoError(t, store.Save(ctx, SampleGarden("dave")))

		require.NoError(t, store.Delete(ctx, "dave"))
		require.NoError(t, store.Delete(ctx, "dave"))

		_, err := store.Get(ctx, "dave")
		assert.ErrorIs(t, err, domain.ErrGardenNotFound)
	})

	t.Run("list returns all gardens", func(t *testing.T) {
		store := newStore(t)
		for i := 0; i < 3; i++ {
			require.NoError(t, store.Save(ctx, SampleGarden(fmt.Sprintf("user%d", i))))
		}
		require.NoError(t, store.Delete(ctx, "user1"))

		all, err := store.List(ctx)

		require.NoError(t, err)
		names := make([]string, 0, len(all))
		for _, g := range all {
			names = append(names, g.Username)
		}
		assert.ElementsMatch(t, []string{"user0", "user2"}, names)
	})

	t.Run("list usernames is sorted", func(t *testing.T) {
		store := newStore(t)
		for _, name := range []string{"mallory", "alice", "trent"} {
			require.NoError(t, store.Save(ctx, SampleGarden(name)))
		}

		names, err := store.ListUsernames(ctx)

		require.NoError(t, err)
		assert.Equal(t, []string{"alice", "mallory", "trent"}, names)
	})

	t.Run("save rejects empty username", func(t *testing.T) {
		store := newStore(t)

		err := store.Save(ctx, &domain.Garden{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}
