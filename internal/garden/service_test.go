package garden

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/catalog"
	"github.com/osse101/TrenchGarden_Go/internal/concurrency"
	"github.com/osse101/TrenchGarden_Go/internal/database/memory"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/growth"
)

type recorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *recorder) handle(ctx context.Context, evt event.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, evt)
	return nil
}

func (r *recorder) ofType(t event.Type) []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []event.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	svc   *service
	store *memory.GardenStore
	bus   *event.MemoryBus
	rec   *recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)

	store := memory.NewGardenStore()
	locks := concurrency.NewLockManager()
	bus := event.NewMemoryBus()
	rec := &recorder{}
	for _, et := range domain.AllEventTypes {
		bus.Subscribe(event.Type(et), rec.handle)
	}

	growthSvc := growth.NewService(store, cat, locks, bus)
	svc := newService(store, cat, growthSvc, locks, bus, time.Now)
	return &fixture{svc: svc, store: store, bus: bus, rec: rec}
}

func (f *fixture) register(t *testing.T, username string) *domain.Garden {
	t.Helper()
	g, err := f.svc.Register(context.Background(), username)
	require.NoError(t, err)
	return g
}

func TestRegister(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	g := f.register(t, "  alice ")

	assert.Equal(t, "alice", g.Username)
	assert.Equal(t, domain.StartingCoins, g.Coins)
	assert.Equal(t, domain.StartingLevel, g.Level)
	assert.Zero(t, g.Experience)
	assert.Empty(t, g.Inventory)
	require.Len(t, g.Plants, 5)

	wantStages := map[domain.PlantType]int{
		domain.PlantBasic:    3,
		domain.PlantMushroom: 2,
		domain.PlantFlower:   4,
		domain.PlantCactus:   5,
		domain.PlantVenus:    3,
	}
	for i, p := range g.Plants {
		assert.Equal(t, domain.InitialPlantIDPrefix+string(rune('1'+i)), p.ID)
		assert.Equal(t, wantStages[p.Type], p.GrowthStage, p.Type)
		assert.Equal(t, "alice", p.Owner)
		assert.NotEmpty(t, p.Color)
		assert.True(t, p.PlantedAt.Before(p.LastGrowthUpdate))
	}

	stored, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, stored.Plants, 5)
	assert.Len(t, f.rec.ofType(event.GardenCreated), 1)
}

func TestRegister_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	_, err := f.svc.Register(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrGardenExists)

	_, err = f.svc.Register(ctx, "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.svc.Register(ctx, "abcdefghijklmnopqrstuvwxyz0123456789")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	for _, name := range []string{"a/b", "../x", `a\b`} {
		_, err = f.svc.Register(ctx, name)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)
	}
}

func TestRename(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")
	f.register(t, "carol")

	g, err := f.svc.Rename(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", g.Username)
	for _, p := range g.Plants {
		assert.Equal(t, "bob", p.Owner)
	}

	_, err = f.store.Get(ctx, "alice")
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)

	_, err = f.svc.Rename(ctx, "bob", "carol")
	assert.ErrorIs(t, err, domain.ErrGardenExists)

	_, err = f.svc.Rename(ctx, "nobody", "dave")
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)

	same, err := f.svc.Rename(ctx, "bob", "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", same.Username)
}

func TestRename_PublishesEvent(t *testing.T) {
	f := newFixture(t)
	f.register(t, "alice")

	_, err := f.svc.Rename(context.Background(), "alice", "bob")
	require.NoError(t, err)

	renamed := f.rec.ofType(event.GardenRenamed)
	require.Len(t, renamed, 1)
	payload, err := event.DecodePayload[domain.GardenRenamedPayload](renamed[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "bob", payload.Username)
	assert.Equal(t, "alice", payload.OldUsername)
}

// failingDeleteStore refuses to delete one username
type failingDeleteStore struct {
	*memory.GardenStore
	refuse string
}

func (s *failingDeleteStore) Delete(ctx context.Context, username string) error {
	if username == s.refuse {
		return errors.New("disk full")
	}
	return s.GardenStore.Delete(ctx, username)
}

func TestRename_RollsBackWhenOldGardenCannotBeRemoved(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	store := &failingDeleteStore{GardenStore: memory.NewGardenStore(), refuse: "alice"}
	locks := concurrency.NewLockManager()
	bus := event.NewMemoryBus()
	rec := &recorder{}
	bus.Subscribe(event.GardenRenamed, rec.handle)
	svc := newService(store, cat, growth.NewService(store, cat, locks, bus), locks, bus, time.Now)

	ctx := context.Background()
	_, err = svc.Register(ctx, "alice")
	require.NoError(t, err)

	_, err = svc.Rename(ctx, "alice", "bob")
	require.Error(t, err)

	_, err = store.Get(ctx, "alice")
	assert.NoError(t, err)
	_, err = store.Get(ctx, "bob")
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)
	assert.Empty(t, rec.ofType(event.GardenRenamed))
}

func TestCoins(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	g, err := f.svc.AddCoins(ctx, "alice", 25)
	require.NoError(t, err)
	assert.Equal(t, 125, g.Coins)

	g, err = f.svc.SpendCoins(ctx, "alice", 100)
	require.NoError(t, err)
	assert.Equal(t, 25, g.Coins)

	_, err = f.svc.SpendCoins(ctx, "alice", 26)
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	stored, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 25, stored.Coins, "failed spend leaves balance unchanged")

	_, err = f.svc.AddCoins(ctx, "alice", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = f.svc.SpendCoins(ctx, "alice", -5)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
	_, err = f.svc.AddCoins(ctx, "nobody", 5)
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)
}

func TestCoins_Concurrent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AddCoins(ctx, "alice", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	g, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingCoins+50, g.Coins)
}

func TestPlacePlant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	p, err := f.svc.PlacePlant(ctx, "alice", PlacePlantRequest{
		Type:     "Bonsai",
		Position: domain.Position{X: 12, Z: -12},
		Rotation: -1,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PlantBonsai, p.Type)
	assert.Equal(t, domain.MinGrowthStage, p.GrowthStage)
	assert.Zero(t, p.GrowthProgress)
	assert.Equal(t, domain.GroundHeight, p.Position.Y)
	assert.NotEmpty(t, p.Color, "color defaults to the catalog color")
	assert.Contains(t, p.ID, domain.PlantIDPrefix)
	assert.GreaterOrEqual(t, p.Rotation, 0.0)
	assert.Equal(t, "alice", p.Owner)

	g, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, g.Plants, 6)
	assert.Len(t, f.rec.ofType(event.PlantPlaced), 1)
}

func TestPlacePlant_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	tests := []struct {
		name    string
		req     PlacePlantRequest
		wantErr error
	}{
		{"unknown type", PlacePlantRequest{Type: "cactsu", Position: domain.Position{X: 12, Z: 12}}, domain.ErrUnknownPlantType},
		{"locked type", PlacePlantRequest{Type: "orchid", Position: domain.Position{X: 12, Z: 12}}, domain.ErrPlantLocked},
		{"outside plot", PlacePlantRequest{Type: "basic", Position: domain.Position{X: 15.5, Z: 0}}, domain.ErrOutsidePlot},
		{"too close to starter", PlacePlantRequest{Type: "basic", Position: domain.Position{X: 1, Z: 1}}, domain.ErrTooClose},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.PlacePlant(ctx, "alice", tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	g, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, g.Plants, 5, "rejected placements leave the garden unchanged")
	assert.Empty(t, f.rec.ofType(event.PlantPlaced))
}

func TestPlacePlant_UnlockedByInventory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.register(t, "alice")

	g.Inventory = append(g.Inventory, domain.ShopItem{ID: "exotic-orchid", Type: domain.PlantOrchid})
	require.NoError(t, f.store.Save(ctx, g))

	p, err := f.svc.PlacePlant(ctx, "alice", PlacePlantRequest{Type: "orchid", Position: domain.Position{X: -12, Z: 12}, Color: "#ffffff"})
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", p.Color)
}

func TestRemovePlant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	removed, err := f.svc.RemovePlant(ctx, "alice", "initial-2")
	require.NoError(t, err)
	assert.Equal(t, domain.PlantMushroom, removed.Type)

	g, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, g.Plants, 4)
	assert.Equal(t, -1, g.FindPlant("initial-2"))

	_, err = f.svc.RemovePlant(ctx, "alice", "initial-2")
	assert.ErrorIs(t, err, domain.ErrPlantNotFound)
	assert.Len(t, f.rec.ofType(event.PlantRemoved), 1)

	// the freed spot can be reused
	_, err = f.svc.PlacePlant(ctx, "alice", PlacePlantRequest{Type: "basic", Position: domain.Position{X: 0.5, Z: 0.5}})
	assert.NoError(t, err)
}

func TestGainExperience(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.register(t, "alice")

	change, err := f.svc.GainExperience(ctx, "alice", 40)
	require.NoError(t, err)
	assert.False(t, change.LeveledUp())
	assert.Empty(t, f.rec.ofType(event.GardenLevelUp))

	// 40 + 310 crosses 100 (level 1) and 200 (level 2), leaving 50
	change, err = f.svc.GainExperience(ctx, "alice", 310)
	require.NoError(t, err)
	assert.Equal(t, 1, change.OldLevel)
	assert.Equal(t, 3, change.NewLevel)
	assert.Equal(t, 50, change.Experience)
	assert.Equal(t, domain.StartingCoins+2*domain.LevelUpCoinBonus, change.Coins)

	levelUps := f.rec.ofType(event.GardenLevelUp)
	require.Len(t, levelUps, 2)
	first := levelUps[0].Payload.(domain.GardenLevelUpPayload)
	second := levelUps[1].Payload.(domain.GardenLevelUpPayload)
	assert.Equal(t, 2, first.NewLevel)
	assert.Equal(t, 150, first.Coins)
	assert.Equal(t, 3, second.NewLevel)
	assert.Equal(t, 200, second.Coins)

	_, err = f.svc.GainExperience(ctx, "alice", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func TestGet_AppliesGrowthLazily(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	g := f.register(t, "alice")

	// basic grows fully in 60s
	g.Plants[0].LastGrowthUpdate = time.Now().Add(-time.Hour)
	require.NoError(t, f.store.Save(ctx, g))

	got, err := f.svc.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxGrowthStage, got.Plants[0].GrowthStage)

	stored, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 3, stored.Plants[0].GrowthStage)

	_, err = f.svc.Get(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrGardenNotFound)
}

func TestUpdateGrowth_AwardsExperienceThroughEvents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.svc.Subscribe(f.bus)
	g := f.register(t, "alice")

	// flower (rare, 20 XP) is at stage 4 and needs 120s per stage
	g.Plants[2].LastGrowthUpdate = time.Now().Add(-time.Hour)
	require.NoError(t, f.store.Save(ctx, g))

	updated, err := f.svc.UpdateGrowth(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxGrowthStage, updated.Plants[2].GrowthStage)

	assert.Len(t, f.rec.ofType(event.PlantMatured), 1)
	after, err := f.store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 20, after.Experience)
}

func TestHandlePlantMatured_MissingGarden(t *testing.T) {
	f := newFixture(t)
	evt := event.NewPlantMaturedEvent("ghost", domain.Plant{ID: "p"}, domain.RarityCommon, 5)
	assert.NoError(t, f.svc.handlePlantMatured(context.Background(), evt))
}

func TestHandlePlantMatured_RetriedDeliveryAwardsOnce(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	store := memory.NewGardenStore()
	locks := concurrency.NewLockManager()

	rp, err := event.NewResilientPublisher(event.NewMemoryBus(), 3, time.Millisecond, filepath.Join(t.TempDir(), "dlq.jsonl"))
	require.NoError(t, err)

	growthSvc := growth.NewService(store, cat, locks, rp)
	svc := newService(store, cat, growthSvc, locks, rp, time.Now)
	svc.Subscribe(rp)

	var notifyAttempts atomic.Int32
	rp.Subscribe(event.PlantMatured, func(ctx context.Context, evt event.Event) error {
		notifyAttempts.Add(1)
		return errors.New("discord down")
	})

	ctx := context.Background()
	_, err = svc.Register(ctx, "alice")
	require.NoError(t, err)

	plant := domain.Plant{ID: "plant-1", Type: domain.PlantLegendary}
	require.NoError(t, rp.Publish(ctx, event.NewPlantMaturedEvent("alice", plant, domain.RarityLegendary, 50)))

	// first delivery plus three retries
	assert.Eventually(t, func() bool { return notifyAttempts.Load() == 4 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, rp.Shutdown(ctx))

	g, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 50, g.Experience)
	assert.Equal(t, domain.StartingLevel, g.Level)
	assert.Equal(t, domain.StartingCoins, g.Coins)
}
