// Command debug dumps every stored garden from the configured backend.
package main

import (
	"context"
	"fmt"
	"log"
	"sort"

	"github.com/osse101/TrenchGarden_Go/internal/bootstrap"
	"github.com/osse101/TrenchGarden_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	store, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	gardens, err := store.Gardens.List(ctx)
	if err != nil {
		log.Fatalf("Failed to list gardens: %v", err)
	}
	sort.Slice(gardens, func(i, j int) bool { return gardens[i].Username < gardens[j].Username })

	fmt.Printf("--- Gardens (%s) ---\n", cfg.StorageBackend)
	for _, g := range gardens {
		fmt.Printf("%s: level %d, %d xp, %d coins, %d plants\n",
			g.Username, g.Level, g.Experience, g.Coins, len(g.Plants))
		for _, p := range g.Plants {
			fmt.Printf("    %s %-18s stage=%d pos=(%.1f, %.1f)\n",
				p.ID, p.Type, p.GrowthStage, p.Position.X, p.Position.Y)
		}
	}
}
