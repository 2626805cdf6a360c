// Command reset deletes garden snapshots from the configured storage backend.
//
//	reset -user alice     delete one garden
//	reset -all            delete every garden
package main

import (
	"context"
	"flag"
	"log"

	"github.com/osse101/TrenchGarden_Go/internal/bootstrap"
	"github.com/osse101/TrenchGarden_Go/internal/config"
)

func main() {
	username := flag.String("user", "", "username whose garden to delete")
	all := flag.Bool("all", false, "delete every garden")
	flag.Parse()

	if (*username == "") == !*all {
		log.Fatal("Specify exactly one of -user or -all")
	}

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

	targets := []string{*username}
	if *all {
		gardens, err := store.Gardens.List(ctx)
		if err != nil {
			log.Fatalf("Failed to list gardens: %v", err)
		}
		targets = targets[:0]
		for _, g := range gardens {
			targets = append(targets, g.Username)
		}
	}

	for _, name := range targets {
		if err := store.Gardens.Delete(ctx, name); err != nil {
			log.Fatalf("Failed to delete garden %s: %v", name, err)
		}
		log.Printf("Deleted garden %s\n", name)
	}

	log.Printf("Reset complete (%s backend, %d gardens)\n", cfg.StorageBackend, len(targets))
}
