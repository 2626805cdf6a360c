package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/TrenchGarden_Go/internal/config"
	"github.com/osse101/TrenchGarden_Go/internal/database"
	"github.com/osse101/TrenchGarden_Go/internal/database/memory"
	"github.com/osse101/TrenchGarden_Go/internal/database/postgres"
	"github.com/osse101/TrenchGarden_Go/internal/database/sqlite"
	"github.com/osse101/TrenchGarden_Go/internal/localsave"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
)

// Storage is the selected garden store plus its release func
type Storage struct {
	Gardens repository.Garden
	Close   func() error
}

func noopClose() error { return nil }

// OpenStorage opens the backend named by STORAGE_BACKEND, running migrations
// for the SQL backends
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var (
		st  *Storage
		err error
	)

	switch cfg.StorageBackend {
	case config.StorageMemory:
		st = &Storage{Gardens: memory.NewGardenStore(), Close: noopClose}
	case config.StorageSQLite:
		st, err = openSQLite(ctx, cfg.SQLitePath)
	case config.StoragePostgres:
		st, err = openPostgres(ctx, cfg)
	case config.StorageLocalSave:
		st, err = openLocalSave(cfg.LocalSaveAppName)
	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s (%s): %w", ErrMsgFailedOpenStorage, cfg.StorageBackend, err)
	}

	slog.Info(LogMsgStorageOpened, "backend", cfg.StorageBackend)
	return st, nil
}

func openSQLite(ctx context.Context, path string) (*Storage, error) {
	store, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Storage{Gardens: store, Close: store.Close}, nil
}

func openPostgres(ctx context.Context, cfg *config.Config) (*Storage, error) {
	pool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return nil, err
	}
	if err := database.MigratePool(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrateSchema, err)
	}
	return &Storage{
		Gardens: postgres.NewGardenRepository(pool),
		Close: func() error {
			pool.Close()
			return nil
		},
	}, nil
}

func openLocalSave(appName string) (*Storage, error) {
	store, err := localsave.Open(appName)
	if err != nil {
		return nil, err
	}
	return &Storage{Gardens: store, Close: noopClose}, nil
}
