// Package sqlite provides a SQLite-backed garden store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/osse101/TrenchGarden_Go/internal/database"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
)

// GardenStore persists garden snapshots as JSON rows in SQLite.
type GardenStore struct {
	db *sql.DB
}

// Open opens the SQLite database at path and applies embedded migrations.
func Open(ctx context.Context, path string) (*GardenStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	}

	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := database.Migrate(ctx, db, database.DialectSQLite); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &GardenStore{db: db}, nil
}

// Close closes the SQLite handle.
func (s *GardenStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get loads the garden for username
func (s *GardenStore) Get(ctx context.Context, username string) (*domain.Garden, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT snapshot FROM gardens WHERE username = ?`, username).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrGardenNotFound, username)
	}
	if err != nil {
		return nil, fmt.Errorf("get garden: %w", err)
	}
	return repository.DecodeSnapshot(data)
}

// Save creates or replaces the garden snapshot
func (s *GardenStore) Save(ctx context.Context, garden *domain.Garden) error {
	data, err := repository.EncodeSnapshot(garden)
	if err != nil {
		return err
	}

	now := toMillis(time.Now())
	createdAt := now
	if !garden.CreatedAt.IsZero() {
		createdAt = toMillis(garden.CreatedAt)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO gardens (username, snapshot, version, level, plant_count, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(username) DO UPDATE SET
		   snapshot = excluded.snapshot,
		   version = excluded.version,
		   level = excluded.level,
		   plant_count = excluded.plant_count,
		   updated_at = excluded.updated_at`,
		garden.Username,
		string(data),
		domain.SnapshotVersion,
		garden.Level,
		len(garden.Plants),
		createdAt,
		now,
	)
	if err != nil {
		return fmt.Errorf("save garden: %w", err)
	}
	return nil
}

// Delete removes the garden snapshot
func (s *GardenStore) Delete(ctx context.Context, username string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM gardens WHERE username = ?`, username); err != nil {
		return fmt.Errorf("delete garden: %w", err)
	}
	return nil
}

// List returns every stored garden ordered by username
func (s *GardenStore) List(ctx context.Context) ([]*domain.Garden, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, snapshot FROM gardens ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list gardens: %w", err)
	}
	defer rows.Close()

	var out []*domain.Garden
	for rows.Next() {
		var (
			username string
			data     []byte
		)
		if err := rows.Scan(&username, &data); err != nil {
			return nil, fmt.Errorf("scan garden: %w", err)
		}
		g, err := repository.DecodeSnapshot(data)
		if err != nil {
			logger.FromContext(ctx).Warn(repository.LogMsgSnapshotSkipped, "username", username, "error", err)
			continue
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gardens: %w", err)
	}
	return out, nil
}

// ListUsernames returns every stored username in order
func (s *GardenStore) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username FROM gardens ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list usernames: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var username string
		if err := rows.Scan(&username); err != nil {
			return nil, fmt.Errorf("scan username: %w", err)
		}
		out = append(out, username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usernames: %w", err)
	}
	return out, nil
}

// Ping checks the database handle
func (s *GardenStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}
