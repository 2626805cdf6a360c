package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/logger"
	"github.com/osse101/TrenchGarden_Go/internal/repository"
)

// snapshotRow is one row of queryListGardens
type snapshotRow struct {
	Username string
	Snapshot []byte
}

// GardenRepository implements repository.Garden for PostgreSQL.
// Each garden is one row holding its JSONB snapshot plus a few columns
// denormalized for ranking.
type GardenRepository struct {
	db *pgxpool.Pool
}

// NewGardenRepository creates a new garden repository
func NewGardenRepository(db *pgxpool.Pool) *GardenRepository {
	return &GardenRepository{db: db}
}

// Get loads the garden for username
func (r *GardenRepository) Get(ctx context.Context, username string) (*domain.Garden, error) {
	var data []byte
	err := r.db.QueryRow(ctx, queryGetGarden, username).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrGardenNotFound, username)
		}
		return nil, fmt.Errorf("failed to get garden: %w", err)
	}
	return repository.DecodeSnapshot(data)
}

// Save creates or replaces the garden snapshot
func (r *GardenRepository) Save(ctx context.Context, garden *domain.Garden) error {
	data, err := repository.EncodeSnapshot(garden)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, queryUpsertGarden,
		garden.Username,
		data,
		domain.SnapshotVersion,
		garden.Level,
		len(garden.Plants),
	)
	if err != nil {
		return fmt.Errorf("failed to save garden: %w", err)
	}
	return nil
}

// Delete removes the garden snapshot
func (r *GardenRepository) Delete(ctx context.Context, username string) error {
	if _, err := r.db.Exec(ctx, queryDeleteGarden, username); err != nil {
		return fmt.Errorf("failed to delete garden: %w", err)
	}
	return nil
}

// List returns every stored garden ordered by username
func (r *GardenRepository) List(ctx context.Context) ([]*domain.Garden, error) {
	rows, err := r.db.Query(ctx, queryListGardens)
	if err != nil {
		return nil, fmt.Errorf("failed to list gardens: %w", err)
	}

	snapshots, err := pgx.CollectRows(rows, pgx.RowToStructByPos[snapshotRow])
	if err != nil {
		return nil, fmt.Errorf("failed to scan gardens: %w", err)
	}

	out := make([]*domain.Garden, 0, len(snapshots))
	for _, row := range snapshots {
		g, err := repository.DecodeSnapshot(row.Snapshot)
		if err != nil {
			logger.FromContext(ctx).Warn(repository.LogMsgSnapshotSkipped, "username", row.Username, "error", err)
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// ListUsernames returns every stored username in order
func (r *GardenRepository) ListUsernames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, queryListUsernames)
	if err != nil {
		return nil, fmt.Errorf("failed to list usernames: %w", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to scan usernames: %w", err)
	}
	return names, nil
}

// Ping checks the pool can reach the database
func (r *GardenRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
