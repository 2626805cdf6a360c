package repository

import (
	"encoding/json"
	"fmt"

	"github.com/osse101/TrenchGarden_Go/internal/domain"
)

// LogMsgSnapshotSkipped is logged when List meets a snapshot it cannot decode
const LogMsgSnapshotSkipped = "Skipping unreadable garden snapshot"

// EncodeSnapshot serializes a garden at the current snapshot version
func EncodeSnapshot(g *domain.Garden) ([]byte, error) {
	if g == nil || g.Username == "" {
		return nil, fmt.Errorf("%w: garden without username", domain.ErrInvalidInput)
	}
	out := *g
	out.Version = domain.SnapshotVersion
	data, err := json.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode garden snapshot: %w", err)
	}
	return data, nil
}

// DecodeSnapshot parses a stored snapshot and upgrades older versions in memory.
// Snapshots written by a newer release fail with domain.ErrUnsupportedSnapshot.
func DecodeSnapshot(data []byte) (*domain.Garden, error) {
	var g domain.Garden
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to decode garden snapshot: %w", err)
	}

	if g.Version > domain.SnapshotVersion {
		return nil, fmt.Errorf("%w: version %d, supported %d", domain.ErrUnsupportedSnapshot, g.Version, domain.SnapshotVersion)
	}

	// Version 0 predates the version field and may lack slices
	if g.Plants == nil {
		g.Plants = []domain.Plant{}
	}
	if g.Inventory == nil {
		g.Inventory = []domain.ShopItem{}
	}
	if g.Level < domain.StartingLevel {
		g.Level = domain.StartingLevel
	}
	g.Version = domain.SnapshotVersion

	return &g, nil
}
