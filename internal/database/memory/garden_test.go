package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/TrenchGarden_Go/internal/repository"
	"github.com/osse101/TrenchGarden_Go/internal/repository/repotest"
)

func TestGardenStore(t *testing.T) {
	repotest.RunGardenStoreTests(t, func(t *testing.T) repository.Garden {
		return NewGardenStore()
	})
}

func TestGardenStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGardenStore().Get(ctx, "alice")

	assert.ErrorIs(t, err, context.Canceled)
}
