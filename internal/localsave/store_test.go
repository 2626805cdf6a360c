package localsave

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/domain"

	"github.com/osse101/TrenchGarden_Go/internal/repository"
	"github.com/osse101/TrenchGarden_Go/internal/repository/repotest"
)

// newTestStore opens a uniquely named gdata app and removes its directory afterwards
func newTestStore(t *testing.T) repository.Garden {
	t.Helper()

	appName := fmt.Sprintf("trench_garden_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Skipf("Cannot create gdata manager for testing: %v", err)
	}

	t.Cleanup(func() {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			_ = os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})

	return NewGardenStore(manager)
}

func TestGardenStore(t *testing.T) {
	repotest.RunGardenStoreTests(t, newTestStore)
}

func TestGardenStore_RejectsPathLikeUsernames(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"a/b", "../x", `a\b`} {
		err := store.Save(ctx, repotest.SampleGarden(name))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, name)

		_, err = store.Get(ctx, name)
		assert.ErrorIs(t, err, domain.ErrGardenNotFound, name)
	}

	// names that are odd but file-safe still work
	for _, name := range []string{"bob.", "c:d", "é"} {
		require.NoError(t, store.Save(ctx, repotest.SampleGarden(name)), name)
		got, err := store.Get(ctx, name)
		require.NoError(t, err, name)
		assert.Equal(t, name, got.Username)
	}

	names, err := store.ListUsernames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"bob.", "c:d", "é"}, names)
}
