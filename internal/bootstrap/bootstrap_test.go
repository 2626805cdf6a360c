package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/config"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/testing/leaktest"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Port:               0,
		LogLevel:           "debug",
		LogFormat:          "json",
		LogDir:             filepath.Join(dir, "logs"),
		Environment:        "test",
		ServiceName:        "trench-garden",
		Version:            "test",
		StorageBackend:     config.StorageMemory,
		SQLitePath:         filepath.Join(dir, "garden.db"),
		GrowthTickInterval: time.Hour,
		WalletConnectDelay: 0,
		FeaturedCacheTTL:   time.Second,
		WorkerCount:        1,
		WorkerQueueSize:    4,
		EventMaxRetries:    1,
		EventRetryDelay:    10 * time.Millisecond,
		DeadLetterPath:     filepath.Join(dir, "deadletter.jsonl"),
	}
}

func restoreDefaultLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	for i := 1; i <= 5; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-0%d_00-00-00", i))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o644))

	cleanupLogs(dir, 2)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{
		"session_2026-01-04_00-00-00.log",
		"session_2026-01-05_00-00-00.log",
		"notes.txt",
	}, names)
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	restoreDefaultLogger(t)
	cfg := testConfig(t)
	var stdout bytes.Buffer
	now := time.Date(2026, 3, 1, 12, 30, 0, 0, time.UTC)

	f, err := setupLogger(cfg, &stdout, now)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, filepath.Join(cfg.LogDir, "session_2026-03-01_12-30-00.log"), f.Name())
	assert.Contains(t, stdout.String(), LogMsgLoggingInitialized)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingApp)
}

func TestOpenStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		st, err := OpenStorage(ctx, testConfig(t))
		require.NoError(t, err)
		defer st.Close()

		assert.NoError(t, st.Gardens.Ping(ctx))
		_, err = st.Gardens.Get(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrGardenNotFound)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StorageBackend = config.StorageSQLite

		st, err := OpenStorage(ctx, cfg)
		require.NoError(t, err)
		defer st.Close()

		assert.NoError(t, st.Gardens.Ping(ctx))
		_, err = os.Stat(cfg.SQLitePath)
		assert.NoError(t, err)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.StorageBackend = "floppy"

		_, err := OpenStorage(ctx, cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), ErrMsgUnknownStorage)
	})
}

func TestInitializeEventSystem(t *testing.T) {
	cfg := testConfig(t)
	cfg.DeadLetterPath = filepath.Join(t.TempDir(), "nested", "dl.jsonl")

	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	require.NotNil(t, bus)
	require.NotNil(t, publisher)
	defer publisher.Shutdown(context.Background())

	_, err = os.Stat(cfg.DeadLetterPath)
	assert.NoError(t, err, "dead-letter file is created up front")
}

func TestInitializeEventSystem_Defaults(t *testing.T) {
	cfg := testConfig(t)
	cfg.EventMaxRetries = 0
	cfg.EventRetryDelay = 0
	cfg.DeadLetterPath = filepath.Join(t.TempDir(), "dl.jsonl")

	_, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	assert.NoError(t, publisher.Shutdown(context.Background()))
}

func TestApp_ServesAndShutsDown(t *testing.T) {
	cfg := testConfig(t)
	checker := leaktest.NewGoroutineChecker(t)

	app, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Nil(t, app.Notifier, "discord stays off without a token")

	h := app.Server.Handler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/gardens", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/api/v1/gardens/alice", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"alice"`)

	_, err = app.GrowthService.Tick(context.Background())
	assert.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	GracefulShutdown(ctx, app)

	// the featured cache's expiry goroutine lives for the process
	checker.Check(1)
}

func TestGracefulShutdown_PartialApp(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), &App{})
	})
}
