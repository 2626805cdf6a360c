package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/TrenchGarden_Go/internal/catalog"
	"github.com/osse101/TrenchGarden_Go/internal/concurrency"
	"github.com/osse101/TrenchGarden_Go/internal/database/memory"
	"github.com/osse101/TrenchGarden_Go/internal/domain"
	"github.com/osse101/TrenchGarden_Go/internal/event"
	"github.com/osse101/TrenchGarden_Go/internal/garden"
	"github.com/osse101/TrenchGarden_Go/internal/growth"
	"github.com/osse101/TrenchGarden_Go/internal/shop"
	"github.com/osse101/TrenchGarden_Go/internal/sse"
	"github.com/osse101/TrenchGarden_Go/internal/visit"
	"github.com/osse101/TrenchGarden_Go/internal/wallet"
)

func newTestRouter(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	return NewRouter(Options{APIKey: apiKey, Version: "test"}, newTestServices(t))
}

func newTestServices(t *testing.T) Services {
	t.Helper()

	cat, err := catalog.Default()
	require.NoError(t, err)

	repo := memory.NewGardenStore()
	locks := concurrency.NewLockManager()
	bus := event.NewMemoryBus()
	growthSvc := growth.NewService(repo, cat, locks, bus)
	gardenSvc := garden.NewService(repo, cat, growthSvc, locks, bus)
	gardenSvc.Subscribe(bus)

	return Services{
		Store:   repo,
		Catalog: cat,
		Garden:  gardenSvc,
		Shop:    shop.NewService(repo, cat, locks, bus),
		Visit:   visit.NewService(repo, growthSvc, time.Minute),
		Wallet:  wallet.NewService(repo, locks, bus, 0),
	}
}

func call(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRouter_GardenLifecycle(t *testing.T) {
	h := newTestRouter(t, "")

	rec := call(t, h, http.MethodPost, "/api/v1/gardens", `{"username":"alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var g domain.Garden
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, "alice", g.Username)
	assert.Equal(t, domain.StartingCoins, g.Coins)
	assert.NotEmpty(t, g.Plants)

	rec = call(t, h, http.MethodPost, "/api/v1/gardens", `{"username":"alice"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = call(t, h, http.MethodGet, "/api/v1/gardens/alice", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodPost, "/api/v1/gardens/alice/plants", `{"type":"basic","position":{"x":12,"y":0,"z":-12}}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var plant domain.Plant
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plant))

	rec = call(t, h, http.MethodPost, "/api/v1/gardens/alice/plants", `{"type":"basic","position":{"x":99,"y":0,"z":0}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, h, http.MethodDelete, "/api/v1/gardens/alice/plants/"+plant.ID, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodPost, "/api/v1/gardens/alice/coins/spend", `{"amount":1000}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, h, http.MethodPut, "/api/v1/gardens/alice/username", `{"new_username":"alicia"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodGet, "/api/v1/gardens/alice", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(t, h, http.MethodGet, "/api/v1/visit/alicia", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, h, http.MethodGet, "/api/v1/visit/featured?limit=2", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alicia")
}

func TestRouter_ShopPurchase(t *testing.T) {
	h := newTestRouter(t, "")
	require.Equal(t, http.StatusCreated, call(t, h, http.MethodPost, "/api/v1/gardens", `{"username":"bob"}`).Code)

	rec := call(t, h, http.MethodGet, "/api/v1/shop/items?username=bob&rarity=common", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var listings []domain.ShopListing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.NotEmpty(t, listings)

	rec = call(t, h, http.MethodPost, "/api/v1/shop/purchase", `{"username":"bob","item_id":"lucky-bamboo"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var result domain.PurchaseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, domain.StartingCoins-35, result.CoinsRemaining)

	rec = call(t, h, http.MethodPost, "/api/v1/shop/purchase", `{"username":"bob","item_id":"golden-flower"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_CatalogAndHealth(t *testing.T) {
	h := newTestRouter(t, "")

	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/api/v1/catalog/plants", "").Code)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/healthz", "").Code)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/readyz", "").Code)

	rec := call(t, h, http.MethodGet, "/version", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"version":"test"`)

	rec = call(t, h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_RequiresAPIKey(t *testing.T) {
	h := newTestRouter(t, "secret")

	rec := call(t, h, http.MethodGet, "/api/v1/catalog/plants", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/plants", nil)
	req.Header.Set(HeaderAPIKey, "secret")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/healthz", "").Code)
}

func TestRouter_BodyTooLarge(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)
	repo := memory.NewGardenStore()
	locks := concurrency.NewLockManager()
	growthSvc := growth.NewService(repo, cat, locks, nil)

	h := NewRouter(Options{MaxBodyBytes: 8}, Services{
		Store:  repo,
		Garden: garden.NewService(repo, cat, growthSvc, locks, nil),
	})

	rec := call(t, h, http.MethodPost, "/api/v1/gardens", `{"username":"a-very-long-body"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoggingMiddleware_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("X-API-Key", "secret-key-123")
	req.Header.Set("Authorization", "Bearer mytoken")
	req.Header.Set("User-Agent", "TestAgent")
	rec := httptest.NewRecorder()

	loggingMiddleware(okHandler).ServeHTTP(rec, req)

	out := buf.String()
	require.Contains(t, out, LogMsgRequestHeaders)
	assert.NotContains(t, out, "secret-key-123")
	assert.NotContains(t, out, "Bearer mytoken")
	assert.Contains(t, out, "TestAgent")
	assert.Contains(t, out, "request_id")
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_PropagatesRequestID(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set(HeaderRequestID, "abc-123")
	rec := httptest.NewRecorder()

	loggingMiddleware(okHandler).ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
}

func TestLoggingMiddleware_SkipsHealthChecks(t *testing.T) {
	rec := httptest.NewRecorder()
	loggingMiddleware(okHandler).ServeHTTP(rec, httptest.NewRequest("GET", "/healthz", nil))

	assert.Empty(t, rec.Header().Get(HeaderRequestID))
}

func TestServer_StopEndsOpenEventStreams(t *testing.T) {
	svc := newTestServices(t)
	hub := sse.NewHub()
	hub.Start()
	svc.Hub = hub

	srv := NewServer(Options{Version: "test"}, svc)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	served := make(chan error, 1)
	go func() { served <- srv.Serve(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/v1/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// wait for the connected message so the stream is registered
	line, err := bufio.NewReader(resp.Body).ReadString('\n')
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(line, "id: ") || strings.HasPrefix(line, "event: "), line)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	start := time.Now()
	require.NoError(t, srv.Stop(ctx))
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.True(t, errors.Is(<-served, http.ErrServerClosed))
	assert.Zero(t, hub.ClientCount())
}
