package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server
	Port           int      `env:"PORT" envDefault:"8080"`
	APIKey         string   `env:"API_KEY"` // API key for authentication, auth is disabled when empty
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`

	// Logging
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	LogDir      string `env:"LOG_DIR" envDefault:"logs"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"trench-garden"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// Storage
	StorageBackend   string `env:"STORAGE_BACKEND" envDefault:"sqlite"`
	SQLitePath       string `env:"SQLITE_PATH" envDefault:"data/garden.db"`
	LocalSaveAppName string `env:"LOCALSAVE_APP_NAME" envDefault:"trench-garden"`

	// Postgres
	DBUser            string        `env:"DB_USER" envDefault:"postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432"`
	DBName            string        `env:"DB_NAME" envDefault:"trenchgarden"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"30m"`

	// Game
	CatalogPath        string        `env:"CATALOG_PATH"`
	GrowthTickInterval time.Duration `env:"GROWTH_TICK_INTERVAL" envDefault:"5s"`
	WalletConnectDelay time.Duration `env:"WALLET_CONNECT_DELAY" envDefault:"1500ms"`
	FeaturedCacheTTL   time.Duration `env:"FEATURED_CACHE_TTL" envDefault:"30s"`

	// Workers
	WorkerCount     int `env:"WORKER_COUNT" envDefault:"2"`
	WorkerQueueSize int `env:"WORKER_QUEUE_SIZE" envDefault:"16"`

	// Events
	EventMaxRetries int           `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	DeadLetterPath  string        `env:"DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// Discord notifications, disabled unless both are set
	DiscordToken     string `env:"DISCORD_TOKEN"`
	DiscordChannelID string `env:"DISCORD_CHANNEL_ID"`

	// Tracing, disabled when empty
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the application cannot start with
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > MaxPort {
		return fmt.Errorf("invalid PORT value: %d", c.Port)
	}

	switch c.StorageBackend {
	case StorageMemory, StorageSQLite, StorageLocalSave:
	case StoragePostgres:
		if c.DBHost == "" || c.DBName == "" || c.DBUser == "" {
			return fmt.Errorf("STORAGE_BACKEND=%s requires DB_HOST, DB_NAME and DB_USER", StoragePostgres)
		}
	default:
		return fmt.Errorf("invalid STORAGE_BACKEND value: %q", c.StorageBackend)
	}

	if c.StorageBackend == StorageSQLite && c.SQLitePath == "" {
		return fmt.Errorf("STORAGE_BACKEND=%s requires SQLITE_PATH", StorageSQLite)
	}

	if c.GrowthTickInterval <= 0 {
		return fmt.Errorf("GROWTH_TICK_INTERVAL must be positive, got %s", c.GrowthTickInterval)
	}
	if c.WorkerCount <= 0 {
		return fmt.Errorf("WORKER_COUNT must be positive, got %d", c.WorkerCount)
	}
	if c.WorkerQueueSize <= 0 {
		return fmt.Errorf("WORKER_QUEUE_SIZE must be positive, got %d", c.WorkerQueueSize)
	}
	if c.EventMaxRetries < 0 {
		return fmt.Errorf("EVENT_MAX_RETRIES must not be negative, got %d", c.EventMaxRetries)
	}
	if c.WalletConnectDelay < 0 {
		return fmt.Errorf("WALLET_CONNECT_DELAY must not be negative, got %s", c.WalletConnectDelay)
	}
	if c.FeaturedCacheTTL <= 0 {
		return fmt.Errorf("FEATURED_CACHE_TTL must be positive, got %s", c.FeaturedCacheTTL)
	}

	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// DiscordEnabled reports whether Discord notifications are configured
func (c *Config) DiscordEnabled() bool {
	return c.DiscordToken != "" && c.DiscordChannelID != ""
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDev || c.Environment == EnvDevelopment
}
