package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWarnings_Clean(t *testing.T) {
	cfg := &Config{StorageBackend: StorageSQLite, Environment: EnvDev}

	assert.Empty(t, cfg.Warnings())
}

func TestWarnings_ExampleSecrets(t *testing.T) {
	cfg := &Config{
		StorageBackend: StoragePostgres,
		DBPassword:     ExampleDBPassword,
		APIKey:         ExampleAPIKey,
	}

	warnings := cfg.Warnings()

	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "API_KEY")
}

func TestWarnings_Production(t *testing.T) {
	cfg := &Config{StorageBackend: StorageMemory, Environment: EnvProduction}

	warnings := cfg.Warnings()

	assert.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "without authentication")
	assert.Contains(t, warnings[1], "memory")
}

func TestWarnings_PartialDiscord(t *testing.T) {
	cfg := &Config{StorageBackend: StorageSQLite, DiscordToken: "token"}

	warnings := cfg.Warnings()

	assert.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "DISCORD_CHANNEL_ID")
}
