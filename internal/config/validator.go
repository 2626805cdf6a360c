package config

// Warnings returns non-fatal issues with a loaded configuration,
// such as example secrets left in place
func (c *Config) Warnings() []string {
	var warnings []string

	if c.StorageBackend == StoragePostgres && c.DBPassword == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if c.APIKey == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if c.APIKey == "" && c.Environment == EnvProduction {
		warnings = append(warnings, "API_KEY is empty - the API is served without authentication")
	}

	if c.StorageBackend == StorageMemory && c.Environment == EnvProduction {
		warnings = append(warnings, "STORAGE_BACKEND=memory loses all gardens on restart")
	}

	if (c.DiscordToken == "") != (c.DiscordChannelID == "") {
		warnings = append(warnings, "DISCORD_TOKEN and DISCORD_CHANNEL_ID must both be set to enable notifications")
	}

	return warnings
}
