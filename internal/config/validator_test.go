package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		EnvSchemaVersion:  EnvSchemaVersion,
		Port:              8080,
		APIKey:            "0123456789abcdef",
		LogFormat:         "text",
		DBUser:            "raid",
		DBPassword:        "s3cret",
		DBHost:            "db",
		DBPort:            "5432",
		DBName:            "raidbot",
		DBSSLMode:         "disable",
		DBMaxConns:        10,
		DBMaxConnIdleTime: time.Minute,
		DBMaxConnLifetime: time.Hour,
		DiscordToken:      "token",
		DiscordAppID:      "112233445566778899",
		ItemsPath:         "items.min.json",
		ArmoryBaseURL:     DefaultArmoryBaseURL,
		ArmoryTimeout:     time.Second,
		RosterCacheTTL:    time.Minute,
		RosterCacheSize:   8,
		RedisAddr:         "redis:6379",
		DefaultRealm:      DefaultRealm,
		DefaultGuildName:  "Ascension",
		WorkerCount:       2,
		RoleSyncInterval:  3 * time.Minute,
		ReminderInterval:  5 * time.Minute,
		ReminderLead:      30 * time.Minute,
	}
}

func TestValidate_Valid(t *testing.T) {
	warnings, err := validConfig().Validate()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr []string
	}{
		{"schema version missing", func(c *Config) { c.EnvSchemaVersion = "" }, []string{"ENV_SCHEMA_VERSION is not set", EnvSchemaVersion}},
		{"schema version mismatch", func(c *Config) { c.EnvSchemaVersion = "0.9" }, []string{"expected 1.0, got 0.9"}},
		{"token missing", func(c *Config) { c.DiscordToken = "" }, []string{"DISCORD_TOKEN is required"}},
		{"app id not a snowflake", func(c *Config) { c.DiscordAppID = "my-app" }, []string{"DISCORD_APP_ID must be numeric"}},
		{"dev guild not a snowflake", func(c *Config) { c.DiscordDevGuildID = "dev" }, []string{"DISCORD_GUILD_ID must be numeric"}},
		{"port out of range", func(c *Config) { c.Port = 70000 }, []string{"HTTP_PORT must be at most 65535"}},
		{"bad ssl mode", func(c *Config) { c.DBSSLMode = "on" }, []string{"DB_SSLMODE must be one of"}},
		{"no workers", func(c *Config) { c.WorkerCount = 0 }, []string{"WORKER_COUNT must be at least 1"}},
		{"zero sync interval", func(c *Config) { c.RoleSyncInterval = 0 }, []string{"ROLE_SYNC_INTERVAL must be greater than"}},
		{"armory url", func(c *Config) { c.ArmoryBaseURL = "armory" }, []string{"ARMORY_BASE_URL is not a valid url"}},
		{"redis addr", func(c *Config) { c.RedisAddr = "redis" }, []string{"REDIS_ADDR is not a valid hostname_port"}},
		{"reports every field", func(c *Config) {
			c.DBHost = ""
			c.DBName = ""
		}, []string{"DB_HOST is required", "DB_NAME is required"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			warnings, err := cfg.Validate()

			require.Error(t, err)
			assert.Nil(t, warnings)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"example password", func(c *Config) { c.DBPassword = ExampleDBPassword }, "DB_PASSWORD"},
		{"example api key", func(c *Config) { c.APIKey = ExampleAPIKey }, "openssl rand"},
		{"no api key", func(c *Config) { c.APIKey = "" }, "unauthenticated"},
		{"no guild name", func(c *Config) { c.DefaultGuildName = "" }, "WARMANE_GUILD_NAME"},
		{"no redis", func(c *Config) { c.RedisAddr = "" }, "per process"},
		{"lead shorter than interval", func(c *Config) { c.ReminderLead = time.Minute }, "REMINDER_LEAD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			warnings, err := cfg.Validate()

			require.NoError(t, err)
			require.Len(t, warnings, 1)
			assert.Contains(t, warnings[0], tt.want)
		})
	}
}

func TestValidate_LoadedDefaults(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("ENV_SCHEMA_VERSION", EnvSchemaVersion)
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("DISCORD_APP_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	warnings, err := cfg.Validate()
	require.NoError(t, err, "defaults plus the Discord credentials are a runnable configuration")
	assert.NotEmpty(t, warnings)
}
