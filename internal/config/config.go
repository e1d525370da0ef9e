package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// Config holds the application configuration. The env tag names the
// variable a field is read from and is used in validation errors.
type Config struct {
	EnvSchemaVersion string `env:"ENV_SCHEMA_VERSION"`

	// HTTP API
	Port           int      `env:"HTTP_PORT" validate:"min=1,max=65535"`
	APIKey         string   `env:"API_KEY"` // Optional; when set, /api/v1 requires X-API-Key
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// Logging
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT" validate:"oneof=text json"`
	Environment string `env:"ENVIRONMENT"`
	Version     string `env:"VERSION"`

	// Database
	DBUser            string        `env:"DB_USER" validate:"required"`
	DBPassword        string        `env:"DB_PASSWORD" validate:"required"`
	DBHost            string        `env:"DB_HOST" validate:"required"`
	DBPort            string        `env:"DB_PORT" validate:"required,numeric"`
	DBName            string        `env:"DB_NAME" validate:"required"`
	DBSSLMode         string        `env:"DB_SSLMODE" validate:"oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" validate:"min=1"`
	DBMaxConnIdleTime time.Duration `env:"DB_MAX_CONN_IDLE_TIME" validate:"gt=0"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" validate:"gt=0"`

	// Discord
	DiscordToken              string `env:"DISCORD_TOKEN" validate:"required"`
	DiscordAppID              string `env:"DISCORD_APP_ID" validate:"required,numeric"`
	DiscordDevGuildID         string `env:"DISCORD_GUILD_ID" validate:"omitempty,numeric"`
	DiscordForceCommandUpdate bool   `env:"DISCORD_FORCE_COMMAND_UPDATE"`

	// Item data and armory
	ItemsPath       string        `env:"ITEMS_PATH" validate:"required"`
	ArmoryBaseURL   string        `env:"ARMORY_BASE_URL" validate:"required,url"`
	ArmoryTimeout   time.Duration `env:"ARMORY_TIMEOUT" validate:"gt=0"`
	RosterCacheTTL  time.Duration `env:"ROSTER_CACHE_TTL" validate:"gt=0"`
	RosterCacheSize int           `env:"ROSTER_CACHE_SIZE" validate:"min=1"`
	RedisAddr       string        `env:"REDIS_ADDR" validate:"omitempty,hostname_port"` // Optional; enables the shared roster cache

	// Guild defaults used when a guild has no stored configuration
	DefaultRealm         string `env:"WARMANE_REALM" validate:"required"`
	DefaultGuildName     string `env:"WARMANE_GUILD_NAME"`
	DefaultRaidChannelID string `env:"RAID_CHANNEL_ID" validate:"omitempty,numeric"`
	DefaultMemberRoleID  string `env:"MEMBER_ROLE_ID" validate:"omitempty,numeric"`

	// Background jobs
	WorkerCount      int           `env:"WORKER_COUNT" validate:"min=1"`
	RoleSyncInterval time.Duration `env:"ROLE_SYNC_INTERVAL" validate:"gt=0"`
	ReminderInterval time.Duration `env:"REMINDER_INTERVAL" validate:"gt=0"`
	ReminderLead     time.Duration `env:"REMINDER_LEAD" validate:"gt=0"`
	SyncCooldown     time.Duration `env:"SYNC_COOLDOWN" validate:"gte=0"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		EnvSchemaVersion: getEnv("ENV_SCHEMA_VERSION", ""),

		APIKey:         getEnv("API_KEY", ""),
		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", DefaultVersion),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBSSLMode:         getEnv("DB_SSLMODE", "disable"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),

		DiscordToken:              getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:              getEnv("DISCORD_APP_ID", ""),
		DiscordDevGuildID:         getEnv("DISCORD_GUILD_ID", ""),
		DiscordForceCommandUpdate: getEnvAsBool("DISCORD_FORCE_COMMAND_UPDATE", false),

		ItemsPath:       getEnv("ITEMS_PATH", DefaultItemsPath),
		ArmoryBaseURL:   getEnv("ARMORY_BASE_URL", DefaultArmoryBaseURL),
		ArmoryTimeout:   getEnvAsDuration("ARMORY_TIMEOUT", DefaultArmoryTimeout),
		RosterCacheTTL:  getEnvAsDuration("ROSTER_CACHE_TTL", DefaultRosterCacheTTL),
		RosterCacheSize: getEnvAsInt("ROSTER_CACHE_SIZE", DefaultRosterCacheSize),
		RedisAddr:       getEnv("REDIS_ADDR", ""),

		DefaultRealm:         getEnv("WARMANE_REALM", DefaultRealm),
		DefaultGuildName:     getEnv("WARMANE_GUILD_NAME", ""),
		DefaultRaidChannelID: getEnv("RAID_CHANNEL_ID", ""),
		DefaultMemberRoleID:  getEnv("MEMBER_ROLE_ID", ""),

		WorkerCount:      getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),
		RoleSyncInterval: getEnvAsDuration("ROLE_SYNC_INTERVAL", DefaultRoleSyncInterval),
		ReminderInterval: getEnvAsDuration("REMINDER_INTERVAL", DefaultReminderInterval),
		ReminderLead:     getEnvAsDuration("REMINDER_LEAD", DefaultReminderLead),
		SyncCooldown:     getEnvAsDuration("SYNC_COOLDOWN", DefaultSyncCooldown),
	}

	portStr := getEnv("HTTP_PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid HTTP_PORT value: %w", err)
	}
	cfg.Port = port

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or parse failure
func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDuration parses a time.Duration variable ("30s", "5m")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
		c.DBSSLMode,
	)
}

// GuildDefaults builds the fallback configuration for a guild with no stored row.
func (c *Config) GuildDefaults(guildID string) domain.GuildConfig {
	return domain.GuildConfig{
		GuildID:          guildID,
		WarmaneGuildName: c.DefaultGuildName,
		WarmaneRealm:     c.DefaultRealm,
		RaidChannelID:    c.DefaultRaidChannelID,
		MemberRoleID:     c.DefaultMemberRoleID,
	}
}
