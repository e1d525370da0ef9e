package bootstrap

import (
	"log/slog"

	"github.com/osse101/RaidBot_Go/internal/config"
	"github.com/osse101/RaidBot_Go/internal/logger"
)

// serviceName tags every log line written by the bot.
const serviceName = "raidbot"

// SetupLogger initializes the process-wide logger from cfg and logs the
// startup banner.
func SetupLogger(cfg *config.Config) *slog.Logger {
	l := logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		serviceName,
		cfg.Version,
		cfg.Environment,
		cfg.Environment == "dev",
	))

	l.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat)
	l.Info(LogMsgStartingRaidBot,
		"environment", cfg.Environment,
		"version", cfg.Version)

	l.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"armory", cfg.ArmoryBaseURL,
		"redis", cfg.RedisAddr != "")

	return l
}
