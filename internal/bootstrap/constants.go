package bootstrap

import "time"

// =============================================================================
// Startup
// =============================================================================

const (
	// RedisPingTimeout bounds the startup check of the optional Redis endpoint
	RedisPingTimeout = 5 * time.Second

	// ArmoryMaxRetries is how often a 5xx armory response is retried
	ArmoryMaxRetries = 3

	// ArmoryRetryDelay is the base backoff between armory retries
	ArmoryRetryDelay = 500 * time.Millisecond

	// JobTimeout bounds a single background job run
	JobTimeout = 5 * time.Minute
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingRaidBot     = "Starting RaidBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for backend selection
const (
	LogMsgRedisEnabled     = "Redis enabled, sharing roster cache and cooldowns"
	LogMsgRedisUnavailable = "Redis unreachable, falling back to in-process cache"
	LogMsgMemoryBackends   = "Redis not configured, using in-process cache and cooldowns"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgShuttingDownBot      = "Shutting down Discord session..."
	LogMsgStoppingJobs         = "Stopping background jobs..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgBotCloseFailed       = "Discord session close failed"
	LogMsgRedisCloseFailed     = "Redis close failed"
)
