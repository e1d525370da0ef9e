package database

import "time"

// Database Connection Pool Constants
const (
	// DefaultMinConnections is the minimum number of connections to maintain in the pool
	DefaultMinConnections = 2

	// PingTimeout bounds the connectivity check in NewPool
	PingTimeout = 10 * time.Second
)

// Session settings applied to every connection
const (
	runtimeParamTimeZone = "timezone"
	runtimeParamAppName  = "application_name"
	sessionTimeZone      = "UTC"
	applicationName      = "raidbot"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenMigrationDB = "failed to open database for migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
)

// Migration settings
const (
	migrationDriver  = "pgx"
	migrationDialect = "postgres"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
