package config

import "time"

// Defaults
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultEnvironment = "dev"
	DefaultVersion     = "dev"

	DefaultDBName            = "raidbot"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultItemsPath       = "items.min.json"
	DefaultArmoryBaseURL   = "https://armory.warmane.com/api"
	DefaultArmoryTimeout   = 10 * time.Second
	DefaultRosterCacheTTL  = 5 * time.Minute
	DefaultRosterCacheSize = 64
	DefaultRealm           = "Lordaeron"

	DefaultWorkerCount      = 2
	DefaultRoleSyncInterval = 3 * time.Minute
	DefaultReminderInterval = 5 * time.Minute
	DefaultReminderLead     = 30 * time.Minute
	DefaultSyncCooldown     = 5 * time.Minute
)
