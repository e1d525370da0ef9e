package rolesync

// Job name used in metrics and logs
const JobRoleSync = "role_sync"

// Role change actions recorded in metrics
const (
	actionGrant  = "grant"
	actionRemove = "remove"
	actionPrune  = "prune"
)

// PresenceFormat is the bot status while role sync is running
const PresenceFormat = "%d guild members online"

// Log messages
const (
	LogMsgSyncStarted       = "Role sync started"
	LogMsgSyncFinished      = "Role sync finished"
	LogMsgSyncSkipped       = "Role sync already running, skipping"
	LogMsgSyncFailed        = "Role sync failed"
	LogMsgRoleChangeFailed  = "Failed to change member role"
	LogMsgPresenceFailed    = "Failed to update presence"
	LogMsgEmptyRoster       = "Armory returned an empty roster, skipping prune"
	LogMsgCharacterPruned   = "Removed character no longer in guild"
	LogMsgUserCleared       = "Removed guild roles from user with no characters left"
	LogMsgPruneDeleteFailed = "Failed to delete departed character"
)

// Error messages
const (
	ErrMsgFetchRoster  = "failed to fetch guild roster: %w"
	ErrMsgListMembers  = "failed to list discord members: %w"
	ErrMsgListRegistry = "failed to list registered characters: %w"
)
