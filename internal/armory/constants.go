package armory

import "time"

// ==================== Endpoints ====================

const (
	// WebURL is the public armory site, used for links shown to users
	WebURL = "https://armory.warmane.com"

	pathCharacterSummary = "/character/%s/%s/summary"
	pathGuildMembers     = "/guild/%s/%s/members"
	pathGuildSummary     = "/guild/%s/%s/summary"

	endpointCharacter    = "character_summary"
	endpointGuildMembers = "guild_members"
	endpointGuildSummary = "guild_summary"
)

// ==================== Client Defaults ====================

const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	DefaultCacheSize  = 64
	DefaultCacheTTL   = 5 * time.Minute

	rosterKeyPrefix = "armory:roster:"
	maxErrorBody    = 4096
)

// ==================== Messages ====================

const (
	ErrMsgMaintenance     = "armory is down for maintenance"
	ErrMsgNotFound        = "not found on armory"
	ErrMsgMaxRetries      = "max retries exceeded: %w"
	ErrMsgCreateRequest   = "failed to create request: %w"
	ErrMsgDecodeResponse  = "failed to decode %s response: %w"
	ErrMsgMarshalRoster   = "failed to marshal roster: %w"
	ErrMsgUnmarshalRoster = "failed to unmarshal cached roster: %w"

	LogMsgRetrying    = "Retrying armory request"
	LogMsgServerError = "Armory server error, will retry"
	LogMsgRequestFail = "Armory request failed"
	LogMsgCacheError  = "Roster cache error"
)
