package cooldown

import "time"

// DefaultCooldownDuration is the fallback cooldown when no specific duration is configured
const DefaultCooldownDuration = 5 * time.Minute

// Actions
const (
	// ActionGuildSync is a manual roster refresh, keyed by guild
	ActionGuildSync = "guild_sync"
)

// Error formats
const (
	ErrFmtCooldownWithMinutes = "action '%s' on cooldown: %dm %ds remaining"
	ErrFmtCooldownSecondsOnly = "action '%s' on cooldown: %ds remaining"
)

const redisKeyPrefix = "cooldown:"
