package cooldown

import "time"

// Config holds cooldown service configuration
type Config struct {
	// DevMode bypasses all cooldowns when true
	DevMode bool

	// Cooldowns maps action names to their durations.
	// Actions not listed use DefaultCooldownDuration.
	Cooldowns map[string]time.Duration
}

// GetCooldownDuration returns the cooldown duration for an action
func (c *Config) GetCooldownDuration(action string) time.Duration {
	if d, ok := c.Cooldowns[action]; ok {
		return d
	}
	return DefaultCooldownDuration
}
