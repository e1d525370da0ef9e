// Package cooldown rate-limits actions per key (a guild or a user).
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// Service manages action cooldowns
type Service interface {
	// CheckCooldown reports whether key's action is on cooldown and for how long.
	CheckCooldown(ctx context.Context, key, action string) (bool, time.Duration, error)

	// EnforceCooldown starts the cooldown and runs fn, or returns ErrOnCooldown.
	// The cooldown is released again when fn fails.
	EnforceCooldown(ctx context.Context, key, action string, fn func() error) error

	// ResetCooldown manually clears a cooldown (admin/testing)
	ResetCooldown(ctx context.Context, key, action string) error
}

// ErrOnCooldown is returned when action is still on cooldown
type ErrOnCooldown struct {
	Action    string
	Remaining time.Duration
}

func (e ErrOnCooldown) Error() string {
	minutes := int(e.Remaining.Minutes())
	seconds := int(e.Remaining.Seconds()) % 60

	if minutes > 0 {
		return fmt.Sprintf(ErrFmtCooldownWithMinutes, e.Action, minutes, seconds)
	}
	return fmt.Sprintf(ErrFmtCooldownSecondsOnly, e.Action, seconds)
}

// Is lets errors.Is match both ErrOnCooldown values and domain.ErrOnCooldown
func (e ErrOnCooldown) Is(target error) bool {
	if target == domain.ErrOnCooldown {
		return true
	}
	_, ok := target.(ErrOnCooldown)
	return ok
}
