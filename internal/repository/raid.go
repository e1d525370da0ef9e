package repository

import (
	"context"
	"time"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// Raid defines persistence for raids, their signups and attendance logs
type Raid interface {
	// CreateRaid inserts r and fills in its ID and CreatedAt.
	CreateRaid(ctx context.Context, r *domain.Raid) error
	GetRaid(ctx context.Context, raidID string) (*domain.Raid, error)
	SetSignupMessage(ctx context.Context, raidID, channelID, messageID string) error
	ListUpcomingRaids(ctx context.Context, guildID string, after time.Time) ([]domain.RaidSummary, error)
	DeleteRaid(ctx context.Context, raidID string) error

	// UpsertSignup replaces any existing signup by the same Discord user for the raid.
	UpsertSignup(ctx context.Context, s *domain.RaidSignup) error
	DeleteSignup(ctx context.Context, raidID, discordID string) (int64, error)
	SetBenched(ctx context.Context, raidID, characterName string, benched bool) error
	ListSignups(ctx context.Context, raidID string) ([]domain.RaidSignup, error)

	// RaidsNeedingReminder returns raids starting in [now, until) with no reminder sent.
	RaidsNeedingReminder(ctx context.Context, now, until time.Time) ([]domain.Raid, error)
	// CompleteReminder writes attendance logs and flags the raid in one transaction.
	CompleteReminder(ctx context.Context, raidID string, logs []domain.RaidLog) error
}
