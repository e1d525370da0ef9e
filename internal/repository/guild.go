package repository

import (
	"context"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// GuildConfig defines persistence for per-guild bot settings
type GuildConfig interface {
	// GetGuildConfig returns domain.ErrGuildNotConfigured when no row exists.
	GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error)
	UpsertGuildConfig(ctx context.Context, cfg *domain.GuildConfig) error
	ListGuildConfigs(ctx context.Context) ([]domain.GuildConfig, error)
}
