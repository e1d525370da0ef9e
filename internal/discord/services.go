package discord

import (
	"context"
	"errors"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/character"
	"github.com/osse101/RaidBot_Go/internal/cooldown"
	"github.com/osse101/RaidBot_Go/internal/database"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/raid"
	"github.com/osse101/RaidBot_Go/internal/repository"
	"github.com/osse101/RaidBot_Go/internal/rolesync"
)

// Syncer runs a role sync for one guild.
type Syncer interface {
	SyncGuild(ctx context.Context, guildID string, force bool) (*rolesync.Report, error)
}

// Services are the backends command handlers call into.
type Services struct {
	Characters character.Service
	Raids      raid.Service
	RoleSync   Syncer
	Armory     armory.Client
	Guilds     repository.GuildConfig
	Cooldowns  cooldown.Service
	DB         database.Pool

	// Defaults supplies the environment fallback for guilds with no stored row.
	Defaults func(guildID string) domain.GuildConfig
}

// guildConfig returns the stored configuration, falling back to Defaults
// when they name a Warmane guild.
func (svc *Services) guildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	cfg, err := svc.Guilds.GetGuildConfig(ctx, guildID)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, domain.ErrGuildNotConfigured) || svc.Defaults == nil {
		return nil, err
	}
	d := svc.Defaults(guildID)
	if d.WarmaneGuildName == "" {
		return nil, domain.ErrGuildNotConfigured
	}
	return &d, nil
}

// hasPermission reports whether the invoking member holds perm. Discord
// resolves channel overwrites before sending the interaction.
func hasPermission(i *discordgo.InteractionCreate, perm int64) bool {
	if i.Member == nil {
		return false
	}
	return i.Member.Permissions&(perm|discordgo.PermissionAdministrator) != 0
}
