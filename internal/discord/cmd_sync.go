package discord

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/cooldown"
	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/rolesync"
)

var manageRoles int64 = discordgo.PermissionManageRoles

// SyncCommand returns the sync command definition and handler
func SyncCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "sync",
		Description:              "Force roster refresh and role sync",
		DefaultMemberPermissions: &manageRoles,
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if i.GuildID == "" {
			respondEphemeral(s, i, MsgGuildOnly)
			return
		}
		if !deferResponse(s, i, true) {
			return
		}
		ctx, cancel := interactionContext(i)
		defer cancel()
		log := logger.FromContext(ctx)

		var report *rolesync.Report
		err := svc.Cooldowns.EnforceCooldown(ctx, i.GuildID, cooldown.ActionGuildSync, func() error {
			editResponse(s, i, MsgSyncStarted)
			var syncErr error
			report, syncErr = svc.RoleSync.SyncGuild(ctx, i.GuildID, true)
			return syncErr
		})

		var onCooldown cooldown.ErrOnCooldown
		switch {
		case errors.As(err, &onCooldown):
			respondError(s, i, MsgSyncCooldown)
		case err != nil:
			log.Error("Manual sync failed", "error", err)
			respondFriendlyError(s, i, err)
		default:
			editResponse(s, i, fmt.Sprintf(MsgSyncComplete, report.Granted, report.Removed, report.Online))
		}
	}

	return cmd, handler
}
