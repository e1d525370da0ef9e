package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/logger"
)

var administrator int64 = discordgo.PermissionAdministrator

// AdminCommand returns the admin command definition and handler
func AdminCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "admin",
		Description:              "Admin utilities",
		DefaultMemberPermissions: &administrator,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "pingdb",
				Description: "Check database connection",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i, true) {
			return
		}
		ctx, cancel := interactionContext(i)
		defer cancel()

		sub, _ := subcommand(i)
		if sub != "pingdb" {
			return
		}
		if err := svc.DB.Ping(ctx); err != nil {
			logger.FromContext(ctx).Error("Database ping failed", "error", err)
			sendEmbed(s, i, createEmbed("Database", fmt.Sprintf(MsgDatabaseError, err), colorAdmin, FooterRaidBotAdmin))
			return
		}
		sendEmbed(s, i, createEmbed("Database", MsgDatabaseOK, colorAdmin, FooterRaidBotAdmin))
	}

	return cmd, handler
}
