package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/logger"
)

// RosterCommand returns the roster command definition and handler
func RosterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "roster",
		Description: "Show guild roster online status",
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

		cfg, err := svc.guildConfig(ctx, i.GuildID)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		roster, err := svc.Armory.GuildMembers(ctx, cfg.WarmaneGuildName, cfg.WarmaneRealm, false)
		if err != nil {
			logger.FromContext(ctx).Warn("Roster lookup failed", "guild", cfg.WarmaneGuildName, "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		sendEmbed(s, i, rosterEmbed(cfg.WarmaneGuildName, roster))
	}

	return cmd, handler
}
