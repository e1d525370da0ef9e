package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/logger"
)

// RegisterCommand returns the register command definition and handler
func RegisterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "register",
		Description: "Register a character",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "character",
				Description: "Character name (exact in-game spelling)",
				Required:    true,
			},
		},
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

		user := getInteractionUser(i)
		name := stringOption(optionMap(getOptions(i)), "character")

		reg, err := svc.Characters.Register(ctx, i.GuildID, user.ID, name)
		if err != nil {
			logger.FromContext(ctx).Warn("Character registration failed", "character", name, "error", err)
			respondFriendlyError(s, i, err)
			return
		}

		c := reg.Character
		editResponse(s, i, fmt.Sprintf(MsgRegistered, c.Name, reg.ArmoryURL, c.Realm, c.Score()))
	}

	return cmd, handler
}
