package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
)

// maxEmbeds is Discord's per-message embed limit.
const maxEmbeds = 10

var (
	minManualScore = 3000.0
	maxManualScore = 7000.0
)

// GearScoreCommand returns the gearscore command definition and handler
func GearScoreCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gearscore",
		Description: "Fetch a character's GearScore from Warmane",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "character",
				Description:  "Character name",
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Discord user",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if i.GuildID == "" {
			respondEphemeral(s, i, MsgGuildOnly)
			return
		}
		opts := optionMap(getOptions(i))

		if name := stringOption(opts, "character"); name != "" {
			if !deferResponse(s, i, false) {
				return
			}
			ctx, cancel := interactionContext(i)
			defer cancel()

			res, err := svc.Characters.RefreshGearScore(ctx, i.GuildID, name)
			if err != nil {
				logger.FromContext(ctx).Warn("GearScore refresh failed", "character", name, "error", err)
				respondFriendlyError(s, i, err)
				return
			}
			sendEmbed(s, i, scoreEmbed(res))
			return
		}

		if !deferResponse(s, i, true) {
			return
		}
		ctx, cancel := interactionContext(i)
		defer cancel()

		target := getInteractionUser(i).ID
		if o, ok := opts["user"]; ok {
			target = o.UserValue(nil).ID
		}
		chars, err := svc.Characters.List(ctx, i.GuildID, target)
		if err != nil {
			respondFriendlyError(s, i, err)
			return
		}

		switch len(chars) {
		case 0:
			respondError(s, i, MsgNoCharacters)
		case 1:
			res, err := svc.Characters.RefreshGearScore(ctx, i.GuildID, chars[0].Name)
			if err != nil {
				respondFriendlyError(s, i, err)
				return
			}
			sendEmbed(s, i, scoreEmbed(res))
		default:
			content := MsgChooseCharacter
			components := characterSelect(idGSSelect, chars, func(c domain.Character) string { return c.Name })
			if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
				Content:    &content,
				Components: &components,
			}); err != nil {
				logger.FromContext(ctx).Error("Failed to send character menu", "error", err)
			}
		}
	}

	return cmd, handler
}

// handleGSSelect refreshes the character picked from the gearscore menu.
func handleGSSelect(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	values := i.MessageComponentData().Values
	if len(values) == 0 || !deferUpdate(s, i) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()

	res, err := svc.Characters.RefreshGearScore(ctx, i.GuildID, values[0])
	if err != nil {
		logger.FromContext(ctx).Warn("GearScore refresh failed", "character", values[0], "error", err)
		editContent(s, i, formatFriendlyError(err))
		return
	}
	editContent(s, i, fmt.Sprintf(MsgGearScoreLine, res.Character.Name, res.ArmoryURL, res.GearScore))
}

// GSCommand returns the gs command definition and handler
func GSCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gs",
		Description: "Manage GearScore",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Set a character GearScore",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:         discordgo.ApplicationCommandOptionString,
						Name:         "character",
						Description:  "Character name",
						Required:     true,
						Autocomplete: true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "score",
						Description: "GearScore (3000-7000)",
						Required:    true,
						MinValue:    &minManualScore,
						MaxValue:    maxManualScore,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "View stored GearScores",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionUser,
						Name:        "user",
						Description: "User to view",
					},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if i.GuildID == "" {
			respondEphemeral(s, i, MsgGuildOnly)
			return
		}
		sub, opts := subcommand(i)
		user := getInteractionUser(i)

		switch sub {
		case "set":
			if !deferResponse(s, i, true) {
				return
			}
			ctx, cancel := interactionContext(i)
			defer cancel()

			name := stringOption(opts, "character")
			score := int(opts["score"].IntValue())
			c, err := svc.Characters.SetGearScore(ctx, i.GuildID, user.ID, name, score)
			if err != nil {
				respondFriendlyError(s, i, err)
				return
			}
			editResponse(s, i, fmt.Sprintf(MsgGearScoreSet, c.Name, score))

		case "view":
			if !deferResponse(s, i, false) {
				return
			}
			ctx, cancel := interactionContext(i)
			defer cancel()

			target := user.ID
			if o, ok := opts["user"]; ok {
				target = o.UserValue(nil).ID
			}
			chars, err := svc.Characters.List(ctx, i.GuildID, target)
			if err != nil {
				respondFriendlyError(s, i, err)
				return
			}
			if len(chars) == 0 {
				respondError(s, i, MsgNoCharacters)
				return
			}
			embeds := make([]*discordgo.MessageEmbed, 0, min(len(chars), maxEmbeds))
			for idx := range chars {
				if len(embeds) == maxEmbeds {
					break
				}
				embeds = append(embeds, characterEmbed(&chars[idx]))
			}
			if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{Embeds: &embeds}); err != nil {
				logger.FromContext(ctx).Error("Failed to send response", "error", err)
			}
		}
	}

	return cmd, handler
}
