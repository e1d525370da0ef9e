package discord

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
)

// CharacterCommand returns the character command definition and handler
func CharacterCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "character",
		Description: "Manage your characters",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "view",
				Description: "View your characters",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "delete",
				Description: "Delete a character",
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
		chars, err := svc.Characters.List(ctx, i.GuildID, user.ID)
		if err != nil {
			logger.FromContext(ctx).Error("Failed to list characters", "error", err)
			respondFriendlyError(s, i, err)
			return
		}
		if len(chars) == 0 {
			respondError(s, i, MsgNoCharacters)
			return
		}

		sub, _ := subcommand(i)
		switch sub {
		case "view":
			sendEmbed(s, i, characterListEmbed(chars))
		case "delete":
			content := MsgChooseCharacter
			components := characterSelect(idCharacterDelete, chars, func(c domain.Character) string {
				return strconv.FormatInt(c.ID, 10)
			})
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

func characterListEmbed(chars []domain.Character) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(chars))
	for _, c := range chars {
		gs := "?"
		if c.GearScore != nil {
			gs = strconv.Itoa(*c.GearScore)
		}
		lines = append(lines, fmt.Sprintf("[%s](%s) - %s %s - %s GS",
			c.Name, armory.CharacterURL(c.Name, c.Realm), c.Realm, orNone(c.Class), gs))
	}
	return createEmbed("Your Registered Characters", strings.Join(lines, "\n"), colorRaid, "")
}

// handleCharacterDeleteSelect asks for confirmation of the chosen character.
func handleCharacterDeleteSelect(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	values := i.MessageComponentData().Values
	if len(values) == 0 || !deferUpdate(s, i) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()

	id := values[0]
	name := id
	if chars, err := svc.Characters.List(ctx, i.GuildID, getInteractionUser(i).ID); err == nil {
		for _, c := range chars {
			if strconv.FormatInt(c.ID, 10) == id {
				name = c.Name
			}
		}
	}

	content := fmt.Sprintf(MsgConfirmDelete, name)
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Delete", Style: discordgo.DangerButton, CustomID: customID(idDeleteConfirm, id)},
			discordgo.Button{Label: "Cancel", Style: discordgo.SecondaryButton, CustomID: idDeleteCancel},
		}},
	}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	}); err != nil {
		logger.FromContext(ctx).Error("Failed to send delete confirmation", "error", err)
	}
}

func handleCharacterDeleteConfirm(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if !deferUpdate(s, i) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()

	_, arg := splitCustomID(i.MessageComponentData().CustomID)
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		editContent(s, i, MsgCharacterNotFound)
		return
	}

	c, err := svc.Characters.Delete(ctx, i.GuildID, getInteractionUser(i).ID, id)
	if err != nil {
		logger.FromContext(ctx).Warn("Character delete failed", "character_id", id, "error", err)
		editContent(s, i, formatFriendlyError(err))
		return
	}
	editContent(s, i, fmt.Sprintf(MsgCharacterDeleted, c.Name))
}

func handleCharacterDeleteCancel(s *discordgo.Session, i *discordgo.InteractionCreate, _ *Services) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseUpdateMessage,
		Data: &discordgo.InteractionResponseData{
			Content:    MsgDeleteCancelled,
			Components: []discordgo.MessageComponent{},
		},
	}); err != nil {
		slog.Error("Failed to cancel delete", "error", err)
	}
}
