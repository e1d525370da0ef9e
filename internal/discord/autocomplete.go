package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/logger"
)

// Discord accepts at most 25 autocomplete choices; names are capped at 100 characters.
const (
	maxChoices      = 25
	maxChoiceLength = 100
)

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	data := i.ApplicationCommandData()
	focused := focusedOption(data.Options)
	if focused == nil {
		return
	}

	ctx, cancel := interactionContext(i)
	defer cancel()

	query := strings.ToLower(focused.StringValue())
	var choices []*discordgo.ApplicationCommandOptionChoice
	switch {
	case data.Name == "raid" && focused.Name == "id", data.Name == "bench" && focused.Name == "raid":
		choices = raidChoices(ctx, svc, i.GuildID, query)
	case focused.Name == "character":
		choices = characterChoices(ctx, svc, i.GuildID, getInteractionUser(i).ID, query)
	default:
		return
	}

	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{Choices: choices},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "command", data.Name, "error", err)
	}
}

// focusedOption finds the option being typed, looking inside subcommands.
func focusedOption(opts []*discordgo.ApplicationCommandInteractionDataOption) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range opts {
		if o.Focused {
			return o
		}
		if f := focusedOption(o.Options); f != nil {
			return f
		}
	}
	return nil
}

func raidChoices(ctx context.Context, svc *Services, guildID, query string) []*discordgo.ApplicationCommandOptionChoice {
	raids, err := svc.Raids.ListUpcoming(ctx, guildID)
	if err != nil {
		logger.FromContext(ctx).Warn("Raid autocomplete failed", "error", err)
		return nil
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(raids), maxChoices))
	for _, r := range raids {
		if len(choices) == maxChoices {
			break
		}
		label := fmt.Sprintf("%s - %s (%s UTC)", r.Title, r.Instance, r.ScheduledAt.UTC().Format("Jan 2 15:04"))
		if query != "" && !strings.Contains(strings.ToLower(label), query) && !strings.HasPrefix(r.ID, query) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  truncate(label, maxChoiceLength),
			Value: r.ID,
		})
	}
	return choices
}

func characterChoices(ctx context.Context, svc *Services, guildID, discordID, query string) []*discordgo.ApplicationCommandOptionChoice {
	chars, err := svc.Characters.List(ctx, guildID, discordID)
	if err != nil {
		logger.FromContext(ctx).Warn("Character autocomplete failed", "error", err)
		return nil
	}
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, min(len(chars), maxChoices))
	for _, c := range chars {
		if len(choices) == maxChoices {
			break
		}
		if query != "" && !strings.HasPrefix(strings.ToLower(c.Name), query) {
			continue
		}
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: c.Name, Value: c.Name})
	}
	return choices
}
