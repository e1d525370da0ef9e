package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/cooldown"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
)

// commandTimeout bounds the backend work of one interaction.
const commandTimeout = 30 * time.Second

// interactionContext returns a context tagged with the guild and a fresh
// request id for log correlation.
func interactionContext(i *discordgo.InteractionCreate) (context.Context, context.CancelFunc) {
	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	ctx = logger.WithGuildID(ctx, i.GuildID)
	return context.WithTimeout(ctx, commandTimeout)
}

// respondError sends a generic error message.
// Use for system-level errors or when detailed error message would confuse users.
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	editResponse(s, i, message)
}

// editResponse sets the text of a deferred response.
func editResponse(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// respondEphemeral answers an interaction immediately with a message only
// the invoking user sees. Use when nothing slow runs before the reply.
func respondEphemeral(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// deferResponse acknowledges an interaction with a deferred message.
// Required before any async operations that might take longer than 3 seconds.
// Returns false if deferral failed (should return early from handler).
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, ephemeral bool) bool {
	resp := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}
	if ephemeral {
		resp.Data = &discordgo.InteractionResponseData{Flags: discordgo.MessageFlagsEphemeral}
	}
	if err := s.InteractionRespond(i.Interaction, resp); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// deferUpdate acknowledges a component interaction; the original message is
// edited afterwards with InteractionResponseEdit.
func deferUpdate(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredMessageUpdate,
	}); err != nil {
		slog.Error("Failed to send deferred update", "error", err)
		return false
	}
	return true
}

// editContent replaces the response text and clears any components.
func editContent(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	components := []discordgo.MessageComponent{}
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content:    &content,
		Components: &components,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (i.Member.User) and DM (i.User) contexts.
func getInteractionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

// getOptions extracts command options from an interaction.
func getOptions(i *discordgo.InteractionCreate) []*discordgo.ApplicationCommandInteractionDataOption {
	return i.ApplicationCommandData().Options
}

// optionMap indexes options by name.
func optionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

// subcommand returns the invoked subcommand and its options.
func subcommand(i *discordgo.InteractionCreate) (string, map[string]*discordgo.ApplicationCommandInteractionDataOption) {
	opts := getOptions(i)
	if len(opts) == 0 || opts[0].Type != discordgo.ApplicationCommandOptionSubCommand {
		return "", optionMap(opts)
	}
	return opts[0].Name, optionMap(opts[0].Options)
}

func stringOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if o, ok := opts[name]; ok {
		return o.StringValue()
	}
	return ""
}

// respondFriendlyError maps err to a user-facing message before responding.
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, formatFriendlyError(err))
}

// formatFriendlyError turns service errors into messages users can act on
func formatFriendlyError(err error) string {
	var onCooldown cooldown.ErrOnCooldown
	switch {
	case errors.As(err, &onCooldown):
		return fmt.Sprintf("%s\nWait for: **%s**", MsgCooldownActive, onCooldown.Remaining.Round(time.Second))
	case errors.Is(err, armory.ErrMaintenance):
		return MsgArmoryMaintenance
	case errors.Is(err, domain.ErrGuildNotConfigured):
		return MsgGuildNotConfigured
	case errors.Is(err, domain.ErrNoCharacters):
		return MsgNoCharacters
	case errors.Is(err, domain.ErrCharacterNotFound), errors.Is(err, armory.ErrNotFound):
		return MsgCharacterNotFound
	case errors.Is(err, domain.ErrCharacterExists):
		return MsgCharacterExists
	case errors.Is(err, domain.ErrNotCharacterOwner):
		return MsgNotCharacterOwner
	case errors.Is(err, domain.ErrGearScoreRange):
		return MsgGearScoreRange
	case errors.Is(err, domain.ErrGearScoreTooLow):
		return MsgGearScoreTooLow
	case errors.Is(err, domain.ErrGearScoreNotCached):
		return MsgGearScoreNotCached
	case errors.Is(err, domain.ErrRaidNotFound):
		return MsgRaidNotFound
	case errors.Is(err, domain.ErrSignupNotFound):
		return MsgSignupNotFound
	case errors.Is(err, domain.ErrInvalidDate):
		return MsgInvalidDate
	case errors.Is(err, domain.ErrInvalidRole):
		return MsgInvalidRole
	case errors.Is(err, domain.ErrSyncInProgress):
		return MsgSyncRunning
	case errors.Is(err, domain.ErrInvalidInput):
		return "❌ " + err.Error()
	default:
		var apiErr *armory.APIError
		if errors.As(err, &apiErr) {
			return MsgArmoryUnavailable
		}
		return MsgGenericError
	}
}

// sendEmbed sends an embed message with standardized error handling.
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}

// Footer constants for standardized embed footers.
const (
	FooterRaidBot      = "RaidBot"
	FooterRaidBotAdmin = "RaidBot Admin"
)

// createEmbed creates a standard embed; an empty footerText defaults to FooterRaidBot.
func createEmbed(title, description string, color int, footerText string) *discordgo.MessageEmbed {
	if footerText == "" {
		footerText = FooterRaidBot
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footerText,
		},
	}
}
