package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/raid"
)

// Discord caps an embed at 25 fields.
const maxRaidsListed = 25

var manageEvents int64 = discordgo.PermissionManageEvents

// RaidCommand returns the raid command definition and handler
func RaidCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "raid",
		Description: "Raid management",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "create",
				Description: "Create a raid event",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List upcoming raids",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "cancel",
				Description: "Cancel a raid",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:         discordgo.ApplicationCommandOptionString,
						Name:         "id",
						Description:  "Raid ID",
						Required:     true,
						Autocomplete: true,
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
		switch sub {
		case "create":
			if !hasPermission(i, discordgo.PermissionManageEvents) {
				respondEphemeral(s, i, MsgMissingPermission)
				return
			}
			showRaidCreateModal(s, i)
		case "list":
			listRaids(s, i, svc)
		case "cancel":
			if !hasPermission(i, discordgo.PermissionManageEvents) {
				respondEphemeral(s, i, MsgMissingPermission)
				return
			}
			cancelRaid(s, i, svc, stringOption(opts, "id"))
		}
	}

	return cmd, handler
}

func textInput(id, label, placeholder, value string, required bool) discordgo.MessageComponent {
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.TextInput{
			CustomID:    id,
			Label:       label,
			Style:       discordgo.TextInputShort,
			Placeholder: placeholder,
			Value:       value,
			Required:    required,
		},
	}}
}

func showRaidCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseModal,
		Data: &discordgo.InteractionResponseData{
			CustomID: idRaidCreateModal,
			Title:    "Create Raid",
			Components: []discordgo.MessageComponent{
				textInput("title", "Raid Title", "", "", true),
				textInput("instance", "Instance", "ICC25, RS10, etc", "", true),
				textInput("datetime", "Date/Time (UTC)", "YYYY-MM-DD HH:MM", "", true),
				textInput("slots", "Slots (tank/healer/dps)", "2/6/17", "2/6/17", false),
				textInput("min_gs", "Minimum GearScore", "0", "", false),
			},
		},
	}); err != nil {
		slog.Error("Failed to show raid modal", "error", err)
	}
}

// modalValues flattens the text inputs of a modal submission by custom id.
func modalValues(data discordgo.ModalSubmitInteractionData) map[string]string {
	values := make(map[string]string)
	for _, c := range data.Components {
		row, ok := c.(*discordgo.ActionsRow)
		if !ok {
			continue
		}
		for _, rc := range row.Components {
			if in, ok := rc.(*discordgo.TextInput); ok {
				values[in.CustomID] = strings.TrimSpace(in.Value)
			}
		}
	}
	return values
}

// parseSlots reads "tank/healer/dps". Empty input leaves all three zero so
// the default composition applies.
func parseSlots(value string) (tank, healer, dps int, err error) {
	if value == "" {
		return 0, 0, 0, nil
	}
	parts := strings.Split(value, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, MsgInvalidSlots)
	}
	counts := make([]int, 3)
	for idx, p := range parts {
		n, convErr := strconv.Atoi(strings.TrimSpace(p))
		if convErr != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("%w: %s", domain.ErrInvalidInput, MsgInvalidSlots)
		}
		counts[idx] = n
	}
	return counts[0], counts[1], counts[2], nil
}

// buildCreateInput turns the modal fields into a raid request.
func buildCreateInput(guildID, leaderID, channelID string, values map[string]string) (raid.CreateInput, error) {
	in := raid.CreateInput{
		GuildID:   guildID,
		LeaderID:  leaderID,
		ChannelID: channelID,
		Title:     values["title"],
		Instance:  values["instance"],
		Date:      values["datetime"],
	}
	var err error
	if in.TankSlots, in.HealerSlots, in.DPSSlots, err = parseSlots(values["slots"]); err != nil {
		return in, err
	}
	if v := values["min_gs"]; v != "" {
		if in.MinGearScore, err = strconv.Atoi(v); err != nil {
			return in, fmt.Errorf("%w: minimum GearScore must be a number", domain.ErrInvalidInput)
		}
	}
	return in, nil
}

// handleRaidCreateModal creates the raid and posts its signup message.
func handleRaidCreateModal(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if !deferResponse(s, i, true) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()
	log := logger.FromContext(ctx)

	channelID := i.ChannelID
	cfg, err := svc.guildConfig(ctx, i.GuildID)
	switch {
	case err == nil && cfg.RaidChannelID != "":
		channelID = cfg.RaidChannelID
	case err != nil && !errors.Is(err, domain.ErrGuildNotConfigured):
		log.Error("Failed to load guild config", "error", err)
	}

	in, err := buildCreateInput(i.GuildID, getInteractionUser(i).ID, channelID, modalValues(i.ModalSubmitData()))
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}

	r, err := svc.Raids.Create(ctx, in)
	if err != nil {
		log.Warn("Raid creation failed", "error", err)
		respondFriendlyError(s, i, err)
		return
	}

	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{raidEmbed(r, nil)},
		Components: signupButtons(r.ID),
	}, discordgo.WithContext(ctx))
	if err != nil {
		log.Error("Failed to post raid message", "raid_id", r.ID, "channel_id", channelID, "error", err)
		if _, cancelErr := svc.Raids.Cancel(ctx, r.ID); cancelErr != nil {
			log.Error("Failed to roll back raid", "raid_id", r.ID, "error", cancelErr)
		}
		respondError(s, i, MsgNoRaidChannel)
		return
	}

	if err := svc.Raids.AttachMessage(ctx, r.ID, channelID, msg.ID); err != nil {
		log.Error("Failed to store raid message", "raid_id", r.ID, "error", err)
	}
	editResponse(s, i, MsgRaidCreated)
}

func listRaids(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if !deferResponse(s, i, true) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()

	raids, err := svc.Raids.ListUpcoming(ctx, i.GuildID)
	if err != nil {
		logger.FromContext(ctx).Error("Failed to list raids", "error", err)
		respondFriendlyError(s, i, err)
		return
	}
	if len(raids) == 0 {
		respondError(s, i, MsgNoRaids)
		return
	}
	if len(raids) > maxRaidsListed {
		raids = raids[:maxRaidsListed]
	}
	sendEmbed(s, i, raidListEmbed(raids))
}

func cancelRaid(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services, raidID string) {
	if !deferResponse(s, i, true) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()
	log := logger.FromContext(ctx)

	r, err := svc.Raids.Cancel(ctx, raidID)
	if err != nil {
		respondFriendlyError(s, i, err)
		return
	}
	if r.ChannelID != "" && r.SignupMessageID != "" {
		if err := s.ChannelMessageDelete(r.ChannelID, r.SignupMessageID, discordgo.WithContext(ctx)); err != nil {
			log.Warn("Failed to delete raid message", "raid_id", r.ID, "error", err)
		}
	}
	log.Info("Raid cancelled", "raid_id", r.ID, "actor", getInteractionUser(i).ID)
	editResponse(s, i, MsgRaidCancelled)
}

// refreshRaidMessage redraws the signup message after the signups change.
func refreshRaidMessage(ctx context.Context, s *discordgo.Session, svc *Services, raidID string) {
	log := logger.FromContext(ctx)
	r, err := svc.Raids.Get(ctx, raidID)
	if err != nil {
		log.Warn("Failed to load raid for refresh", "raid_id", raidID, "error", err)
		return
	}
	if r.ChannelID == "" || r.SignupMessageID == "" {
		return
	}
	signups, err := svc.Raids.Signups(ctx, raidID)
	if err != nil {
		log.Warn("Failed to load signups for refresh", "raid_id", raidID, "error", err)
		return
	}
	embeds := []*discordgo.MessageEmbed{raidEmbed(r, signups)}
	if _, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:      r.SignupMessageID,
		Channel: r.ChannelID,
		Embeds:  &embeds,
	}, discordgo.WithContext(ctx)); err != nil {
		log.Warn("Failed to refresh raid message", "raid_id", raidID, "error", err)
	}
}

// handleRaidSignup shows the role picker to the clicking user.
func handleRaidSignup(s *discordgo.Session, i *discordgo.InteractionCreate, _ *Services) {
	_, raidID := splitCustomID(i.MessageComponentData().CustomID)
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content:    MsgChooseRole,
			Components: roleSelect(raidID),
			Flags:      discordgo.MessageFlagsEphemeral,
		},
	}); err != nil {
		slog.Error("Failed to send role picker", "raid_id", raidID, "error", err)
	}
}

func handleRaidRoleSelect(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	data := i.MessageComponentData()
	if len(data.Values) == 0 || !deferUpdate(s, i) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()

	_, raidID := splitCustomID(data.CustomID)
	role := data.Values[0]
	signup, err := svc.Raids.SignUp(ctx, i.GuildID, raidID, getInteractionUser(i).ID, role)
	if err != nil {
		logger.FromContext(ctx).Info("Raid signup rejected", "raid_id", raidID, "role", role, "error", err)
		editContent(s, i, formatFriendlyError(err))
		return
	}

	refreshRaidMessage(ctx, s, svc, raidID)
	editContent(s, i, fmt.Sprintf(MsgSignedUp, signup.Role))
}

func handleRaidLeave(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
	if !deferResponse(s, i, true) {
		return
	}
	ctx, cancel := interactionContext(i)
	defer cancel()

	_, raidID := splitCustomID(i.MessageComponentData().CustomID)
	if err := svc.Raids.Leave(ctx, raidID, getInteractionUser(i).ID); err != nil {
		if errors.Is(err, domain.ErrSignupNotFound) {
			respondError(s, i, MsgNotSignedUp)
			return
		}
		respondFriendlyError(s, i, err)
		return
	}

	refreshRaidMessage(ctx, s, svc, raidID)
	editResponse(s, i, MsgLeftRaid)
}

// BenchCommand returns the bench command definition and handler
func BenchCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:                     "bench",
		Description:              "Bench a character for a raid",
		DefaultMemberPermissions: &manageEvents,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:         discordgo.ApplicationCommandOptionString,
				Name:         "raid",
				Description:  "Raid ID",
				Required:     true,
				Autocomplete: true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "character",
				Description: "Character name",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "remove",
				Description: "Remove from bench",
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, svc *Services) {
		if !deferResponse(s, i, true) {
			return
		}
		ctx, cancel := interactionContext(i)
		defer cancel()

		opts := optionMap(getOptions(i))
		raidID := stringOption(opts, "raid")
		remove := false
		if o, ok := opts["remove"]; ok {
			remove = o.BoolValue()
		}

		if err := svc.Raids.Bench(ctx, raidID, stringOption(opts, "character"), !remove); err != nil {
			respondFriendlyError(s, i, err)
			return
		}
		refreshRaidMessage(ctx, s, svc, raidID)

		if remove {
			editResponse(s, i, MsgUnbenched)
			return
		}
		editResponse(s, i, MsgBenched)
	}

	return cmd, handler
}
