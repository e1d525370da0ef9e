package discord

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/character"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

// Custom id prefixes for components and modals
const (
	idRaidSignup      = "raid-signup"
	idRaidLeave       = "raid-leave"
	idRaidRoleSelect  = "raid-role-select"
	idRaidCreateModal = "raid-create-modal"
	idGSSelect        = "gs-select"
	idCharacterDelete = "character-delete-select"
	idDeleteConfirm   = "character-delete-confirm"
	idDeleteCancel    = "character-delete-cancel"
)

const (
	colorRaid   = 0x3498db
	colorRoster = 0x2ecc71
	colorAdmin  = 0x95a5a6

	offlineShown   = 20
	maxFieldLength = 1024
	selectMaxRows  = 25
	emptyField     = "None"
)

var roleTitles = []struct {
	role  string
	title string
}{
	{domain.RoleTank, "Tanks"},
	{domain.RoleHealer, "Healers"},
	{domain.RoleDPS, "DPS"},
}

func customID(prefix, arg string) string {
	return prefix + ":" + arg
}

// raidEmbed renders a raid and its signups for the signup message.
func raidEmbed(r *domain.Raid, signups []domain.RaidSignup) *discordgo.MessageEmbed {
	embed := createEmbed(r.Title, "", colorRaid, "Raid ID: "+r.ID)
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Instance", Value: r.Instance, Inline: true},
		{Name: "Date", Value: fmt.Sprintf("<t:%d:F>", r.ScheduledAt.Unix()), Inline: true},
		{Name: "Minimum GS", Value: strconv.Itoa(r.MinGearScore), Inline: true},
	}

	slots := map[string]int{
		domain.RoleTank:   r.TankSlots,
		domain.RoleHealer: r.HealerSlots,
		domain.RoleDPS:    r.DPSSlots,
	}
	byRole := make(map[string][]string)
	var bench []string
	for _, s := range signups {
		line := s.CharacterName
		if s.GearScore != nil {
			line = fmt.Sprintf("%s (%d)", s.CharacterName, *s.GearScore)
		}
		if s.Benched {
			bench = append(bench, line)
			continue
		}
		byRole[s.Role] = append(byRole[s.Role], line)
	}

	for _, rt := range roleTitles {
		names := byRole[rt.role]
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%d/%d)", rt.title, len(names), slots[rt.role]),
			Value:  joinOrNone(names, "\n"),
			Inline: true,
		})
	}
	if len(bench) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Bench (%d)", len(bench)),
			Value: strings.Join(bench, "\n"),
		})
	}
	return embed
}

// raidListEmbed summarises upcoming raids.
func raidListEmbed(raids []domain.RaidSummary) *discordgo.MessageEmbed {
	embed := createEmbed("Upcoming Raids", "", colorRaid, "")
	for _, r := range raids {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%s - %s", r.Title, r.Instance),
			Value: fmt.Sprintf("Date: <t:%d:F>\nSignups: %d/%d\nID: %s",
				r.ScheduledAt.Unix(), r.SignupCount, r.TotalSlots(), r.ID),
		})
	}
	return embed
}

// signupButtons are the Sign Up and Leave buttons under a raid message.
func signupButtons(raidID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{Label: "Sign Up", Style: discordgo.SuccessButton, CustomID: customID(idRaidSignup, raidID)},
			discordgo.Button{Label: "Leave", Style: discordgo.SecondaryButton, CustomID: customID(idRaidLeave, raidID)},
		}},
	}
}

func roleSelect(raidID string) []discordgo.MessageComponent {
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{
				CustomID:    customID(idRaidRoleSelect, raidID),
				Placeholder: "Select role",
				Options: []discordgo.SelectMenuOption{
					{Label: "Tank", Value: domain.RoleTank},
					{Label: "Healer", Value: domain.RoleHealer},
					{Label: "DPS", Value: domain.RoleDPS},
				},
			},
		}},
	}
}

// characterSelect lists chars in a select menu. valueOf picks what each
// option carries back (a name or an id).
func characterSelect(id string, chars []domain.Character, valueOf func(domain.Character) string) []discordgo.MessageComponent {
	options := make([]discordgo.SelectMenuOption, 0, len(chars))
	for _, c := range chars {
		if len(options) == selectMaxRows {
			break
		}
		options = append(options, discordgo.SelectMenuOption{
			Label:       c.Name,
			Value:       valueOf(c),
			Description: fmt.Sprintf("%s %s", c.Realm, c.Class),
		})
	}
	return []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.SelectMenu{CustomID: id, Placeholder: "Select character", Options: options},
		}},
	}
}

// characterEmbed shows a registered character.
func characterEmbed(c *domain.Character) *discordgo.MessageEmbed {
	embed := createEmbed(c.Name, "", character.ColorFor(c.GearScore), "")
	embed.URL = armory.CharacterURL(c.Name, c.Realm)
	gs := "Unknown"
	if c.GearScore != nil {
		gs = strconv.Itoa(*c.GearScore)
	}
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: "Realm", Value: c.Realm, Inline: true},
		{Name: "Class", Value: orNone(c.Class), Inline: true},
		{Name: "GearScore", Value: gs, Inline: true},
	}
	if c.LastUpdated != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: "Last Updated", Value: fmt.Sprintf("<t:%d:R>", c.LastUpdated.Unix()),
		})
	}
	return embed
}

// scoreEmbed shows a fresh (or cached) GearScore.
func scoreEmbed(res *character.ScoreResult) *discordgo.MessageEmbed {
	gs := res.GearScore
	embed := createEmbed(res.Character.Name, fmt.Sprintf("%d GS", gs), character.ColorFor(&gs), "")
	embed.URL = res.ArmoryURL
	if res.Cached {
		embed.Footer.Text = FooterRaidBot + " • stored score, armory unreachable"
	}
	return embed
}

// rosterEmbed lists who is online in the in-game guild.
func rosterEmbed(guildName string, roster *armory.GuildRoster) *discordgo.MessageEmbed {
	var online, offline []string
	for _, m := range roster.Members {
		if m.Online {
			online = append(online, m.Name)
		} else {
			offline = append(offline, m.Name)
		}
	}
	shown := offline
	if len(shown) > offlineShown {
		shown = shown[:offlineShown]
	}
	embed := createEmbed(guildName+" Roster", "", colorRoster, "")
	embed.Fields = []*discordgo.MessageEmbedField{
		{Name: fmt.Sprintf("Online (%d)", len(online)), Value: truncate(joinOrNone(online, ", "), maxFieldLength)},
		{Name: fmt.Sprintf("Offline (%d)", len(offline)), Value: joinOrNone(shown, ", ")},
	}
	return embed
}

func joinOrNone(items []string, sep string) string {
	if len(items) == 0 {
		return emptyField
	}
	return strings.Join(items, sep)
}

func orNone(s string) string {
	if s == "" {
		return emptyField
	}
	return s
}

// truncate shortens s to at most limit characters.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
