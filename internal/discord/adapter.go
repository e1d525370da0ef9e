package discord

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/rolesync"
)

// membersPageSize is the largest page Discord returns from List Guild Members.
const membersPageSize = 1000

// SessionDirectory reads and edits guild membership through the bot session.
type SessionDirectory struct {
	Session *discordgo.Session
}

// Members lists every member of guildID. The guild owner and holders of a
// role with Administrator are flagged as admins.
func (d *SessionDirectory) Members(ctx context.Context, guildID string) ([]rolesync.Member, error) {
	guild, err := d.Session.Guild(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild: %w", err)
	}
	roles, err := d.Session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild roles: %w", err)
	}
	var adminRoles []string
	for _, r := range roles {
		if r.Permissions&discordgo.PermissionAdministrator != 0 {
			adminRoles = append(adminRoles, r.ID)
		}
	}

	var members []rolesync.Member
	after := ""
	for {
		page, err := d.Session.GuildMembers(guildID, after, membersPageSize, discordgo.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list guild members: %w", err)
		}
		last := ""
		for _, m := range page {
			if m.User == nil {
				continue
			}
			last = m.User.ID
			admin := m.User.ID == guild.OwnerID || slices.ContainsFunc(m.Roles, func(id string) bool {
				return slices.Contains(adminRoles, id)
			})
			members = append(members, rolesync.Member{
				UserID:  m.User.ID,
				Bot:     m.User.Bot,
				Admin:   admin,
				RoleIDs: m.Roles,
			})
		}
		// a page without a usable id cannot advance the cursor
		if len(page) < membersPageSize || last == "" {
			return members, nil
		}
		after = last
	}
}

// AddRole grants roleID to userID.
func (d *SessionDirectory) AddRole(ctx context.Context, guildID, userID, roleID string) error {
	return d.Session.GuildMemberRoleAdd(guildID, userID, roleID, discordgo.WithContext(ctx))
}

// RemoveRole takes roleID away from userID.
func (d *SessionDirectory) RemoveRole(ctx context.Context, guildID, userID, roleID string) error {
	return d.Session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx))
}

// SessionPresence shows the online guild member count as the bot status.
type SessionPresence struct {
	Session *discordgo.Session
}

func (p *SessionPresence) SetOnlineCount(_ context.Context, online int) error {
	return p.Session.UpdateWatchStatus(0, fmt.Sprintf(rolesync.PresenceFormat, online))
}

// ReminderNotifier posts raid reminders in the raid's channel, mentioning
// every signed up player who is not benched.
type ReminderNotifier struct {
	Session *discordgo.Session
}

func (n *ReminderNotifier) NotifyRaidReminder(ctx context.Context, r domain.Raid, signups []domain.RaidSignup) error {
	if r.ChannelID == "" {
		return nil
	}
	var users []string
	for _, s := range signups {
		if s.Benched || slices.Contains(users, s.DiscordID) {
			continue
		}
		users = append(users, s.DiscordID)
	}
	if len(users) == 0 {
		return nil
	}

	mentions := make([]string, len(users))
	for idx, id := range users {
		mentions[idx] = "<@" + id + ">"
	}
	content := fmt.Sprintf(MsgRaidReminderFmt, r.Title, r.Instance, r.ScheduledAt.Unix(), strings.Join(mentions, " "))
	_, err := n.Session.ChannelMessageSendComplex(r.ChannelID, &discordgo.MessageSend{
		Content:         content,
		AllowedMentions: &discordgo.MessageAllowedMentions{Users: users},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to send raid reminder: %w", err)
	}
	return nil
}
