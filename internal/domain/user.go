package domain

import "time"

// Character is a game character registered by a Discord user in one guild.
type Character struct {
	ID        int64  `json:"id" db:"id"`
	GuildID   string `json:"guild_id" db:"guild_id"`
	DiscordID string `json:"discord_id" db:"discord_id"`
	Name      string `json:"name" db:"name"`
	Realm     string `json:"realm" db:"realm"`
	Class     string `json:"class" db:"class"`
	// GearScore is nil until a score has been computed or set.
	GearScore   *int       `json:"gear_score,omitempty" db:"gear_score"`
	LastUpdated *time.Time `json:"last_updated,omitempty" db:"last_updated"`
	UpdatedBy   string     `json:"updated_by,omitempty" db:"updated_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
}

// Score returns the stored gear score or 0.
func (c *Character) Score() int {
	if c == nil || c.GearScore == nil {
		return 0
	}
	return *c.GearScore
}

// GuildConfig holds the per-Discord-guild bot settings.
type GuildConfig struct {
	GuildID           string `json:"guild_id" db:"guild_id"`
	WarmaneGuildName  string `json:"warmane_guild_name" db:"warmane_guild_name"`
	WarmaneRealm      string `json:"warmane_realm" db:"warmane_realm"`
	RaidChannelID     string `json:"raid_channel_id" db:"raid_channel_id"`
	MemberRoleID      string `json:"member_role_id" db:"member_role_id"`
	OfficerRoleID     string `json:"officer_role_id" db:"officer_role_id"`
	RaiderRoleID      string `json:"raider_role_id" db:"raider_role_id"`
	ClassLeaderRoleID string `json:"class_leader_role_id" db:"class_leader_role_id"`
}

// SyncEnabled reports whether role sync has what it needs.
func (g *GuildConfig) SyncEnabled() bool {
	return g != nil && g.WarmaneGuildName != "" && g.MemberRoleID != ""
}

// GuildRoleIDs returns every configured role id, member role first.
func (g *GuildConfig) GuildRoleIDs() []string {
	var ids []string
	for _, id := range []string{g.MemberRoleID, g.RaiderRoleID, g.ClassLeaderRoleID, g.OfficerRoleID} {
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
