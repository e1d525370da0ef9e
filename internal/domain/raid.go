package domain

import "time"

// Raid is a scheduled raid event.
type Raid struct {
	ID              string    `json:"id" db:"id"`
	GuildID         string    `json:"guild_id" db:"guild_id"`
	Title           string    `json:"title" db:"title"`
	Instance        string    `json:"instance" db:"instance"`
	ScheduledAt     time.Time `json:"scheduled_at" db:"scheduled_at"`
	TankSlots       int       `json:"tank_slots" db:"tank_slots"`
	HealerSlots     int       `json:"healer_slots" db:"healer_slots"`
	DPSSlots        int       `json:"dps_slots" db:"dps_slots"`
	MinGearScore    int       `json:"min_gear_score" db:"min_gear_score"`
	RaidLeaderID    string    `json:"raid_leader_id,omitempty" db:"raid_leader_id"`
	ChannelID       string    `json:"channel_id,omitempty" db:"channel_id"`
	SignupMessageID string    `json:"signup_message_id,omitempty" db:"signup_message_id"`
	ReminderSent    bool      `json:"reminder_sent" db:"reminder_sent"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// TotalSlots is the sum of all role slots.
func (r *Raid) TotalSlots() int {
	return r.TankSlots + r.HealerSlots + r.DPSSlots
}

// RaidSignup is one character signed up for a raid.
type RaidSignup struct {
	ID            int64     `json:"id" db:"id"`
	RaidID        string    `json:"raid_id" db:"raid_id"`
	DiscordID     string    `json:"discord_id" db:"discord_id"`
	CharacterName string    `json:"character_name" db:"character_name"`
	Role          string    `json:"role" db:"role"`
	GearScore     *int      `json:"gear_score,omitempty" db:"gear_score"`
	Benched       bool      `json:"benched" db:"benched"`
	Comment       string    `json:"comment,omitempty" db:"comment"`
	SignedUpAt    time.Time `json:"signed_up_at" db:"signed_up_at"`
}

// RaidSummary pairs a raid with its signup count.
type RaidSummary struct {
	Raid
	SignupCount int `json:"signup_count"`
}

// RaidLog records attendance captured when the reminder fires.
type RaidLog struct {
	RaidID        string    `json:"raid_id" db:"raid_id"`
	CharacterName string    `json:"character_name" db:"character_name"`
	Role          string    `json:"role" db:"role"`
	LoggedAt      time.Time `json:"logged_at" db:"logged_at"`
}
