package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

func newTestRaid(guildID string, at time.Time) *domain.Raid {
	return &domain.Raid{
		GuildID:      guildID,
		Title:        "ICC 25 HC",
		Instance:     "Icecrown Citadel",
		ScheduledAt:  at,
		TankSlots:    domain.DefaultTankSlots,
		HealerSlots:  domain.DefaultHealerSlots,
		DPSSlots:     domain.DefaultDPSSlots,
		MinGearScore: 5500,
		RaidLeaderID: "leader",
	}
}

func TestRaidRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewRaidRepository(pool)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	raid := newTestRaid("g1", now.Add(48*time.Hour))
	require.NoError(t, repo.CreateRaid(ctx, raid))
	require.NotEmpty(t, raid.ID)

	t.Run("get and attach message", func(t *testing.T) {
		require.NoError(t, repo.SetSignupMessage(ctx, raid.ID, "chan", "msg"))

		got, err := repo.GetRaid(ctx, raid.ID)
		require.NoError(t, err)
		assert.Equal(t, "msg", got.SignupMessageID)
		assert.Equal(t, 25, got.TotalSlots())
		assert.True(t, got.ScheduledAt.Equal(raid.ScheduledAt))

		_, err = repo.GetRaid(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, domain.ErrRaidNotFound)
	})

	t.Run("signup replaces previous signup by the same user", func(t *testing.T) {
		first := &domain.RaidSignup{RaidID: raid.ID, DiscordID: "u1", CharacterName: "Legolas", Role: domain.RoleDPS, GearScore: intPtr(5600)}
		require.NoError(t, repo.UpsertSignup(ctx, first))

		second := &domain.RaidSignup{RaidID: raid.ID, DiscordID: "u1", CharacterName: "Legolas", Role: domain.RoleTank, GearScore: intPtr(5600)}
		require.NoError(t, repo.UpsertSignup(ctx, second))

		other := &domain.RaidSignup{RaidID: raid.ID, DiscordID: "u2", CharacterName: "Gimli", Role: domain.RoleTank}
		require.NoError(t, repo.UpsertSignup(ctx, other))

		signups, err := repo.ListSignups(ctx, raid.ID)
		require.NoError(t, err)
		require.Len(t, signups, 2)
		assert.Equal(t, domain.RoleTank, signups[0].Role)
		assert.Equal(t, raid.ID, signups[0].RaidID)
	})

	t.Run("bench", func(t *testing.T) {
		require.NoError(t, repo.SetBenched(ctx, raid.ID, "gimli", true))
		assert.ErrorIs(t, repo.SetBenched(ctx, raid.ID, "Nobody", true), domain.ErrSignupNotFound)

		signups, err := repo.ListSignups(ctx, raid.ID)
		require.NoError(t, err)
		for _, s := range signups {
			assert.Equal(t, s.CharacterName == "Gimli", s.Benched)
		}
	})

	t.Run("upcoming includes signup counts", func(t *testing.T) {
		past := newTestRaid("g1", now.Add(-time.Hour))
		require.NoError(t, repo.CreateRaid(ctx, past))

		upcoming, err := repo.ListUpcomingRaids(ctx, "g1", now)
		require.NoError(t, err)
		require.Len(t, upcoming, 1)
		assert.Equal(t, raid.ID, upcoming[0].ID)
		assert.Equal(t, 2, upcoming[0].SignupCount)
	})

	t.Run("leave", func(t *testing.T) {
		n, err := repo.DeleteSignup(ctx, raid.ID, "u2")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.DeleteSignup(ctx, raid.ID, "u2")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("reminders", func(t *testing.T) {
		soon := newTestRaid("g1", now.Add(20*time.Minute))
		require.NoError(t, repo.CreateRaid(ctx, soon))

		due, err := repo.RaidsNeedingReminder(ctx, now, now.Add(30*time.Minute))
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, soon.ID, due[0].ID)

		logs := []domain.RaidLog{{CharacterName: "Legolas", Role: domain.RoleDPS}}
		require.NoError(t, repo.CompleteReminder(ctx, soon.ID, logs))

		due, err = repo.RaidsNeedingReminder(ctx, now, now.Add(30*time.Minute))
		require.NoError(t, err)
		assert.Empty(t, due)

		var count int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM raid_logs`).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("delete cascades signups", func(t *testing.T) {
		require.NoError(t, repo.DeleteRaid(ctx, raid.ID))
		assert.ErrorIs(t, repo.DeleteRaid(ctx, raid.ID), domain.ErrRaidNotFound)

		var count int
		require.NoError(t, pool.QueryRow(ctx, `SELECT COUNT(*) FROM raid_signups`).Scan(&count))
		assert.Zero(t, count)
	})
}
