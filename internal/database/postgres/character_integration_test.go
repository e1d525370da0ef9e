package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

func intPtr(v int) *int { return &v }

func TestCharacterRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCharacterRepository(pool)
	ctx := context.Background()

	legolas := &domain.Character{
		GuildID:   "g1",
		DiscordID: "u1",
		Name:      "Legolas",
		Realm:     "Lordaeron",
		Class:     "Hunter",
		GearScore: intPtr(5400),
		UpdatedBy: "u1",
	}
	require.NoError(t, repo.CreateCharacter(ctx, legolas))
	assert.NotZero(t, legolas.ID)
	assert.False(t, legolas.CreatedAt.IsZero())

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		dup := &domain.Character{GuildID: "g1", DiscordID: "u2", Name: "LEGOLAS", Realm: "Lordaeron"}
		assert.ErrorIs(t, repo.CreateCharacter(ctx, dup), domain.ErrCharacterExists)

		otherGuild := &domain.Character{GuildID: "g2", DiscordID: "u2", Name: "Legolas", Realm: "Lordaeron"}
		assert.NoError(t, repo.CreateCharacter(ctx, otherGuild))
	})

	t.Run("lookup by name and id", func(t *testing.T) {
		got, err := repo.GetCharacterByName(ctx, "g1", "legolas")
		require.NoError(t, err)
		assert.Equal(t, legolas.ID, got.ID)
		assert.Equal(t, 5400, got.Score())

		got, err = repo.GetCharacterByID(ctx, "g1", legolas.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hunter", got.Class)

		_, err = repo.GetCharacterByID(ctx, "g2", legolas.ID)
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)

		_, err = repo.GetCharacterByName(ctx, "g1", "Gimli")
		assert.ErrorIs(t, err, domain.ErrCharacterNotFound)
	})

	t.Run("update gear score", func(t *testing.T) {
		require.NoError(t, repo.UpdateGearScore(ctx, legolas.ID, 5600, "officer"))
		got, err := repo.GetCharacterByID(ctx, "g1", legolas.ID)
		require.NoError(t, err)
		assert.Equal(t, 5600, got.Score())
		assert.Equal(t, "officer", got.UpdatedBy)
		assert.NotNil(t, got.LastUpdated)

		assert.ErrorIs(t, repo.UpdateGearScore(ctx, 999999, 5000, "x"), domain.ErrCharacterNotFound)
	})

	t.Run("list and delete", func(t *testing.T) {
		alt := &domain.Character{GuildID: "g1", DiscordID: "u1", Name: "Arwen", Realm: "Lordaeron"}
		require.NoError(t, repo.CreateCharacter(ctx, alt))

		mine, err := repo.ListCharactersByUser(ctx, "g1", "u1")
		require.NoError(t, err)
		require.Len(t, mine, 2)
		assert.Equal(t, "Legolas", mine[0].Name, "registration order")
		assert.Nil(t, mine[1].GearScore)

		all, err := repo.ListCharactersByGuild(ctx, "g1")
		require.NoError(t, err)
		assert.Len(t, all, 2)

		require.NoError(t, repo.DeleteCharacter(ctx, alt.ID))
		assert.ErrorIs(t, repo.DeleteCharacter(ctx, alt.ID), domain.ErrCharacterNotFound)

		n, err := repo.DeleteCharactersByUser(ctx, "g1", "u1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}

func TestGuildConfigRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewGuildConfigRepository(pool)
	ctx := context.Background()

	_, err := repo.GetGuildConfig(ctx, "g1")
	assert.ErrorIs(t, err, domain.ErrGuildNotConfigured)

	cfg := &domain.GuildConfig{
		GuildID:          "g1",
		WarmaneGuildName: "Ascension",
		WarmaneRealm:     "Lordaeron",
		MemberRoleID:     "r1",
	}
	require.NoError(t, repo.UpsertGuildConfig(ctx, cfg))

	cfg.RaidChannelID = "c1"
	require.NoError(t, repo.UpsertGuildConfig(ctx, cfg))

	got, err := repo.GetGuildConfig(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, *cfg, *got)

	all, err := repo.ListGuildConfigs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
