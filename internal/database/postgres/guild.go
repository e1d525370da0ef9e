package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// GuildConfigRepository implements repository.GuildConfig
type GuildConfigRepository struct {
	db *pgxpool.Pool
}

// NewGuildConfigRepository creates a new guild config repository
func NewGuildConfigRepository(db *pgxpool.Pool) *GuildConfigRepository {
	return &GuildConfigRepository{db: db}
}

const guildConfigColumns = `guild_id, warmane_guild_name, warmane_realm, raid_channel_id,
		       member_role_id, officer_role_id, raider_role_id, class_leader_role_id`

func scanGuildConfig(row pgx.Row) (*domain.GuildConfig, error) {
	var cfg domain.GuildConfig
	err := row.Scan(
		&cfg.GuildID,
		&cfg.WarmaneGuildName,
		&cfg.WarmaneRealm,
		&cfg.RaidChannelID,
		&cfg.MemberRoleID,
		&cfg.OfficerRoleID,
		&cfg.RaiderRoleID,
		&cfg.ClassLeaderRoleID,
	)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// GetGuildConfig returns the stored settings for a guild
func (r *GuildConfigRepository) GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	query := `SELECT ` + guildConfigColumns + ` FROM guild_configs WHERE guild_id = $1`
	cfg, err := scanGuildConfig(r.db.QueryRow(ctx, query, guildID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrGuildNotConfigured
		}
		return nil, fmt.Errorf(ErrMsgFailedToGetGuildConfig, err)
	}
	return cfg, nil
}

// UpsertGuildConfig inserts or replaces a guild's settings
func (r *GuildConfigRepository) UpsertGuildConfig(ctx context.Context, cfg *domain.GuildConfig) error {
	query := `
		INSERT INTO guild_configs (` + guildConfigColumns + `, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (guild_id) DO UPDATE SET
			warmane_guild_name = EXCLUDED.warmane_guild_name,
			warmane_realm = EXCLUDED.warmane_realm,
			raid_channel_id = EXCLUDED.raid_channel_id,
			member_role_id = EXCLUDED.member_role_id,
			officer_role_id = EXCLUDED.officer_role_id,
			raider_role_id = EXCLUDED.raider_role_id,
			class_leader_role_id = EXCLUDED.class_leader_role_id,
			updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		cfg.GuildID,
		cfg.WarmaneGuildName,
		cfg.WarmaneRealm,
		cfg.RaidChannelID,
		cfg.MemberRoleID,
		cfg.OfficerRoleID,
		cfg.RaiderRoleID,
		cfg.ClassLeaderRoleID,
	)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpsertGuildConfig, err)
	}
	return nil
}

// ListGuildConfigs returns every configured guild
func (r *GuildConfigRepository) ListGuildConfigs(ctx context.Context) ([]domain.GuildConfig, error) {
	query := `SELECT ` + guildConfigColumns + ` FROM guild_configs ORDER BY guild_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToListGuildConfigs, err)
	}
	defer rows.Close()

	var out []domain.GuildConfig
	for rows.Next() {
		cfg, err := scanGuildConfig(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToListGuildConfigs, err)
		}
		out = append(out, *cfg)
	}
	return out, rows.Err()
}
