package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// RaidRepository implements repository.Raid
type RaidRepository struct {
	db *pgxpool.Pool
}

// NewRaidRepository creates a new raid repository
func NewRaidRepository(db *pgxpool.Pool) *RaidRepository {
	return &RaidRepository{db: db}
}

const raidColumns = `r.id, r.guild_id, r.title, r.instance, r.scheduled_at, r.tank_slots, r.healer_slots,
		       r.dps_slots, r.min_gear_score, r.raid_leader_id, r.channel_id, r.signup_message_id,
		       r.reminder_sent, r.created_at`

func raidScanTargets(raid *domain.Raid, id *uuid.UUID) []any {
	return []any{
		id,
		&raid.GuildID,
		&raid.Title,
		&raid.Instance,
		&raid.ScheduledAt,
		&raid.TankSlots,
		&raid.HealerSlots,
		&raid.DPSSlots,
		&raid.MinGearScore,
		&raid.RaidLeaderID,
		&raid.ChannelID,
		&raid.SignupMessageID,
		&raid.ReminderSent,
		&raid.CreatedAt,
	}
}

// parseRaidID rejects malformed ids before they reach the uuid column
func parseRaidID(raidID string) (uuid.UUID, error) {
	id, err := uuid.Parse(raidID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s", domain.ErrRaidNotFound, raidID)
	}
	return id, nil
}

// CreateRaid stores a new raid
func (r *RaidRepository) CreateRaid(ctx context.Context, raid *domain.Raid) error {
	id := uuid.New()
	query := `
		INSERT INTO raids (id, guild_id, title, instance, scheduled_at, tank_slots, healer_slots,
		                   dps_slots, min_gear_score, raid_leader_id, channel_id, signup_message_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		id,
		raid.GuildID,
		raid.Title,
		raid.Instance,
		raid.ScheduledAt,
		raid.TankSlots,
		raid.HealerSlots,
		raid.DPSSlots,
		raid.MinGearScore,
		raid.RaidLeaderID,
		raid.ChannelID,
		raid.SignupMessageID,
	).Scan(&raid.CreatedAt)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToCreateRaid, err)
	}
	raid.ID = id.String()
	return nil
}

// GetRaid loads a raid by id
func (r *RaidRepository) GetRaid(ctx context.Context, raidID string) (*domain.Raid, error) {
	id, err := parseRaidID(raidID)
	if err != nil {
		return nil, err
	}

	var raid domain.Raid
	var rid uuid.UUID
	query := `SELECT ` + raidColumns + ` FROM raids r WHERE r.id = $1`
	if err := r.db.QueryRow(ctx, query, id).Scan(raidScanTargets(&raid, &rid)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRaidNotFound
		}
		return nil, fmt.Errorf(ErrMsgFailedToGetRaid, err)
	}
	raid.ID = rid.String()
	return &raid, nil
}

// SetSignupMessage records where the signup embed was posted
func (r *RaidRepository) SetSignupMessage(ctx context.Context, raidID, channelID, messageID string) error {
	id, err := parseRaidID(raidID)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx,
		`UPDATE raids SET channel_id = $2, signup_message_id = $3 WHERE id = $1`,
		id, channelID, messageID)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpdateRaid, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRaidNotFound
	}
	return nil
}

// ListUpcomingRaids returns a guild's raids scheduled after a time, with signup counts
func (r *RaidRepository) ListUpcomingRaids(ctx context.Context, guildID string, after time.Time) ([]domain.RaidSummary, error) {
	query := `
		SELECT ` + raidColumns + `, COUNT(s.id)
		FROM raids r
		LEFT JOIN raid_signups s ON s.raid_id = r.id
		WHERE r.guild_id = $1 AND r.scheduled_at > $2
		GROUP BY r.id
		ORDER BY r.scheduled_at
	`
	rows, err := r.db.Query(ctx, query, guildID, after)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToListRaids, err)
	}
	defer rows.Close()

	var out []domain.RaidSummary
	for rows.Next() {
		var s domain.RaidSummary
		var rid uuid.UUID
		if err := rows.Scan(append(raidScanTargets(&s.Raid, &rid), &s.SignupCount)...); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToListRaids, err)
		}
		s.ID = rid.String()
		out = append(out, s)
	}
	return out, rows.Err()
}

// DeleteRaid removes a raid and, by cascade, its signups
func (r *RaidRepository) DeleteRaid(ctx context.Context, raidID string) error {
	id, err := parseRaidID(raidID)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `DELETE FROM raids WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToDeleteRaid, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRaidNotFound
	}
	return nil
}

// UpsertSignup replaces the user's previous signup for the raid
func (r *RaidRepository) UpsertSignup(ctx context.Context, s *domain.RaidSignup) error {
	id, err := parseRaidID(s.RaidID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if _, err := tx.Exec(ctx,
		`DELETE FROM raid_signups WHERE raid_id = $1 AND discord_id = $2`, id, s.DiscordID); err != nil {
		return fmt.Errorf(ErrMsgFailedToSaveSignup, err)
	}

	query := `
		INSERT INTO raid_signups (raid_id, discord_id, character_name, role, gear_score, benched, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (raid_id, character_name) DO UPDATE SET
			discord_id = EXCLUDED.discord_id,
			role = EXCLUDED.role,
			gear_score = EXCLUDED.gear_score,
			benched = EXCLUDED.benched,
			comment = EXCLUDED.comment,
			signed_up_at = NOW()
		RETURNING id, signed_up_at
	`
	err = tx.QueryRow(ctx, query,
		id,
		s.DiscordID,
		s.CharacterName,
		s.Role,
		s.GearScore,
		s.Benched,
		s.Comment,
	).Scan(&s.ID, &s.SignedUpAt)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToSaveSignup, err)
	}

	return tx.Commit(ctx)
}

// DeleteSignup removes a user's signup and reports how many rows went
func (r *RaidRepository) DeleteSignup(ctx context.Context, raidID, discordID string) (int64, error) {
	id, err := parseRaidID(raidID)
	if err != nil {
		return 0, err
	}
	tag, err := r.db.Exec(ctx,
		`DELETE FROM raid_signups WHERE raid_id = $1 AND discord_id = $2`, id, discordID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgFailedToDeleteSignup, err)
	}
	return tag.RowsAffected(), nil
}

// SetBenched flags or unflags a signup as benched
func (r *RaidRepository) SetBenched(ctx context.Context, raidID, characterName string, benched bool) error {
	id, err := parseRaidID(raidID)
	if err != nil {
		return err
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE raid_signups SET benched = $3
		WHERE raid_id = $1 AND LOWER(character_name) = LOWER($2)`,
		id, characterName, benched)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToSaveSignup, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSignupNotFound
	}
	return nil
}

// ListSignups returns a raid's signups in signup order
func (r *RaidRepository) ListSignups(ctx context.Context, raidID string) ([]domain.RaidSignup, error) {
	id, err := parseRaidID(raidID)
	if err != nil {
		return nil, err
	}
	query := `
		SELECT id, raid_id, discord_id, character_name, role, gear_score, benched, comment, signed_up_at
		FROM raid_signups
		WHERE raid_id = $1
		ORDER BY signed_up_at, id
	`
	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToListSignups, err)
	}
	defer rows.Close()

	var out []domain.RaidSignup
	for rows.Next() {
		var s domain.RaidSignup
		var rid uuid.UUID
		if err := rows.Scan(
			&s.ID,
			&rid,
			&s.DiscordID,
			&s.CharacterName,
			&s.Role,
			&s.GearScore,
			&s.Benched,
			&s.Comment,
			&s.SignedUpAt,
		); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToListSignups, err)
		}
		s.RaidID = rid.String()
		out = append(out, s)
	}
	return out, rows.Err()
}

// RaidsNeedingReminder returns raids starting in [now, until) whose reminder is pending
func (r *RaidRepository) RaidsNeedingReminder(ctx context.Context, now, until time.Time) ([]domain.Raid, error) {
	query := `
		SELECT ` + raidColumns + `
		FROM raids r
		WHERE r.reminder_sent = FALSE AND r.scheduled_at >= $1 AND r.scheduled_at < $2
		ORDER BY r.scheduled_at
	`
	rows, err := r.db.Query(ctx, query, now, until)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToListRaids, err)
	}
	defer rows.Close()

	var out []domain.Raid
	for rows.Next() {
		var raid domain.Raid
		var rid uuid.UUID
		if err := rows.Scan(raidScanTargets(&raid, &rid)...); err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToListRaids, err)
		}
		raid.ID = rid.String()
		out = append(out, raid)
	}
	return out, rows.Err()
}

// CompleteReminder logs attendance and marks the reminder sent
func (r *RaidRepository) CompleteReminder(ctx context.Context, raidID string, logs []domain.RaidLog) error {
	id, err := parseRaidID(raidID)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	if len(logs) > 0 {
		rows := make([][]any, 0, len(logs))
		for _, l := range logs {
			loggedAt := l.LoggedAt
			if loggedAt.IsZero() {
				loggedAt = time.Now()
			}
			rows = append(rows, []any{id, l.CharacterName, l.Role, loggedAt})
		}
		_, err := tx.CopyFrom(ctx,
			pgx.Identifier{"raid_logs"},
			[]string{"raid_id", "character_name", "role", "logged_at"},
			pgx.CopyFromRows(rows),
		)
		if err != nil {
			return fmt.Errorf(ErrMsgFailedToWriteRaidLogs, err)
		}
	}

	tag, err := tx.Exec(ctx, `UPDATE raids SET reminder_sent = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpdateRaid, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRaidNotFound
	}

	return tx.Commit(ctx)
}
