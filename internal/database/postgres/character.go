package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// CharacterRepository implements repository.Character
type CharacterRepository struct {
	db *pgxpool.Pool
}

// NewCharacterRepository creates a new character repository
func NewCharacterRepository(db *pgxpool.Pool) *CharacterRepository {
	return &CharacterRepository{db: db}
}

const characterColumns = `id, guild_id, discord_id, name, realm, class, gear_score,
		       last_updated, updated_by, created_at`

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var c domain.Character
	err := row.Scan(
		&c.ID,
		&c.GuildID,
		&c.DiscordID,
		&c.Name,
		&c.Realm,
		&c.Class,
		&c.GearScore,
		&c.LastUpdated,
		&c.UpdatedBy,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CharacterRepository) queryCharacters(ctx context.Context, query string, args ...any) ([]domain.Character, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFailedToListCharacters, err)
	}
	defer rows.Close()

	var out []domain.Character
	for rows.Next() {
		c, err := scanCharacter(rows)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgFailedToListCharacters, err)
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// CreateCharacter registers a character
func (r *CharacterRepository) CreateCharacter(ctx context.Context, c *domain.Character) error {
	query := `
		INSERT INTO characters (guild_id, discord_id, name, realm, class, gear_score, last_updated, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		c.GuildID,
		c.DiscordID,
		c.Name,
		c.Realm,
		c.Class,
		c.GearScore,
		c.LastUpdated,
		c.UpdatedBy,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
			return domain.ErrCharacterExists
		}
		return fmt.Errorf(ErrMsgFailedToCreateCharacter, err)
	}
	return nil
}

// GetCharacterByName finds a character in a guild, ignoring case
func (r *CharacterRepository) GetCharacterByName(ctx context.Context, guildID, name string) (*domain.Character, error) {
	query := `SELECT ` + characterColumns + `
		FROM characters
		WHERE guild_id = $1 AND LOWER(name) = LOWER($2)
		ORDER BY id
		LIMIT 1`
	c, err := scanCharacter(r.db.QueryRow(ctx, query, guildID, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf(ErrMsgFailedToGetCharacter, err)
	}
	return c, nil
}

// GetCharacterByID finds a character by id within a guild
func (r *CharacterRepository) GetCharacterByID(ctx context.Context, guildID string, id int64) (*domain.Character, error) {
	query := `SELECT ` + characterColumns + ` FROM characters WHERE guild_id = $1 AND id = $2`
	c, err := scanCharacter(r.db.QueryRow(ctx, query, guildID, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf(ErrMsgFailedToGetCharacter, err)
	}
	return c, nil
}

// ListCharactersByUser returns a user's characters in registration order
func (r *CharacterRepository) ListCharactersByUser(ctx context.Context, guildID, discordID string) ([]domain.Character, error) {
	query := `SELECT ` + characterColumns + `
		FROM characters
		WHERE guild_id = $1 AND discord_id = $2
		ORDER BY id`
	return r.queryCharacters(ctx, query, guildID, discordID)
}

// ListCharactersByGuild returns every character registered in a guild
func (r *CharacterRepository) ListCharactersByGuild(ctx context.Context, guildID string) ([]domain.Character, error) {
	query := `SELECT ` + characterColumns + `
		FROM characters
		WHERE guild_id = $1
		ORDER BY discord_id, id`
	return r.queryCharacters(ctx, query, guildID)
}

// UpdateGearScore stores a new score and stamps who set it
func (r *CharacterRepository) UpdateGearScore(ctx context.Context, id int64, score int, updatedBy string) error {
	query := `
		UPDATE characters
		SET gear_score = $2, last_updated = NOW(), updated_by = $3
		WHERE id = $1
	`
	tag, err := r.db.Exec(ctx, query, id, score, updatedBy)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToUpdateGearScore, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// DeleteCharacter removes a character
func (r *CharacterRepository) DeleteCharacter(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf(ErrMsgFailedToDeleteCharacter, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// DeleteCharactersByUser removes all of a user's characters in a guild
func (r *CharacterRepository) DeleteCharactersByUser(ctx context.Context, guildID, discordID string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE guild_id = $1 AND discord_id = $2`, guildID, discordID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgFailedToDeleteCharacter, err)
	}
	return tag.RowsAffected(), nil
}
