package repository

import (
	"context"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// Character defines persistence for registered characters.
// Name lookups are case-insensitive.
type Character interface {
	// CreateCharacter inserts c and fills in its ID and CreatedAt.
	// Returns domain.ErrCharacterExists on a (guild, name, realm) conflict.
	CreateCharacter(ctx context.Context, c *domain.Character) error
	GetCharacterByName(ctx context.Context, guildID, name string) (*domain.Character, error)
	GetCharacterByID(ctx context.Context, guildID string, id int64) (*domain.Character, error)
	ListCharactersByUser(ctx context.Context, guildID, discordID string) ([]domain.Character, error)
	ListCharactersByGuild(ctx context.Context, guildID string) ([]domain.Character, error)
	UpdateGearScore(ctx context.Context, id int64, score int, updatedBy string) error
	DeleteCharacter(ctx context.Context, id int64) error
	DeleteCharactersByUser(ctx context.Context, guildID, discordID string) (int64, error)
}
