package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/RaidBot_Go/internal/database/postgres"
	"github.com/osse101/RaidBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
type Repositories struct {
	Characters repository.Character
	Guilds     repository.GuildConfig
	Raids      repository.Raid
}

// InitializeRepositories creates the Postgres repositories on one pool.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Characters: postgres.NewCharacterRepository(dbPool),
		Guilds:     postgres.NewGuildConfigRepository(dbPool),
		Raids:      postgres.NewRaidRepository(dbPool),
	}
}
