package character

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

type MockCharacterRepo struct {
	mock.Mock
}

func (m *MockCharacterRepo) CreateCharacter(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCharacterRepo) GetCharacterByName(ctx context.Context, guildID, name string) (*domain.Character, error) {
	args := m.Called(ctx, guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}
func (m *MockCharacterRepo) GetCharacterByID(ctx context.Context, guildID string, id int64) (*domain.Character, error) {
	args := m.Called(ctx, guildID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}
func (m *MockCharacterRepo) ListCharactersByUser(ctx context.Context, guildID, discordID string) ([]domain.Character, error) {
	args := m.Called(ctx, guildID, discordID)
	return args.Get(0).([]domain.Character), args.Error(1)
}
func (m *MockCharacterRepo) ListCharactersByGuild(ctx context.Context, guildID string) ([]domain.Character, error) {
	args := m.Called(ctx, guildID)
	return args.Get(0).([]domain.Character), args.Error(1)
}
func (m *MockCharacterRepo) UpdateGearScore(ctx context.Context, id int64, score int, updatedBy string) error {
	args := m.Called(ctx, id, score, updatedBy)
	return args.Error(0)
}
func (m *MockCharacterRepo) DeleteCharacter(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCharacterRepo) DeleteCharactersByUser(ctx context.Context, guildID, discordID string) (int64, error) {
	args := m.Called(ctx, guildID, discordID)
	return args.Get(0).(int64), args.Error(1)
}

type MockGuildRepo struct {
	mock.Mock
}

func (m *MockGuildRepo) GetGuildConfig(ctx context.Context, guildID string) (*domain.GuildConfig, error) {
	args := m.Called(ctx, guildID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GuildConfig), args.Error(1)
}
func (m *MockGuildRepo) UpsertGuildConfig(ctx context.Context, cfg *domain.GuildConfig) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}
func (m *MockGuildRepo) ListGuildConfigs(ctx context.Context) ([]domain.GuildConfig, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.GuildConfig), args.Error(1)
}

type MockArmory struct {
	mock.Mock
}

func (m *MockArmory) CharacterSummary(ctx context.Context, name, realm string) (*armory.CharacterSummary, error) {
	args := m.Called(ctx, name, realm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*armory.CharacterSummary), args.Error(1)
}
func (m *MockArmory) GuildMembers(ctx context.Context, name, realm string, force bool) (*armory.GuildRoster, error) {
	args := m.Called(ctx, name, realm, force)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*armory.GuildRoster), args.Error(1)
}
func (m *MockArmory) GuildSummary(ctx context.Context, name, realm string) (*armory.GuildRoster, error) {
	args := m.Called(ctx, name, realm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*armory.GuildRoster), args.Error(1)
}
func (m *MockArmory) InvalidateRoster(ctx context.Context, name, realm string) error {
	args := m.Called(ctx, name, realm)
	return args.Error(0)
}

// fixedScorer returns its value for any non-empty equipment list.
type fixedScorer struct {
	score     int
	lastClass string
}

func (f *fixedScorer) Calculate(equipment []domain.EquippedItem, playerClass string) int {
	f.lastClass = playerClass
	if len(equipment) == 0 {
		return 0
	}
	return f.score
}
