package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/RaidBot_Go/internal/character"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

type MockCharacterService struct {
	mock.Mock
}

func (m *MockCharacterService) Register(ctx context.Context, guildID, discordID, name string) (*character.Registration, error) {
	args := m.Called(ctx, guildID, discordID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.Registration), args.Error(1)
}

func (m *MockCharacterService) Get(ctx context.Context, guildID, name string) (*domain.Character, error) {
	args := m.Called(ctx, guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) List(ctx context.Context, guildID, discordID string) ([]domain.Character, error) {
	args := m.Called(ctx, guildID, discordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockCharacterService) Delete(ctx context.Context, guildID, discordID string, id int64) (*domain.Character, error) {
	args := m.Called(ctx, guildID, discordID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockCharacterService) RefreshGearScore(ctx context.Context, guildID, name string) (*character.ScoreResult, error) {
	args := m.Called(ctx, guildID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*character.ScoreResult), args.Error(1)
}

func (m *MockCharacterService) SetGearScore(ctx context.Context, guildID, actor, name string, score int) (*domain.Character, error) {
	args := m.Called(ctx, guildID, actor, name, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}
