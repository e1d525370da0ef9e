package discord

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/character"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/raid"
	"github.com/osse101/RaidBot_Go/internal/rolesync"
)

// MockCharacterService is a mock implementation of character.Service for testing
type MockCharacterService struct {
	RegisterFunc         func(ctx context.Context, guildID, discordID, name string) (*character.Registration, error)
	GetFunc              func(ctx context.Context, guildID, name string) (*domain.Character, error)
	ListFunc             func(ctx context.Context, guildID, discordID string) ([]domain.Character, error)
	DeleteFunc           func(ctx context.Context, guildID, discordID string, id int64) (*domain.Character, error)
	RefreshGearScoreFunc func(ctx context.Context, guildID, name string) (*character.ScoreResult, error)
	SetGearScoreFunc     func(ctx context.Context, guildID, actor, name string, score int) (*domain.Character, error)
}

func (m *MockCharacterService) Register(ctx context.Context, guildID, discordID, name string) (*character.Registration, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, guildID, discordID, name)
	}
	return &character.Registration{Character: &domain.Character{Name: name, Realm: "Icecrown"}}, nil
}

func (m *MockCharacterService) Get(ctx context.Context, guildID, name string) (*domain.Character, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, guildID, name)
	}
	return nil, domain.ErrCharacterNotFound
}

func (m *MockCharacterService) List(ctx context.Context, guildID, discordID string) ([]domain.Character, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, guildID, discordID)
	}
	return nil, nil
}

func (m *MockCharacterService) Delete(ctx context.Context, guildID, discordID string, id int64) (*domain.Character, error) {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, guildID, discordID, id)
	}
	return nil, domain.ErrCharacterNotFound
}

func (m *MockCharacterService) RefreshGearScore(ctx context.Context, guildID, name string) (*character.ScoreResult, error) {
	if m.RefreshGearScoreFunc != nil {
		return m.RefreshGearScoreFunc(ctx, guildID, name)
	}
	return nil, domain.ErrCharacterNotFound
}

func (m *MockCharacterService) SetGearScore(ctx context.Context, guildID, actor, name string, score int) (*domain.Character, error) {
	if m.SetGearScoreFunc != nil {
		return m.SetGearScoreFunc(ctx, guildID, actor, name, score)
	}
	return &domain.Character{Name: name, GearScore: &score}, nil
}

// MockRaidService is a mock implementation of raid.Service for testing
type MockRaidService struct {
	CreateFunc        func(ctx context.Context, in raid.CreateInput) (*domain.Raid, error)
	AttachMessageFunc func(ctx context.Context, raidID, channelID, messageID string) error
	GetFunc           func(ctx context.Context, raidID string) (*domain.Raid, error)
	ListUpcomingFunc  func(ctx context.Context, guildID string) ([]domain.RaidSummary, error)
	CancelFunc        func(ctx context.Context, raidID string) (*domain.Raid, error)
	SignUpFunc        func(ctx context.Context, guildID, raidID, discordID, role string) (*domain.RaidSignup, error)
	LeaveFunc         func(ctx context.Context, raidID, discordID string) error
	BenchFunc         func(ctx context.Context, raidID, characterName string, benched bool) error
	SignupsFunc       func(ctx context.Context, raidID string) ([]domain.RaidSignup, error)
}

func (m *MockRaidService) Create(ctx context.Context, in raid.CreateInput) (*domain.Raid, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &domain.Raid{ID: "raid-1", GuildID: in.GuildID, Title: in.Title, Instance: in.Instance}, nil
}

func (m *MockRaidService) AttachMessage(ctx context.Context, raidID, channelID, messageID string) error {
	if m.AttachMessageFunc != nil {
		return m.AttachMessageFunc(ctx, raidID, channelID, messageID)
	}
	return nil
}

func (m *MockRaidService) Get(ctx context.Context, raidID string) (*domain.Raid, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, raidID)
	}
	return nil, domain.ErrRaidNotFound
}

func (m *MockRaidService) ListUpcoming(ctx context.Context, guildID string) ([]domain.RaidSummary, error) {
	if m.ListUpcomingFunc != nil {
		return m.ListUpcomingFunc(ctx, guildID)
	}
	return nil, nil
}

func (m *MockRaidService) Cancel(ctx context.Context, raidID string) (*domain.Raid, error) {
	if m.CancelFunc != nil {
		return m.CancelFunc(ctx, raidID)
	}
	return &domain.Raid{ID: raidID}, nil
}

func (m *MockRaidService) SignUp(ctx context.Context, guildID, raidID, discordID, role string) (*domain.RaidSignup, error) {
	if m.SignUpFunc != nil {
		return m.SignUpFunc(ctx, guildID, raidID, discordID, role)
	}
	return &domain.RaidSignup{RaidID: raidID, DiscordID: discordID, Role: role}, nil
}

func (m *MockRaidService) Leave(ctx context.Context, raidID, discordID string) error {
	if m.LeaveFunc != nil {
		return m.LeaveFunc(ctx, raidID, discordID)
	}
	return nil
}

func (m *MockRaidService) Bench(ctx context.Context, raidID, characterName string, benched bool) error {
	if m.BenchFunc != nil {
		return m.BenchFunc(ctx, raidID, characterName, benched)
	}
	return nil
}

func (m *MockRaidService) Signups(ctx context.Context, raidID string) ([]domain.RaidSignup, error) {
	if m.SignupsFunc != nil {
		return m.SignupsFunc(ctx, raidID)
	}
	return nil, nil
}

func (m *MockRaidService) SendReminders(context.Context, time.Duration) (int, error) {
	return 0, nil
}

// fakeGuilds is an in-memory repository.GuildConfig
type fakeGuilds struct {
	mu      sync.Mutex
	configs map[string]domain.GuildConfig
}

func newFakeGuilds() *fakeGuilds {
	return &fakeGuilds{configs: make(map[string]domain.GuildConfig)}
}

func (f *fakeGuilds) GetGuildConfig(_ context.Context, guildID string) (*domain.GuildConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cfg, ok := f.configs[guildID]
	if !ok {
		return nil, domain.ErrGuildNotConfigured
	}
	return &cfg, nil
}

func (f *fakeGuilds) UpsertGuildConfig(_ context.Context, cfg *domain.GuildConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.configs[cfg.GuildID] = *cfg
	return nil
}

func (f *fakeGuilds) ListGuildConfigs(context.Context) ([]domain.GuildConfig, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.GuildConfig, 0, len(f.configs))
	for _, cfg := range f.configs {
		out = append(out, cfg)
	}
	return out, nil
}

// fakeSyncer counts SyncGuild calls and returns a fixed report
type fakeSyncer struct {
	calls  int
	report *rolesync.Report
	err    error
}

func (f *fakeSyncer) SyncGuild(_ context.Context, guildID string, _ bool) (*rolesync.Report, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.report != nil {
		return f.report, nil
	}
	return &rolesync.Report{GuildID: guildID}, nil
}

// fakeArmory serves a fixed roster
type fakeArmory struct {
	roster *armory.GuildRoster
	err    error
}

func (f *fakeArmory) CharacterSummary(context.Context, string, string) (*armory.CharacterSummary, error) {
	return nil, armory.ErrNotFound
}

func (f *fakeArmory) GuildMembers(context.Context, string, string, bool) (*armory.GuildRoster, error) {
	return f.roster, f.err
}

func (f *fakeArmory) GuildSummary(context.Context, string, string) (*armory.GuildRoster, error) {
	return f.roster, f.err
}

func (f *fakeArmory) InvalidateRoster(context.Context, string, string) error {
	return nil
}

// fakePool reports a fixed ping result
type fakePool struct {
	err error
}

func (f *fakePool) Ping(context.Context) error { return f.err }
func (f *fakePool) Close()                     {}
