package rolesync

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

// ---- fakes ----

type fakeGuilds struct {
	configs map[string]*domain.GuildConfig
}

func (f *fakeGuilds) GetGuildConfig(_ context.Context, guildID string) (*domain.GuildConfig, error) {
	cfg, ok := f.configs[guildID]
	if !ok {
		return nil, domain.ErrGuildNotConfigured
	}
	return cfg, nil
}
func (f *fakeGuilds) UpsertGuildConfig(_ context.Context, cfg *domain.GuildConfig) error {
	f.configs[cfg.GuildID] = cfg
	return nil
}
func (f *fakeGuilds) ListGuildConfigs(context.Context) ([]domain.GuildConfig, error) {
	var out []domain.GuildConfig
	for _, c := range f.configs {
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].GuildID < out[j].GuildID })
	return out, nil
}

type fakeCharacters struct {
	mu    sync.Mutex
	chars []domain.Character
}

func (f *fakeCharacters) CreateCharacter(context.Context, *domain.Character) error { return nil }
func (f *fakeCharacters) GetCharacterByName(context.Context, string, string) (*domain.Character, error) {
	return nil, domain.ErrCharacterNotFound
}
func (f *fakeCharacters) GetCharacterByID(context.Context, string, int64) (*domain.Character, error) {
	return nil, domain.ErrCharacterNotFound
}
func (f *fakeCharacters) ListCharactersByUser(context.Context, string, string) ([]domain.Character, error) {
	return nil, nil
}
func (f *fakeCharacters) ListCharactersByGuild(_ context.Context, guildID string) ([]domain.Character, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Character
	for _, c := range f.chars {
		if c.GuildID == guildID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCharacters) UpdateGearScore(context.Context, int64, int, string) error { return nil }
func (f *fakeCharacters) DeleteCharacter(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, c := range f.chars {
		if c.ID == id {
			f.chars = append(f.chars[:i], f.chars[i+1:]...)
			return nil
		}
	}
	return domain.ErrCharacterNotFound
}
func (f *fakeCharacters) DeleteCharactersByUser(context.Context, string, string) (int64, error) {
	return 0, nil
}

type roleChange struct {
	user, role string
	add        bool
}

type fakeDirectory struct {
	mu      sync.Mutex
	members []Member
	changes []roleChange
	failFor string
	block   chan struct{}
}

func (f *fakeDirectory) Members(context.Context, string) ([]Member, error) {
	if f.block != nil {
		<-f.block
	}
	return f.members, nil
}
func (f *fakeDirectory) AddRole(_ context.Context, _, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if userID == f.failFor {
		return errors.New("missing permissions")
	}
	f.changes = append(f.changes, roleChange{userID, roleID, true})
	return nil
}
func (f *fakeDirectory) RemoveRole(_ context.Context, _, userID, roleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.changes = append(f.changes, roleChange{userID, roleID, false})
	return nil
}

type fakePresence struct{ online int }

func (p *fakePresence) SetOnlineCount(_ context.Context, n int) error {
	p.online = n
	return nil
}

type MockArmory struct {
	mock.Mock
}

func (m *MockArmory) CharacterSummary(ctx context.Context, name, realm string) (*armory.CharacterSummary, error) {
	args := m.Called(ctx, name, realm)
	return nil, args.Error(1)
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
	return nil, args.Error(1)
}
func (m *MockArmory) InvalidateRoster(ctx context.Context, name, realm string) error {
	args := m.Called(ctx, name, realm)
	return args.Error(0)
}

// ---- fixture ----

const (
	guildID    = "g1"
	memberRole = "role-member"
	raiderRole = "role-raider"
)

type fixture struct {
	guilds   *fakeGuilds
	chars    *fakeCharacters
	dir      *fakeDirectory
	presence *fakePresence
	armory   *MockArmory
	svc      *Service
}

func newFixture() *fixture {
	f := &fixture{
		guilds: &fakeGuilds{configs: map[string]*domain.GuildConfig{
			guildID: {GuildID: guildID, WarmaneGuildName: "Ascension", WarmaneRealm: "Lordaeron", MemberRoleID: memberRole, RaiderRoleID: raiderRole},
		}},
		chars: &fakeCharacters{chars: []domain.Character{
			{ID: 1, GuildID: guildID, DiscordID: "u-joined", Name: "Àrthas"},
			{ID: 2, GuildID: guildID, DiscordID: "u-kept", Name: "Legolas"},
			{ID: 3, GuildID: guildID, DiscordID: "u-mixed", Name: "Gimli"},
			{ID: 4, GuildID: guildID, DiscordID: "u-mixed", Name: "Boromir"},
			{ID: 5, GuildID: guildID, DiscordID: "u-left", Name: "Saruman"},
		}},
		dir: &fakeDirectory{members: []Member{
			{UserID: "u-joined"},
			{UserID: "u-kept", RoleIDs: []string{memberRole}},
			{UserID: "u-mixed", RoleIDs: []string{memberRole}},
			{UserID: "u-left", RoleIDs: []string{memberRole, raiderRole}},
			{UserID: "u-stranger"},
			{UserID: "bot", Bot: true},
			{UserID: "admin", Admin: true},
		}},
		presence: &fakePresence{},
		armory:   new(MockArmory),
	}
	f.svc = NewService(f.guilds, f.chars, f.armory, f.dir, f.presence)
	return f
}

func roster(online int, names ...string) *armory.GuildRoster {
	r := &armory.GuildRoster{Name: "Ascension", Realm: "Lordaeron"}
	for i, n := range names {
		r.Members = append(r.Members, armory.RosterMember{Name: n, Online: i < online})
	}
	r.MemberCount = len(r.Members)
	return r
}

func (f *fixture) changesFor(user string) []roleChange {
	var out []roleChange
	for _, c := range f.dir.changes {
		if c.user == user {
			out = append(out, c)
		}
	}
	return out
}

// ---- tests ----

func TestSyncGuild(t *testing.T) {
	f := newFixture()
	f.armory.On("GuildMembers", mock.Anything, "Ascension", "Lordaeron", false).
		Return(roster(2, "arthas", "LEGOLAS", "Gimli"), nil)

	report, err := f.svc.SyncGuild(context.Background(), guildID, false)
	require.NoError(t, err)

	assert.Equal(t, 3, report.RosterSize)
	assert.Equal(t, 2, report.Online)
	assert.Equal(t, 1, report.Granted)
	assert.Equal(t, 1, report.Removed)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, []string{"Boromir", "Saruman"}, report.Pruned)
	assert.Equal(t, []string{"u-left"}, report.Cleared)
	assert.Equal(t, 2, f.presence.online)

	assert.Equal(t, []roleChange{{"u-joined", memberRole, true}}, f.changesFor("u-joined"), "accent-insensitive match grants")
	assert.Empty(t, f.changesFor("u-kept"))
	assert.Empty(t, f.changesFor("u-mixed"), "one remaining character keeps the role")
	assert.Empty(t, f.changesFor("u-stranger"))
	assert.Empty(t, f.changesFor("bot"))
	assert.Empty(t, f.changesFor("admin"))

	left := f.changesFor("u-left")
	assert.Contains(t, left, roleChange{"u-left", memberRole, false})
	assert.Contains(t, left, roleChange{"u-left", raiderRole, false})

	remaining, _ := f.chars.ListCharactersByGuild(context.Background(), guildID)
	assert.Len(t, remaining, 3)
}

func TestSyncGuild_Force(t *testing.T) {
	f := newFixture()
	f.armory.On("InvalidateRoster", mock.Anything, "Ascension", "Lordaeron").Return(nil).Once()
	f.armory.On("GuildMembers", mock.Anything, "Ascension", "Lordaeron", true).
		Return(roster(0, "Arthas", "Legolas", "Gimli", "Boromir", "Saruman"), nil)

	report, err := f.svc.SyncGuild(context.Background(), guildID, true)
	require.NoError(t, err)

	assert.Empty(t, report.Pruned)
	f.armory.AssertExpectations(t)
}

func TestSyncGuild_EmptyRosterChangesNothing(t *testing.T) {
	f := newFixture()
	f.armory.On("GuildMembers", mock.Anything, "Ascension", "Lordaeron", false).Return(roster(0), nil)

	report, err := f.svc.SyncGuild(context.Background(), guildID, false)
	require.NoError(t, err)

	assert.Empty(t, report.Pruned)
	assert.Zero(t, report.Granted)
	assert.Zero(t, report.Removed)
	assert.Empty(t, f.dir.changes, "member roles survive an empty roster")
	remaining, _ := f.chars.ListCharactersByGuild(context.Background(), guildID)
	assert.Len(t, remaining, 5)
}

func TestSyncGuild_Errors(t *testing.T) {
	t.Run("unconfigured guild", func(t *testing.T) {
		f := newFixture()
		_, err := f.svc.SyncGuild(context.Background(), "nope", false)
		assert.ErrorIs(t, err, domain.ErrGuildNotConfigured)
	})

	t.Run("sync disabled without member role", func(t *testing.T) {
		f := newFixture()
		f.guilds.configs[guildID].MemberRoleID = ""
		_, err := f.svc.SyncGuild(context.Background(), guildID, false)
		assert.ErrorIs(t, err, domain.ErrGuildNotConfigured)
	})

	t.Run("armory maintenance", func(t *testing.T) {
		f := newFixture()
		f.armory.On("GuildMembers", mock.Anything, "Ascension", "Lordaeron", false).Return(nil, armory.ErrMaintenance)
		_, err := f.svc.SyncGuild(context.Background(), guildID, false)
		assert.True(t, armory.IsMaintenance(err))
		assert.Empty(t, f.dir.changes)
	})

	t.Run("role change failure continues", func(t *testing.T) {
		f := newFixture()
		f.dir.failFor = "u-joined"
		f.armory.On("GuildMembers", mock.Anything, "Ascension", "Lordaeron", false).
			Return(roster(0, "Arthas", "Legolas", "Gimli", "Boromir", "Saruman"), nil)

		report, err := f.svc.SyncGuild(context.Background(), guildID, false)
		require.NoError(t, err)
		assert.Zero(t, report.Granted)
	})
}

func TestSyncGuild_ConcurrentRunSkipped(t *testing.T) {
	f := newFixture()
	f.dir.block = make(chan struct{})
	f.armory.On("GuildMembers", mock.Anything, "Ascension", "Lordaeron", false).
		Return(roster(0, "Arthas", "Legolas", "Gimli", "Boromir", "Saruman"), nil)

	done := make(chan error, 1)
	go func() {
		_, err := f.svc.SyncGuild(context.Background(), guildID, false)
		done <- err
	}()

	require.Eventually(t, func() bool {
		unlock, ok := f.svc.locks.TryLock(guildID)
		if ok {
			unlock()
		}
		return !ok
	}, time.Second, 5*time.Millisecond)

	_, err := f.svc.SyncGuild(context.Background(), guildID, false)
	assert.ErrorIs(t, err, domain.ErrSyncInProgress)

	close(f.dir.block)
	require.NoError(t, <-done)
}

func TestSyncAll(t *testing.T) {
	f := newFixture()
	f.guilds.configs["g-disabled"] = &domain.GuildConfig{GuildID: "g-disabled"}
	f.armory.On("GuildMembers", mock.Anything, "Ascension", "Lordaeron", false).
		Return(roster(1, "Arthas", "Legolas", "Gimli", "Boromir", "Saruman"), nil).Once()

	require.NoError(t, f.svc.SyncAll(context.Background()))
	f.armory.AssertExpectations(t)
	assert.Equal(t, 1, f.presence.online)
}
