package raid

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/osse101/RaidBot_Go/internal/domain"
)

// fakeRaidRepo is an in-memory repository.Raid
type fakeRaidRepo struct {
	mu      sync.Mutex
	nextID  int
	raids   map[string]*domain.Raid
	signups map[string][]domain.RaidSignup
	logs    []domain.RaidLog
}

func newFakeRaidRepo() *fakeRaidRepo {
	return &fakeRaidRepo{
		raids:   make(map[string]*domain.Raid),
		signups: make(map[string][]domain.RaidSignup),
	}
}

func (f *fakeRaidRepo) CreateRaid(_ context.Context, r *domain.Raid) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	r.ID = fmt.Sprintf("raid-%d", f.nextID)
	r.CreatedAt = time.Now()
	cp := *r
	f.raids[r.ID] = &cp
	return nil
}

func (f *fakeRaidRepo) GetRaid(_ context.Context, raidID string) (*domain.Raid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.raids[raidID]
	if !ok {
		return nil, domain.ErrRaidNotFound
	}
	cp := *r
	return &cp, nil
}

func (f *fakeRaidRepo) SetSignupMessage(_ context.Context, raidID, channelID, messageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.raids[raidID]
	if !ok {
		return domain.ErrRaidNotFound
	}
	r.ChannelID = channelID
	r.SignupMessageID = messageID
	return nil
}

func (f *fakeRaidRepo) ListUpcomingRaids(_ context.Context, guildID string, after time.Time) ([]domain.RaidSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.RaidSummary
	for _, r := range f.raids {
		if r.GuildID == guildID && r.ScheduledAt.After(after) {
			out = append(out, domain.RaidSummary{Raid: *r, SignupCount: len(f.signups[r.ID])})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (f *fakeRaidRepo) DeleteRaid(_ context.Context, raidID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.raids[raidID]; !ok {
		return domain.ErrRaidNotFound
	}
	delete(f.raids, raidID)
	delete(f.signups, raidID)
	return nil
}

func (f *fakeRaidRepo) UpsertSignup(_ context.Context, s *domain.RaidSignup) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.signups[s.RaidID][:0]
	for _, existing := range f.signups[s.RaidID] {
		if existing.DiscordID != s.DiscordID && existing.CharacterName != s.CharacterName {
			kept = append(kept, existing)
		}
	}
	s.SignedUpAt = time.Now()
	f.signups[s.RaidID] = append(kept, *s)
	return nil
}

func (f *fakeRaidRepo) DeleteSignup(_ context.Context, raidID, discordID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	kept := f.signups[raidID][:0]
	for _, s := range f.signups[raidID] {
		if s.DiscordID == discordID {
			n++
			continue
		}
		kept = append(kept, s)
	}
	f.signups[raidID] = kept
	return n, nil
}

func (f *fakeRaidRepo) SetBenched(_ context.Context, raidID, characterName string, benched bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, s := range f.signups[raidID] {
		if strings.EqualFold(s.CharacterName, characterName) {
			f.signups[raidID][i].Benched = benched
			return nil
		}
	}
	return domain.ErrSignupNotFound
}

func (f *fakeRaidRepo) ListSignups(_ context.Context, raidID string) ([]domain.RaidSignup, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]domain.RaidSignup(nil), f.signups[raidID]...), nil
}

func (f *fakeRaidRepo) RaidsNeedingReminder(_ context.Context, now, until time.Time) ([]domain.Raid, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Raid
	for _, r := range f.raids {
		if !r.ReminderSent && !r.ScheduledAt.Before(now) && r.ScheduledAt.Before(until) {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ScheduledAt.Before(out[j].ScheduledAt) })
	return out, nil
}

func (f *fakeRaidRepo) CompleteReminder(_ context.Context, raidID string, logs []domain.RaidLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.raids[raidID]
	if !ok {
		return domain.ErrRaidNotFound
	}
	r.ReminderSent = true
	f.logs = append(f.logs, logs...)
	return nil
}

// fakeCharacters implements the subset of repository.Character the raid service uses
type fakeCharacters struct {
	byUser map[string][]domain.Character
}

func (f *fakeCharacters) CreateCharacter(context.Context, *domain.Character) error { return nil }
func (f *fakeCharacters) GetCharacterByName(context.Context, string, string) (*domain.Character, error) {
	return nil, domain.ErrCharacterNotFound
}
func (f *fakeCharacters) GetCharacterByID(context.Context, string, int64) (*domain.Character, error) {
	return nil, domain.ErrCharacterNotFound
}
func (f *fakeCharacters) ListCharactersByUser(_ context.Context, _ string, discordID string) ([]domain.Character, error) {
	return f.byUser[discordID], nil
}
func (f *fakeCharacters) ListCharactersByGuild(context.Context, string) ([]domain.Character, error) {
	return nil, nil
}
func (f *fakeCharacters) UpdateGearScore(context.Context, int64, int, string) error { return nil }
func (f *fakeCharacters) DeleteCharacter(context.Context, int64) error              { return nil }
func (f *fakeCharacters) DeleteCharactersByUser(context.Context, string, string) (int64, error) {
	return 0, nil
}

type recordingNotifier struct {
	mu    sync.Mutex
	calls map[string][]domain.RaidSignup
	err   error
}

func (n *recordingNotifier) NotifyRaidReminder(_ context.Context, r domain.Raid, signups []domain.RaidSignup) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	if n.calls == nil {
		n.calls = make(map[string][]domain.RaidSignup)
	}
	n.calls[r.ID] = signups
	return nil
}
