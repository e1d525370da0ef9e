// Package rolesync keeps the Discord member role in step with the in-game guild roster.
package rolesync

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/concurrency"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/metrics"
	"github.com/osse101/RaidBot_Go/internal/repository"
)

// Member is a Discord guild member as role sync sees it.
type Member struct {
	UserID  string
	Bot     bool
	Admin   bool
	RoleIDs []string
}

// HasRole reports whether the member holds roleID.
func (m Member) HasRole(roleID string) bool {
	return slices.Contains(m.RoleIDs, roleID)
}

// Directory reads and edits Discord guild membership.
type Directory interface {
	Members(ctx context.Context, guildID string) ([]Member, error)
	AddRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error
}

// Presence shows the online member count as the bot status.
type Presence interface {
	SetOnlineCount(ctx context.Context, online int) error
}

// Report summarises one guild sync.
type Report struct {
	GuildID    string
	RosterSize int
	Online     int
	Granted    int
	Removed    int
	Skipped    int
	Pruned     []string
	Cleared    []string
}

// Service syncs roles for configured guilds.
type Service struct {
	guilds     repository.GuildConfig
	characters repository.Character
	armory     armory.Client
	directory  Directory
	presence   Presence
	locks      *concurrency.LockManager
}

// NewService creates a role sync service. presence may be nil.
func NewService(guilds repository.GuildConfig, characters repository.Character, client armory.Client, directory Directory, presence Presence) *Service {
	return &Service{
		guilds:     guilds,
		characters: characters,
		armory:     client,
		directory:  directory,
		presence:   presence,
		locks:      concurrency.NewLockManager(),
	}
}

// SyncAll syncs every guild with sync configured. Failures are logged and
// the first one is returned after all guilds have been tried.
func (s *Service) SyncAll(ctx context.Context) error {
	log := logger.FromContext(ctx)

	configs, err := s.guilds.ListGuildConfigs(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, cfg := range configs {
		if !cfg.SyncEnabled() {
			continue
		}
		gctx := logger.WithGuildID(ctx, cfg.GuildID)
		if _, err := s.SyncGuild(gctx, cfg.GuildID, false); err != nil {
			if errors.Is(err, domain.ErrSyncInProgress) {
				continue
			}
			log.Error(LogMsgSyncFailed, "guild_id", cfg.GuildID, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SyncGuild grants or removes the member role for every Discord member of
// guildID, then prunes characters that left the in-game guild. force
// bypasses the roster cache.
func (s *Service) SyncGuild(ctx context.Context, guildID string, force bool) (*Report, error) {
	log := logger.FromContext(ctx)

	cfg, err := s.guilds.GetGuildConfig(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if !cfg.SyncEnabled() {
		return nil, domain.ErrGuildNotConfigured
	}

	unlock, ok := s.locks.TryLock(guildID)
	if !ok {
		log.Info(LogMsgSyncSkipped, "guild_id", guildID)
		return nil, domain.ErrSyncInProgress
	}
	defer unlock()

	log.Info(LogMsgSyncStarted, "guild_id", guildID, "force", force)

	if force {
		if err := s.armory.InvalidateRoster(ctx, cfg.WarmaneGuildName, cfg.WarmaneRealm); err != nil {
			log.Warn(armory.LogMsgCacheError, "error", err)
		}
	}
	roster, err := s.armory.GuildMembers(ctx, cfg.WarmaneGuildName, cfg.WarmaneRealm, force)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgFetchRoster, err)
	}

	onRoster := make(map[string]bool, len(roster.Members))
	for _, m := range roster.Members {
		onRoster[NormalizeName(m.Name)] = true
	}

	chars, err := s.characters.ListCharactersByGuild(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRegistry, err)
	}

	report := &Report{GuildID: guildID, RosterSize: len(roster.Members), Online: len(roster.Online())}

	// An empty roster is treated as an armory glitch: no roles change and
	// nothing is pruned.
	if len(roster.Members) == 0 {
		log.Warn(LogMsgEmptyRoster, "guild_id", guildID)
	} else {
		if err := s.applyMemberRole(ctx, cfg, chars, onRoster, report); err != nil {
			return nil, err
		}
		s.prune(ctx, cfg, chars, onRoster, report)
	}

	if s.presence != nil {
		if err := s.presence.SetOnlineCount(ctx, report.Online); err != nil {
			log.Warn(LogMsgPresenceFailed, "error", err)
		}
	}

	log.Info(LogMsgSyncFinished,
		"guild_id", guildID,
		"roster", report.RosterSize,
		"granted", report.Granted,
		"removed", report.Removed,
		"pruned", len(report.Pruned))
	return report, nil
}

func (s *Service) applyMemberRole(ctx context.Context, cfg *domain.GuildConfig, chars []domain.Character, onRoster map[string]bool, report *Report) error {
	log := logger.FromContext(ctx)

	inGuild := make(map[string]bool)
	for _, c := range chars {
		if onRoster[NormalizeName(c.Name)] {
			inGuild[c.DiscordID] = true
		}
	}

	members, err := s.directory.Members(ctx, cfg.GuildID)
	if err != nil {
		return fmt.Errorf(ErrMsgListMembers, err)
	}

	for _, m := range members {
		if m.Bot || m.Admin {
			report.Skipped++
			continue
		}

		has := m.HasRole(cfg.MemberRoleID)
		switch {
		case inGuild[m.UserID] && !has:
			if err := s.directory.AddRole(ctx, cfg.GuildID, m.UserID, cfg.MemberRoleID); err != nil {
				log.Warn(LogMsgRoleChangeFailed, "user_id", m.UserID, "action", actionGrant, "error", err)
				continue
			}
			metrics.RoleChanges.WithLabelValues(actionGrant).Inc()
			report.Granted++
		case !inGuild[m.UserID] && has:
			if err := s.directory.RemoveRole(ctx, cfg.GuildID, m.UserID, cfg.MemberRoleID); err != nil {
				log.Warn(LogMsgRoleChangeFailed, "user_id", m.UserID, "action", actionRemove, "error", err)
				continue
			}
			metrics.RoleChanges.WithLabelValues(actionRemove).Inc()
			report.Removed++
		}
	}
	return nil
}

// prune deletes registered characters that are no longer on the roster and
// strips every configured guild role from users left without characters.
func (s *Service) prune(ctx context.Context, cfg *domain.GuildConfig, chars []domain.Character, onRoster map[string]bool, report *Report) {
	log := logger.FromContext(ctx)

	remaining := make(map[string]int)
	for _, c := range chars {
		remaining[c.DiscordID]++
	}

	for _, c := range chars {
		if onRoster[NormalizeName(c.Name)] {
			continue
		}
		if err := s.characters.DeleteCharacter(ctx, c.ID); err != nil && !errors.Is(err, domain.ErrCharacterNotFound) {
			log.Warn(LogMsgPruneDeleteFailed, "character", c.Name, "error", err)
			continue
		}
		log.Info(LogMsgCharacterPruned, "character", c.Name, "discord_id", c.DiscordID)
		metrics.RoleChanges.WithLabelValues(actionPrune).Inc()
		report.Pruned = append(report.Pruned, c.Name)
		remaining[c.DiscordID]--
	}

	for userID, left := range remaining {
		if left > 0 {
			continue
		}
		for _, roleID := range cfg.GuildRoleIDs() {
			if err := s.directory.RemoveRole(ctx, cfg.GuildID, userID, roleID); err != nil {
				log.Warn(LogMsgRoleChangeFailed, "user_id", userID, "role_id", roleID, "error", err)
			}
		}
		log.Info(LogMsgUserCleared, "discord_id", userID)
		report.Cleared = append(report.Cleared, userID)
	}
	slices.Sort(report.Cleared)
}
