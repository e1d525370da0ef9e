// Package raid schedules raids and manages their signups.
package raid

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/metrics"
	"github.com/osse101/RaidBot_Go/internal/repository"
)

// CreateInput is what an officer supplies to schedule a raid.
// Zero slot counts take the default composition.
type CreateInput struct {
	GuildID      string `validate:"required"`
	LeaderID     string `validate:"required"`
	ChannelID    string
	Title        string `validate:"required,max=100"`
	Instance     string `validate:"required,max=100"`
	Date         string `validate:"required"`
	TankSlots    int    `validate:"min=0,max=40"`
	HealerSlots  int    `validate:"min=0,max=40"`
	DPSSlots     int    `validate:"min=0,max=40"`
	MinGearScore int    `validate:"min=0,max=7000"`
}

// Notifier delivers raid reminders to where the raid was posted.
type Notifier interface {
	NotifyRaidReminder(ctx context.Context, raid domain.Raid, signups []domain.RaidSignup) error
}

// Service defines raid operations
type Service interface {
	Create(ctx context.Context, in CreateInput) (*domain.Raid, error)
	AttachMessage(ctx context.Context, raidID, channelID, messageID string) error
	Get(ctx context.Context, raidID string) (*domain.Raid, error)
	ListUpcoming(ctx context.Context, guildID string) ([]domain.RaidSummary, error)
	// Cancel deletes the raid and returns it so the caller can remove its message.
	Cancel(ctx context.Context, raidID string) (*domain.Raid, error)

	SignUp(ctx context.Context, guildID, raidID, discordID, role string) (*domain.RaidSignup, error)
	Leave(ctx context.Context, raidID, discordID string) error
	Bench(ctx context.Context, raidID, characterName string, benched bool) error
	Signups(ctx context.Context, raidID string) ([]domain.RaidSignup, error)

	// SendReminders notifies every raid starting within lead that has not been reminded.
	SendReminders(ctx context.Context, lead time.Duration) (int, error)
}

type service struct {
	raids      repository.Raid
	characters repository.Character
	notifier   Notifier
	validate   *validator.Validate
	now        func() time.Time
}

// NewService creates a raid service. notifier may be nil when reminders are not sent.
func NewService(raids repository.Raid, characters repository.Character, notifier Notifier) Service {
	return &service{
		raids:      raids,
		characters: characters,
		notifier:   notifier,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		now:        time.Now,
	}
}

// ParseDate parses a raid start in either accepted layout, interpreting
// layouts without a zone in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q (use YYYY-MM-DD HH:MM)", domain.ErrInvalidDate, value)
}

func (s *service) Create(ctx context.Context, in CreateInput) (*domain.Raid, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Instance = strings.TrimSpace(in.Instance)
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	at, err := ParseDate(in.Date, time.UTC)
	if err != nil {
		return nil, err
	}
	if !at.After(s.now()) {
		return nil, fmt.Errorf("%w: raid must start in the future", domain.ErrInvalidDate)
	}

	if in.TankSlots == 0 && in.HealerSlots == 0 && in.DPSSlots == 0 {
		in.TankSlots = domain.DefaultTankSlots
		in.HealerSlots = domain.DefaultHealerSlots
		in.DPSSlots = domain.DefaultDPSSlots
	}

	r := &domain.Raid{
		GuildID:      in.GuildID,
		Title:        in.Title,
		Instance:     in.Instance,
		ScheduledAt:  at,
		TankSlots:    in.TankSlots,
		HealerSlots:  in.HealerSlots,
		DPSSlots:     in.DPSSlots,
		MinGearScore: in.MinGearScore,
		RaidLeaderID: in.LeaderID,
		ChannelID:    in.ChannelID,
	}
	if err := s.raids.CreateRaid(ctx, r); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgRaidCreated, "raid_id", r.ID, "title", r.Title, "scheduled_at", r.ScheduledAt)
	return r, nil
}

func (s *service) AttachMessage(ctx context.Context, raidID, channelID, messageID string) error {
	return s.raids.SetSignupMessage(ctx, raidID, channelID, messageID)
}

func (s *service) Get(ctx context.Context, raidID string) (*domain.Raid, error) {
	return s.raids.GetRaid(ctx, raidID)
}

func (s *service) ListUpcoming(ctx context.Context, guildID string) ([]domain.RaidSummary, error) {
	return s.raids.ListUpcomingRaids(ctx, guildID, s.now())
}

func (s *service) Cancel(ctx context.Context, raidID string) (*domain.Raid, error) {
	r, err := s.raids.GetRaid(ctx, raidID)
	if err != nil {
		return nil, err
	}
	if err := s.raids.DeleteRaid(ctx, raidID); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgRaidCancelled, "raid_id", raidID)
	return r, nil
}

// SignUp registers the user's first character for the raid in role,
// replacing any earlier signup of theirs.
func (s *service) SignUp(ctx context.Context, guildID, raidID, discordID, role string) (*domain.RaidSignup, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	r, err := s.raids.GetRaid(ctx, raidID)
	if err != nil {
		return nil, err
	}

	chars, err := s.characters.ListCharactersByUser(ctx, guildID, discordID)
	if err != nil {
		return nil, err
	}
	if len(chars) == 0 {
		return nil, domain.ErrNoCharacters
	}
	primary := chars[0]

	if r.MinGearScore > 0 && primary.Score() < r.MinGearScore {
		return nil, fmt.Errorf("%w: %s has %d, raid requires %d",
			domain.ErrGearScoreTooLow, primary.Name, primary.Score(), r.MinGearScore)
	}

	signup := &domain.RaidSignup{
		RaidID:        r.ID,
		DiscordID:     discordID,
		CharacterName: primary.Name,
		Role:          role,
		GearScore:     primary.GearScore,
	}
	if err := s.raids.UpsertSignup(ctx, signup); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgSignup, "raid_id", r.ID, "character", primary.Name, "role", role)
	return signup, nil
}

func (s *service) Leave(ctx context.Context, raidID, discordID string) error {
	n, err := s.raids.DeleteSignup(ctx, raidID, discordID)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrSignupNotFound
	}
	logger.FromContext(ctx).Info(LogMsgSignupRemoved, "raid_id", raidID, "discord_id", discordID)
	return nil
}

func (s *service) Bench(ctx context.Context, raidID, characterName string, benched bool) error {
	return s.raids.SetBenched(ctx, raidID, strings.TrimSpace(characterName), benched)
}

func (s *service) Signups(ctx context.Context, raidID string) ([]domain.RaidSignup, error) {
	return s.raids.ListSignups(ctx, raidID)
}

// SendReminders returns how many raids were reminded. A failure on one raid
// does not stop the others; the first error is returned after all are tried.
func (s *service) SendReminders(ctx context.Context, lead time.Duration) (int, error) {
	log := logger.FromContext(ctx)
	now := s.now()

	due, err := s.raids.RaidsNeedingReminder(ctx, now, now.Add(lead))
	if err != nil {
		return 0, fmt.Errorf(ErrMsgListReminders, err)
	}
	if len(due) > 0 {
		log.Debug(LogMsgReminderPending, "count", len(due))
	}

	var errs []error
	sent := 0
	for _, r := range due {
		if err := s.remind(ctx, r, now); err != nil {
			log.Error(LogMsgReminderFailed, "raid_id", r.ID, "error", err)
			errs = append(errs, err)
			continue
		}
		sent++
	}
	return sent, errors.Join(errs...)
}

func (s *service) remind(ctx context.Context, r domain.Raid, now time.Time) error {
	signups, err := s.raids.ListSignups(ctx, r.ID)
	if err != nil {
		return err
	}

	active := make([]domain.RaidSignup, 0, len(signups))
	logs := make([]domain.RaidLog, 0, len(signups))
	for _, su := range signups {
		if su.Benched {
			continue
		}
		active = append(active, su)
		logs = append(logs, domain.RaidLog{
			RaidID:        r.ID,
			CharacterName: su.CharacterName,
			Role:          su.Role,
			LoggedAt:      now,
		})
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyRaidReminder(ctx, r, active); err != nil {
			return err
		}
	}
	if err := s.raids.CompleteReminder(ctx, r.ID, logs); err != nil {
		return err
	}

	metrics.RemindersSent.Inc()
	logger.FromContext(ctx).Info(LogMsgReminderSent, "raid_id", r.ID, "mentions", len(active))
	return nil
}
