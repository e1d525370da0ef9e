// Package character registers guild characters and keeps their GearScore current.
package character

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/metrics"
	"github.com/osse101/RaidBot_Go/internal/repository"
)

// Scorer computes a GearScore from equipped items.
type Scorer interface {
	Calculate(equipment []domain.EquippedItem, playerClass string) int
}

// Service defines character operations
type Service interface {
	Register(ctx context.Context, guildID, discordID, name string) (*Registration, error)
	Get(ctx context.Context, guildID, name string) (*domain.Character, error)
	List(ctx context.Context, guildID, discordID string) ([]domain.Character, error)
	// Delete removes a character owned by discordID.
	Delete(ctx context.Context, guildID, discordID string, id int64) (*domain.Character, error)
	// RefreshGearScore recomputes a character's score from the armory. Only
	// registered characters have the new score stored.
	RefreshGearScore(ctx context.Context, guildID, name string) (*ScoreResult, error)
	SetGearScore(ctx context.Context, guildID, actor, name string, score int) (*domain.Character, error)
}

// Registration is the outcome of a successful Register.
type Registration struct {
	Character *domain.Character
	ArmoryURL string
}

// ScoreResult is the outcome of a RefreshGearScore.
type ScoreResult struct {
	Character *domain.Character
	GearScore int
	// Cached is set when the armory could not be reached and the stored score was used.
	Cached    bool
	ArmoryURL string
}

type manualScore struct {
	Name  string `validate:"required,max=50"`
	Score int    `validate:"min=3000,max=7000"`
}

type service struct {
	characters   repository.Character
	guilds       repository.GuildConfig
	armory       armory.Client
	scorer       Scorer
	defaultRealm string
	validate     *validator.Validate
}

// NewService creates a character service. defaultRealm is used for guilds
// without a stored realm.
func NewService(characters repository.Character, guilds repository.GuildConfig, client armory.Client, scorer Scorer, defaultRealm string) Service {
	return &service{
		characters:   characters,
		guilds:       guilds,
		armory:       client,
		scorer:       scorer,
		defaultRealm: defaultRealm,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *service) realm(ctx context.Context, guildID string) (string, error) {
	cfg, err := s.guilds.GetGuildConfig(ctx, guildID)
	switch {
	case err == nil && cfg.WarmaneRealm != "":
		return cfg.WarmaneRealm, nil
	case err == nil, errors.Is(err, domain.ErrGuildNotConfigured):
		return s.defaultRealm, nil
	default:
		return "", err
	}
}

// Register looks the character up on the armory, scores it and stores it.
func (s *service) Register(ctx context.Context, guildID, discordID, name string) (*Registration, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: character name is required", domain.ErrInvalidInput)
	}

	if _, err := s.characters.GetCharacterByName(ctx, guildID, name); err == nil {
		return nil, domain.ErrCharacterExists
	} else if !errors.Is(err, domain.ErrCharacterNotFound) {
		return nil, err
	}

	realm, err := s.realm(ctx, guildID)
	if err != nil {
		return nil, err
	}

	summary, err := s.armory.CharacterSummary(ctx, name, realm)
	if err != nil {
		if errors.Is(err, armory.ErrNotFound) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf(ErrMsgArmoryLookup, err)
	}

	score := s.scorer.Calculate(summary.Equipment, summary.Class)
	metrics.GearScoreCalculations.WithLabelValues(sourceRegister).Inc()

	c := &domain.Character{
		GuildID:   guildID,
		DiscordID: discordID,
		Name:      summary.Name,
		Realm:     realm,
		Class:     summary.Class,
		GearScore: &score,
		UpdatedBy: discordID,
	}
	if err := s.characters.CreateCharacter(ctx, c); err != nil {
		return nil, err
	}

	log.Info(LogMsgCharacterRegistered, "character", c.Name, "discord_id", discordID, "gear_score", score)
	return &Registration{Character: c, ArmoryURL: armory.CharacterURL(c.Name, realm)}, nil
}

func (s *service) Get(ctx context.Context, guildID, name string) (*domain.Character, error) {
	return s.characters.GetCharacterByName(ctx, guildID, strings.TrimSpace(name))
}

func (s *service) List(ctx context.Context, guildID, discordID string) ([]domain.Character, error) {
	return s.characters.ListCharactersByUser(ctx, guildID, discordID)
}

func (s *service) Delete(ctx context.Context, guildID, discordID string, id int64) (*domain.Character, error) {
	c, err := s.characters.GetCharacterByID(ctx, guildID, id)
	if err != nil {
		return nil, err
	}
	if c.DiscordID != discordID {
		return nil, domain.ErrNotCharacterOwner
	}
	if err := s.characters.DeleteCharacter(ctx, id); err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Info(LogMsgCharacterDeleted, "character", c.Name, "discord_id", discordID)
	return c, nil
}

// RefreshGearScore fetches fresh equipment and stores the new score. A
// maintenance outage is returned as is; any other armory failure falls back
// to the stored score. Characters nobody registered are scored from the
// armory in the guild's realm and not stored.
func (s *service) RefreshGearScore(ctx context.Context, guildID, name string) (*ScoreResult, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	c, err := s.characters.GetCharacterByName(ctx, guildID, name)
	if errors.Is(err, domain.ErrCharacterNotFound) {
		return s.lookupGearScore(ctx, guildID, name)
	}
	if err != nil {
		return nil, err
	}
	result := &ScoreResult{Character: c, ArmoryURL: armory.CharacterURL(c.Name, c.Realm)}

	summary, err := s.armory.CharacterSummary(ctx, c.Name, c.Realm)
	if err != nil {
		if armory.IsMaintenance(err) {
			return nil, err
		}
		if c.GearScore == nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrGearScoreNotCached, err)
		}
		log.Warn(LogMsgArmoryFallback, "character", c.Name, "error", err)
		result.GearScore = *c.GearScore
		result.Cached = true
		return result, nil
	}

	if len(summary.Equipment) == 0 {
		log.Warn(LogMsgEmptyEquipment, "character", c.Name)
		result.GearScore = c.Score()
	} else {
		result.GearScore = s.scorer.Calculate(summary.Equipment, summary.Class)
		metrics.GearScoreCalculations.WithLabelValues(sourceRefresh).Inc()
	}

	if err := s.characters.UpdateGearScore(ctx, c.ID, result.GearScore, c.DiscordID); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveScore, err)
	}
	c.GearScore = &result.GearScore

	log.Info(LogMsgGearScoreUpdated, "character", c.Name, "gear_score", result.GearScore)
	return result, nil
}

// lookupGearScore scores a character straight from the armory.
func (s *service) lookupGearScore(ctx context.Context, guildID, name string) (*ScoreResult, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: character name is required", domain.ErrInvalidInput)
	}
	realm, err := s.realm(ctx, guildID)
	if err != nil {
		return nil, err
	}

	summary, err := s.armory.CharacterSummary(ctx, name, realm)
	switch {
	case err == nil:
	case armory.IsMaintenance(err):
		return nil, err
	case errors.Is(err, armory.ErrNotFound):
		return nil, domain.ErrCharacterNotFound
	default:
		return nil, fmt.Errorf(ErrMsgArmoryLookup, err)
	}

	score := 0
	if len(summary.Equipment) > 0 {
		score = s.scorer.Calculate(summary.Equipment, summary.Class)
		metrics.GearScoreCalculations.WithLabelValues(sourceLookup).Inc()
	}
	c := &domain.Character{GuildID: guildID, Name: summary.Name, Realm: realm, Class: summary.Class, GearScore: &score}

	logger.FromContext(ctx).Info(LogMsgUnregisteredLookup, "character", c.Name, "realm", realm, "gear_score", score)
	return &ScoreResult{Character: c, GearScore: score, ArmoryURL: armory.CharacterURL(c.Name, realm)}, nil
}

// SetGearScore overrides a character's score by hand.
func (s *service) SetGearScore(ctx context.Context, guildID, actor, name string, score int) (*domain.Character, error) {
	in := manualScore{Name: strings.TrimSpace(name), Score: score}
	if err := s.validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && verrs[0].Field() == "Score" {
			return nil, domain.ErrGearScoreRange
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	c, err := s.characters.GetCharacterByName(ctx, guildID, in.Name)
	if err != nil {
		return nil, err
	}
	if err := s.characters.UpdateGearScore(ctx, c.ID, score, actor); err != nil {
		return nil, fmt.Errorf(ErrMsgSaveScore, err)
	}
	c.GearScore = &score
	c.UpdatedBy = actor

	logger.FromContext(ctx).Info(LogMsgGearScoreSet, "character", c.Name, "gear_score", score, "actor", actor)
	return c, nil
}

// ColorFor maps a GearScore to an embed color. nil means unknown.
func ColorFor(score *int) int {
	switch {
	case score == nil:
		return ColorUnknown
	case *score < redBelow:
		return ColorRed
	case *score < yellowBelow:
		return ColorYellow
	default:
		return ColorGreen
	}
}
