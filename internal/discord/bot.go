package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/logger"
)

// Member listing for role sync needs the privileged GuildMembers intent.
const botIntents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

const guildSeedTimeout = 10 * time.Second

// Bot owns the gateway session and routes interactions to the registry.
type Bot struct {
	Session  *discordgo.Session
	AppID    string
	GuildID  string
	Registry *CommandRegistry
	Services *Services
}

// Config holds the bot configuration
type Config struct {
	Token string
	AppID string
	// GuildID scopes command registration to one guild during development.
	GuildID string
}

// New prepares a session without connecting. Services may be attached later,
// before Start.
func New(cfg Config, svc *Services) (*Bot, error) {
	if cfg.Token == "" {
		return nil, errors.New("discord token is empty")
	}
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}
	s.Identify.Intents = botIntents

	return &Bot{
		Session:  s,
		AppID:    cfg.AppID,
		GuildID:  cfg.GuildID,
		Registry: NewCommandRegistry(),
		Services: svc,
	}, nil
}

// Start registers gateway handlers and opens the connection.
func (b *Bot) Start() error {
	b.Session.AddHandler(b.onReady)
	b.Session.AddHandler(b.onGuildCreate)
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		b.Registry.Handle(s, i, b.Services)
	})

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() error {
	return b.Session.Close()
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	slog.Info("Discord gateway ready", "user", r.User.Username, "guilds", len(r.Guilds), "session_id", r.SessionID)
}

func (b *Bot) onGuildCreate(_ *discordgo.Session, g *discordgo.GuildCreate) {
	ctx, cancel := context.WithTimeout(logger.WithGuildID(context.Background(), g.ID), guildSeedTimeout)
	defer cancel()
	b.seedGuildConfig(ctx, g.ID, g.Name)
}

// seedGuildConfig stores the environment defaults for a guild the bot joins
// without a configuration row, so role sync picks it up.
func (b *Bot) seedGuildConfig(ctx context.Context, guildID, name string) {
	if b.Services == nil || b.Services.Guilds == nil || b.Services.Defaults == nil {
		return
	}
	log := logger.FromContext(ctx)

	_, err := b.Services.Guilds.GetGuildConfig(ctx, guildID)
	switch {
	case err == nil:
		return
	case !errors.Is(err, domain.ErrGuildNotConfigured):
		log.Error("Failed to load guild config", "error", err)
		return
	}

	defaults := b.Services.Defaults(guildID)
	if defaults.WarmaneGuildName == "" {
		log.Info("Joined unconfigured guild", "name", name)
		return
	}
	if err := b.Services.Guilds.UpsertGuildConfig(ctx, &defaults); err != nil {
		log.Error("Failed to seed guild config", "error", err)
		return
	}
	log.Info("Seeded guild config from defaults", "warmane_guild", defaults.WarmaneGuildName)
}
