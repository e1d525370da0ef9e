package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/RaidBot_Go/internal/bootstrap"
	"github.com/osse101/RaidBot_Go/internal/catalog"
	"github.com/osse101/RaidBot_Go/internal/character"
	"github.com/osse101/RaidBot_Go/internal/config"
	"github.com/osse101/RaidBot_Go/internal/database"
	"github.com/osse101/RaidBot_Go/internal/discord"
	"github.com/osse101/RaidBot_Go/internal/domain"
	"github.com/osse101/RaidBot_Go/internal/gearscore"
	"github.com/osse101/RaidBot_Go/internal/metrics"
	"github.com/osse101/RaidBot_Go/internal/raid"
	"github.com/osse101/RaidBot_Go/internal/rolesync"
	"github.com/osse101/RaidBot_Go/internal/scheduler"
	"github.com/osse101/RaidBot_Go/internal/server"
	"github.com/osse101/RaidBot_Go/internal/worker"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
	workerQueueSize = 16
)

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	if err := run(); err != nil {
		slog.Error("RaidBot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg)

	warnings, err := cfg.Validate()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStart()

	// Database
	if err := database.Migrate(startCtx, cfg.GetDBConnString()); err != nil {
		return err
	}
	dbPool, err := database.NewPool(startCtx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	repos := bootstrap.InitializeRepositories(dbPool)

	// GearScore engine over the item catalog
	items := catalog.Load(startCtx, cfg.ItemsPath)
	metrics.CatalogItems.Set(float64(items.Len()))
	engine := gearscore.NewEngine(items, gearscore.WithMissObserver(recordMiss))

	backends := bootstrap.InitializeBackends(startCtx, cfg)

	// The session exists before its handlers so the adapters can share it.
	bot, err := discord.New(discord.Config{
		Token:   cfg.DiscordToken,
		AppID:   cfg.DiscordAppID,
		GuildID: cfg.DiscordDevGuildID,
	}, nil)
	if err != nil {
		return err
	}

	characterService := character.NewService(repos.Characters, repos.Guilds, backends.Armory, engine, cfg.DefaultRealm)
	raidService := raid.NewService(repos.Raids, repos.Characters, &discord.ReminderNotifier{Session: bot.Session})
	syncService := rolesync.NewService(repos.Guilds, repos.Characters, backends.Armory,
		&discord.SessionDirectory{Session: bot.Session}, &discord.SessionPresence{Session: bot.Session})

	bot.Services = &discord.Services{
		Characters: characterService,
		Raids:      raidService,
		RoleSync:   syncService,
		Armory:     backends.Armory,
		Guilds:     repos.Guilds,
		Cooldowns:  backends.Cooldowns,
		DB:         dbPool,
		Defaults:   cfg.GuildDefaults,
	}

	// Background jobs
	pool := worker.NewPool(cfg.WorkerCount, workerQueueSize)
	pool.Start()
	sched := scheduler.New(pool)

	// HTTP API
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, engine, items, characterService)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server failed", "error", err)
		}
	}()

	// Discord
	registerCommands(bot, getCommandFactories())
	discord.RegisterInteractions(bot.Registry)
	if err := bot.Start(); err != nil {
		bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{
			Server: srv, Scheduler: sched, Workers: pool, Backends: backends, DB: dbPool,
		})
		return err
	}
	if cfg.DiscordForceCommandUpdate {
		slog.Info("Force command update enabled via environment variable")
	}
	if err := bot.RegisterCommands(bot.Registry, cfg.DiscordForceCommandUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	// Role sync starts once the gateway is open so members can be listed.
	sched.ScheduleNow(cfg.RoleSyncInterval, worker.FuncJob{
		Name:    rolesync.JobRoleSync,
		Timeout: bootstrap.JobTimeout,
		Fn:      syncService.SyncAll,
	})
	sched.Schedule(cfg.ReminderInterval, worker.FuncJob{
		Name:    raid.JobReminders,
		Timeout: bootstrap.JobTimeout,
		Fn: func(ctx context.Context) error {
			_, err := raidService.SendReminders(ctx, cfg.ReminderLead)
			return err
		},
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:    srv,
		Scheduler: sched,
		Workers:   pool,
		Bot:       bot,
		Backends:  backends,
		DB:        dbPool,
	})
	return nil
}

func recordMiss(ref domain.ItemRef, reason gearscore.MissReason) {
	slog.Debug("Equipped item not scored", "item", string(ref), "reason", reason)
	metrics.RecordCatalogMiss(string(reason))
}

// getCommandFactories returns a list of all available Discord command factories.
// This provides a single place to see and manage all registered commands.
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		// Core commands
		discord.PingCommand,

		// Character commands
		discord.RegisterCommand,
		discord.CharacterCommand,
		discord.GearScoreCommand,
		discord.GSCommand,

		// Raid commands
		discord.RaidCommand,
		discord.BenchCommand,

		// Guild commands
		discord.RosterCommand,
		discord.SyncCommand,

		// Admin commands
		discord.AdminCommand,
	}
}

// registerCommands registers all provided command factories with the bot's registry.
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
}
