package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/RaidBot_Go/internal/database"
	"github.com/osse101/RaidBot_Go/internal/scheduler"
	"github.com/osse101/RaidBot_Go/internal/server"
	"github.com/osse101/RaidBot_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server    *server.Server
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	Bot       closer
	Backends  *Backends
	DB        database.Pool
}

type closer interface {
	Stop() error
}

// GracefulShutdown stops the application in order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (let in-flight syncs finish)
// 3. Discord session
// 4. Redis and the database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	if c.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	slog.Info(LogMsgStoppingJobs)
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}
	if c.Workers != nil {
		c.Workers.Stop()
	}

	if c.Bot != nil {
		slog.Info(LogMsgShuttingDownBot)
		if err := c.Bot.Stop(); err != nil {
			slog.Error(LogMsgBotCloseFailed, "error", err)
		}
	}

	if c.Backends != nil {
		c.Backends.Close()
	}
	if c.DB != nil {
		c.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
