package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"github.com/osse101/RaidBot_Go/internal/armory"
	"github.com/osse101/RaidBot_Go/internal/config"
	"github.com/osse101/RaidBot_Go/internal/cooldown"
	"github.com/osse101/RaidBot_Go/internal/redis"
)

// Backends are the armory client and cooldown store, backed by Redis when
// REDIS_ADDR is set and reachable and by process memory otherwise.
type Backends struct {
	Armory    *armory.HTTPClient
	Cooldowns cooldown.Service
	// Redis is nil when the in-process fallbacks are in use.
	Redis redis.Client
}

// InitializeBackends picks the roster cache and cooldown implementations.
func InitializeBackends(ctx context.Context, cfg *config.Config) *Backends {
	cooldowns := cooldown.Config{
		Cooldowns: map[string]time.Duration{cooldown.ActionGuildSync: cfg.SyncCooldown},
	}
	b := &Backends{}

	var cache armory.RosterCache
	if client := connectRedis(ctx, cfg.RedisAddr); client != nil {
		b.Redis = client
		cache = armory.NewRedisCache(client, cfg.RosterCacheTTL)
		b.Cooldowns = cooldown.NewRedisService(client, cooldowns)
	} else {
		cache = armory.NewLRUCache(cfg.RosterCacheSize, cfg.RosterCacheTTL)
		b.Cooldowns = cooldown.NewMemoryService(cooldowns)
	}

	b.Armory = armory.NewClient(cfg.ArmoryBaseURL,
		armory.WithTimeout(cfg.ArmoryTimeout),
		armory.WithRosterCache(cache),
		armory.WithRetry(ArmoryMaxRetries, ArmoryRetryDelay),
	)
	return b
}

// Close releases the Redis connection, if any.
func (b *Backends) Close() {
	if b.Redis == nil {
		return
	}
	if err := b.Redis.Close(); err != nil {
		slog.Error(LogMsgRedisCloseFailed, "error", err)
	}
}

func connectRedis(ctx context.Context, addr string) redis.Client {
	if addr == "" {
		slog.Info(LogMsgMemoryBackends)
		return nil
	}
	client, err := redis.NewClient(addr, nil)
	if err != nil {
		slog.Warn(LogMsgRedisUnavailable, "addr", addr, "error", err)
		return nil
	}
	if err := redis.Ping(ctx, client, RedisPingTimeout); err != nil {
		slog.Warn(LogMsgRedisUnavailable, "addr", addr, "error", err)
		_ = client.Close()
		return nil
	}
	slog.Info(LogMsgRedisEnabled, "addr", addr)
	return client
}
