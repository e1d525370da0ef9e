package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisBackend shares cooldowns between bot instances using SET NX with a TTL
type redisBackend struct {
	client redis.UniversalClient
	config Config
}

// NewRedisService creates a cooldown service backed by Redis
func NewRedisService(client redis.UniversalClient, config Config) Service {
	return &redisBackend{client: client, config: config}
}

func redisKey(key, action string) string {
	return redisKeyPrefix + action + ":" + key
}

func (r *redisBackend) CheckCooldown(ctx context.Context, key, action string) (bool, time.Duration, error) {
	if r.config.DevMode {
		return false, 0, nil
	}
	ttl, err := r.client.PTTL(ctx, redisKey(key, action)).Result()
	if err != nil {
		return false, 0, fmt.Errorf("failed to read cooldown: %w", err)
	}
	// PTTL is negative for missing keys
	if ttl <= 0 {
		return false, 0, nil
	}
	return true, ttl, nil
}

func (r *redisBackend) EnforceCooldown(ctx context.Context, key, action string, fn func() error) error {
	if r.config.DevMode {
		return fn()
	}

	k := redisKey(key, action)
	ok, err := r.client.SetNX(ctx, k, time.Now().Unix(), r.config.GetCooldownDuration(action)).Result()
	if err != nil {
		return fmt.Errorf("failed to set cooldown: %w", err)
	}
	if !ok {
		_, left, err := r.CheckCooldown(ctx, key, action)
		if err != nil {
			return err
		}
		return ErrOnCooldown{Action: action, Remaining: left}
	}

	if err := fn(); err != nil {
		r.client.Del(ctx, k)
		return err
	}
	return nil
}

func (r *redisBackend) ResetCooldown(ctx context.Context, key, action string) error {
	return r.client.Del(ctx, redisKey(key, action)).Err()
}
