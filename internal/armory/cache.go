package armory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/redis/go-redis/v9"
)

// RosterCache stores guild rosters between role-sync runs.
type RosterCache interface {
	Get(ctx context.Context, key string) (*GuildRoster, bool, error)
	Set(ctx context.Context, key string, roster *GuildRoster) error
	Delete(ctx context.Context, key string) error
}

// LRUCache is an in-process RosterCache with per-entry expiry.
type LRUCache struct {
	lru *expirable.LRU[string, *GuildRoster]
}

// NewLRUCache creates an in-process cache holding up to size rosters for ttl.
func NewLRUCache(size int, ttl time.Duration) *LRUCache {
	return &LRUCache{lru: expirable.NewLRU[string, *GuildRoster](size, nil, ttl)}
}

func (c *LRUCache) Get(_ context.Context, key string) (*GuildRoster, bool, error) {
	r, ok := c.lru.Get(key)
	return r, ok, nil
}

func (c *LRUCache) Set(_ context.Context, key string, roster *GuildRoster) error {
	c.lru.Add(key, roster)
	return nil
}

func (c *LRUCache) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// RedisCache shares rosters between bot instances.
type RedisCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewRedisCache stores rosters as JSON under prefixed keys for ttl.
func NewRedisCache(client redis.UniversalClient, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*GuildRoster, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var r GuildRoster
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, false, fmt.Errorf(ErrMsgUnmarshalRoster, err)
	}
	return &r, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, roster *GuildRoster) error {
	data, err := json.Marshal(roster)
	if err != nil {
		return fmt.Errorf(ErrMsgMarshalRoster, err)
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
