package bootstrap

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/RaidBot_Go/internal/config"
	"github.com/osse101/RaidBot_Go/internal/cooldown"
	"github.com/osse101/RaidBot_Go/internal/domain"
)

func testConfig(redisAddr string) *config.Config {
	return &config.Config{
		ArmoryBaseURL:   "http://armory.invalid/api",
		ArmoryTimeout:   time.Second,
		RosterCacheTTL:  time.Minute,
		RosterCacheSize: 8,
		RedisAddr:       redisAddr,
		SyncCooldown:    time.Minute,
	}
}

func TestInitializeBackends_Memory(t *testing.T) {
	b := InitializeBackends(context.Background(), testConfig(""))
	defer b.Close()

	assert.Nil(t, b.Redis)
	require.NotNil(t, b.Armory)
	require.NotNil(t, b.Cooldowns)

	ctx := context.Background()
	require.NoError(t, b.Cooldowns.EnforceCooldown(ctx, "g1", cooldown.ActionGuildSync, func() error { return nil }))
	assert.ErrorIs(t, b.Cooldowns.EnforceCooldown(ctx, "g1", cooldown.ActionGuildSync, func() error { return nil }), domain.ErrOnCooldown)
}

func TestInitializeBackends_Redis(t *testing.T) {
	mr := miniredis.RunT(t)

	b := InitializeBackends(context.Background(), testConfig(mr.Addr()))
	defer b.Close()

	require.NotNil(t, b.Redis)
	ctx := context.Background()
	require.NoError(t, b.Cooldowns.EnforceCooldown(ctx, "g1", cooldown.ActionGuildSync, func() error { return nil }))
	assert.NotEmpty(t, mr.Keys(), "cooldown is stored in redis")
}

func TestInitializeBackends_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	b := InitializeBackends(context.Background(), testConfig(addr))
	defer b.Close()

	assert.Nil(t, b.Redis, "falls back to memory")
	assert.NotNil(t, b.Cooldowns)
}
