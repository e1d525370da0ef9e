package cooldown

import (
	"context"
	"sync"
	"time"
)

// memoryBackend keeps cooldowns in process
type memoryBackend struct {
	mu      sync.Mutex
	config  Config
	expires map[string]time.Time
	now     func() time.Time
}

// NewMemoryService creates a cooldown service for a single bot instance
func NewMemoryService(config Config) Service {
	return &memoryBackend{
		config:  config,
		expires: make(map[string]time.Time),
		now:     time.Now,
	}
}

func memoryKey(key, action string) string {
	return action + ":" + key
}

func (m *memoryBackend) remaining(k string) time.Duration {
	until, ok := m.expires[k]
	if !ok {
		return 0
	}
	left := until.Sub(m.now())
	if left <= 0 {
		delete(m.expires, k)
		return 0
	}
	return left
}

func (m *memoryBackend) CheckCooldown(_ context.Context, key, action string) (bool, time.Duration, error) {
	if m.config.DevMode {
		return false, 0, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	left := m.remaining(memoryKey(key, action))
	return left > 0, left, nil
}

func (m *memoryBackend) EnforceCooldown(_ context.Context, key, action string, fn func() error) error {
	if m.config.DevMode {
		return fn()
	}

	k := memoryKey(key, action)
	m.mu.Lock()
	if left := m.remaining(k); left > 0 {
		m.mu.Unlock()
		return ErrOnCooldown{Action: action, Remaining: left}
	}
	m.expires[k] = m.now().Add(m.config.GetCooldownDuration(action))
	m.mu.Unlock()

	if err := fn(); err != nil {
		m.mu.Lock()
		delete(m.expires, k)
		m.mu.Unlock()
		return err
	}
	return nil
}

func (m *memoryBackend) ResetCooldown(_ context.Context, key, action string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.expires, memoryKey(key, action))
	return nil
}
