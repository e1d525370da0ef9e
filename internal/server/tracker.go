package server

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// clientWindow counts one client's activity since its window opened.
type clientWindow struct {
	requests   atomic.Int64
	failedAuth atomic.Int64
}

// ClientTracker rate-limits requests per client IP over fixed windows and
// raises alerts on repeated authentication failures. A window opens on a
// client's first request and expires with its cache entry.
type ClientTracker struct {
	mu    sync.Mutex
	limit int64
	lru   *expirable.LRU[string, *clientWindow]
}

// NewClientTracker allows limit requests per client per window.
func NewClientTracker(limit int, window time.Duration) *ClientTracker {
	return &ClientTracker{
		limit: int64(limit),
		lru:   expirable.NewLRU[string, *clientWindow](maxTrackedClients, nil, window),
	}
}

func (t *ClientTracker) window(ip string) *clientWindow {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Peek keeps the expiry fixed at the window start.
	if w, ok := t.lru.Peek(ip); ok {
		return w
	}
	w := &clientWindow{}
	t.lru.Add(ip, w)
	return w
}

// Allow counts a request and reports whether ip is still under its limit.
func (t *ClientTracker) Allow(ip string) bool {
	n := t.window(ip).requests.Add(1)
	if n <= t.limit {
		return true
	}
	if n%highRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count", n)
	}
	return false
}

// RecordFailedAuth counts a rejected API key.
func (t *ClientTracker) RecordFailedAuth(ip string) {
	n := t.window(ip).failedAuth.Add(1)
	if n >= failedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// FailedAuth returns the failures recorded for ip in its current window.
func (t *ClientTracker) FailedAuth(ip string) int64 {
	if w, ok := t.lru.Peek(ip); ok {
		return w.failedAuth.Load()
	}
	return 0
}
