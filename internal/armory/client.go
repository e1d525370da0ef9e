// Package armory talks to the Warmane armory API for character and guild data.
package armory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/osse101/RaidBot_Go/internal/logger"
	"github.com/osse101/RaidBot_Go/internal/metrics"
)

// Client is the read-only armory surface the bot depends on.
type Client interface {
	CharacterSummary(ctx context.Context, name, realm string) (*CharacterSummary, error)
	// GuildMembers returns a cached roster unless force is set.
	GuildMembers(ctx context.Context, name, realm string, force bool) (*GuildRoster, error)
	GuildSummary(ctx context.Context, name, realm string) (*GuildRoster, error)
	InvalidateRoster(ctx context.Context, name, realm string) error
}

// HTTPClient implements Client over HTTP with retries and a roster cache.
type HTTPClient struct {
	baseURL    string
	http       *http.Client
	cache      RosterCache
	maxRetries int
	retryDelay time.Duration
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

// WithTimeout sets the per-attempt timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) { c.http.Timeout = d }
}

// WithRosterCache replaces the default in-process roster cache.
func WithRosterCache(cache RosterCache) Option {
	return func(c *HTTPClient) { c.cache = cache }
}

// WithRetry sets how many times 5xx responses are retried and the base backoff.
func WithRetry(maxRetries int, delay time.Duration) Option {
	return func(c *HTTPClient) {
		c.maxRetries = maxRetries
		c.retryDelay = delay
	}
}

// NewClient creates an armory client for baseURL (e.g. https://armory.warmane.com/api).
func NewClient(baseURL string, opts ...Option) *HTTPClient {
	c := &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		http:       &http.Client{Timeout: DefaultTimeout},
		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewLRUCache(DefaultCacheSize, DefaultCacheTTL)
	}
	return c
}

// CharacterSummary fetches a character and its equipped items.
func (c *HTTPClient) CharacterSummary(ctx context.Context, name, realm string) (*CharacterSummary, error) {
	var out CharacterSummary
	path := fmt.Sprintf(pathCharacterSummary, url.PathEscape(name), url.PathEscape(realm))
	if err := c.getJSON(ctx, endpointCharacter, path, &out); err != nil {
		return nil, err
	}
	if out.Name == "" {
		out.Name = name
	}
	if out.Realm == "" {
		out.Realm = realm
	}
	return &out, nil
}

// GuildMembers fetches a guild roster, serving from cache when possible.
func (c *HTTPClient) GuildMembers(ctx context.Context, name, realm string, force bool) (*GuildRoster, error) {
	log := logger.FromContext(ctx)
	key := rosterKey(name, realm)

	if !force {
		cached, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			log.Warn(LogMsgCacheError, "key", key, "error", err)
		}
		if ok {
			metrics.RosterCacheLookups.WithLabelValues("hit").Inc()
			return cached, nil
		}
		metrics.RosterCacheLookups.WithLabelValues("miss").Inc()
	}

	var out GuildRoster
	path := fmt.Sprintf(pathGuildMembers, url.PathEscape(name), url.PathEscape(realm))
	if err := c.getJSON(ctx, endpointGuildMembers, path, &out); err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, key, &out); err != nil {
		log.Warn(LogMsgCacheError, "key", key, "error", err)
	}
	return &out, nil
}

// GuildSummary fetches guild metadata and roster without caching.
func (c *HTTPClient) GuildSummary(ctx context.Context, name, realm string) (*GuildRoster, error) {
	var out GuildRoster
	path := fmt.Sprintf(pathGuildSummary, url.PathEscape(name), url.PathEscape(realm))
	if err := c.getJSON(ctx, endpointGuildSummary, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InvalidateRoster drops a cached roster so the next GuildMembers call refetches.
func (c *HTTPClient) InvalidateRoster(ctx context.Context, name, realm string) error {
	return c.cache.Delete(ctx, rosterKey(name, realm))
}

func (c *HTTPClient) getJSON(ctx context.Context, endpoint, path string, out any) error {
	body, err := c.doRequest(ctx, endpoint, path)
	if err != nil {
		return err
	}

	var apiErr struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error != "" {
		return &APIError{StatusCode: http.StatusOK, Message: apiErr.Error}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf(ErrMsgDecodeResponse, endpoint, err)
	}
	return nil
}

// doRequest performs a GET with retry logic. 5xx responses other than 503 are
// retried with exponential backoff and jitter.
func (c *HTTPClient) doRequest(ctx context.Context, endpoint, path string) ([]byte, error) {
	log := logger.FromContext(ctx)
	reqURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			jitter := time.Duration(time.Now().UnixNano()%100) * time.Millisecond
			delay := c.retryDelay*time.Duration(1<<uint(attempt-1)) + jitter
			log.Info(LogMsgRetrying, "attempt", attempt, "path", path, "delay", delay)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgCreateRequest, err)
		}
		req.Header.Set("Accept", "application/json")

		start := time.Now()
		resp, err := c.http.Do(req)
		if err != nil {
			metrics.RecordArmoryRequest(endpoint, 0, time.Since(start))
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = err
			log.Warn(LogMsgRequestFail, "error", err, "attempt", attempt)
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		metrics.RecordArmoryRequest(endpoint, resp.StatusCode, time.Since(start))

		switch {
		case resp.StatusCode == http.StatusServiceUnavailable:
			return nil, ErrMaintenance
		case resp.StatusCode >= http.StatusInternalServerError:
			lastErr = &APIError{StatusCode: resp.StatusCode}
			log.Warn(LogMsgServerError, "status", resp.StatusCode, "attempt", attempt)
			continue
		case resp.StatusCode >= http.StatusBadRequest:
			return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(body)}
		}

		if readErr != nil {
			lastErr = readErr
			continue
		}
		return body, nil
	}

	return nil, fmt.Errorf(ErrMsgMaxRetries, lastErr)
}

func errorMessage(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return strings.TrimSpace(string(body))
}

// IsMaintenance reports whether err means the armory is offline.
func IsMaintenance(err error) bool {
	return errors.Is(err, ErrMaintenance)
}
