package armory

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrMaintenance is returned for HTTP 503; callers should not retry.
	ErrMaintenance = errors.New(ErrMsgMaintenance)

	// ErrNotFound matches 404s and "does not exist" error bodies.
	ErrNotFound = errors.New(ErrMsgNotFound)
)

// APIError is a non-success armory response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("armory error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("armory error: status %d", e.StatusCode)
}

// Is lets errors.Is(err, ErrNotFound) match missing characters and guilds.
func (e *APIError) Is(target error) bool {
	if target != ErrNotFound {
		return false
	}
	if e.StatusCode == http.StatusNotFound {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "does not exist") || strings.Contains(msg, "not found")
}
