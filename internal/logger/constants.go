package logger

// Log Level String Values
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log Format String Values
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Log Attribute Keys
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyGuildID     = "guild_id"
)

// RedactedValue replaces secrets in log output.
const RedactedValue = "[REDACTED]"

// Attribute keys containing any of these are redacted.
var secretKeyParts = []string{"token", "password", "secret", "api_key"}
