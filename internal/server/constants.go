package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgUnauthorized    = "Unauthorized"
	ErrMsgTooManyRequests = "Too Many Requests"
)

// Security alerts
const (
	SecurityAlertFailedAuth = "SECURITY ALERT: Multiple failed authentication attempts"
	SecurityAlertHighRate   = "SECURITY ALERT: Blocking high request rate"
)

// Log messages
const (
	LogMsgServerStarting   = "HTTP server starting"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgAuthFailed       = "Authentication failed"
)

// HTTP header names
const (
	HeaderAPIKey             = "X-API-Key"
	HeaderAuthorization      = "Authorization"
	HeaderForwardedFor       = "X-Forwarded-For"
	HeaderContentTypeOptions = "X-Content-Type-Options"
	HeaderFrameOptions       = "X-Frame-Options"
	HeaderReferrerPolicy     = "Referrer-Policy"
)

// The API serves JSON only, so framing and referrers are denied outright.
const (
	HeaderValueNoSniff    = "nosniff"
	HeaderValueDeny       = "DENY"
	HeaderValueNoReferrer = "no-referrer"
)

// Per-client limits
const (
	rateLimitWindow          = 5 * time.Minute
	maxRequestsPerWindow     = 1000
	failedAuthAlertThreshold = 5
	highRateLogEvery         = 100
	maxTrackedClients        = 10000
)

const (
	maxRequestBodyBytes = 1 << 20
	readHeaderTimeout   = 5 * time.Second
	requestTimeout      = 30 * time.Second
)

// PublicPaths bypass API key authentication and request logging.
var PublicPaths = []string{
	"/healthz",
	"/readyz",
	"/version",
	"/metrics",
}

// RedactedValue replaces secret header values in logs.
const RedactedValue = "[REDACTED]"
