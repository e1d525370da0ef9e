package handler

// Generic HTTP error messages for client responses.
// Internal error details are never written to the response body.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgRequestTooLarge       = "Request body too large"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgMissingPathParam      = "Missing %s path parameter"
	ErrMsgInvalidItemID         = "Item id must be a positive integer"
	ErrMsgInvalidRequestFormat  = "Invalid request format"
)

// Per-field validation messages
const (
	ErrMsgFieldRequired = "This field is required"
	ErrMsgFieldInvalid  = "Invalid value"
	ErrMsgFieldMax      = "Must be at most %s"
	ErrMsgFieldMin      = "Must be at least %s"
	ErrMsgFieldGreater  = "Must be greater than %s"
	ErrMsgUnknownClass  = "Unknown player class; expected one of: %s"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError   = "Something went wrong"
	ErrMsgUnknownError         = "Unknown error"
	ErrMsgItemNotFoundError    = "Item not found"
	ErrMsgCharacterNotFoundErr = "Character not found"
	ErrMsgGuildNotConfigured   = "Guild is not configured"
	ErrMsgOnCooldownError      = "Action is on cooldown. Try again later"
	ErrMsgArmoryUnavailable    = "The armory is under maintenance. Please try again later."
	ErrMsgArmoryNotFound       = "Character not found on the armory"
	ErrMsgInvalidInputError    = "Invalid input"
)

// Log messages
const (
	LogMsgReadinessFailed = "Readiness check failed"
	LogMsgEncodeFailed    = "Failed to encode JSON response"
	LogMsgWriteFailed     = "Failed to write response buffer"
	LogMsgServiceError    = "Service call failed"
	LogMsgGearScoreScored = "GearScore calculated"
)

// Metric label for GearScore calculations served over HTTP.
const sourceAPI = "api"
