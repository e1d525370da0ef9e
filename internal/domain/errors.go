package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound  = "character not found"
	ErrMsgCharacterExists    = "character already registered"
	ErrMsgNotCharacterOwner  = "character belongs to another user"
	ErrMsgNoCharacters       = "no registered characters"
	ErrMsgGearScoreRange     = "gear score must be between 3000 and 7000"
	ErrMsgGearScoreTooLow    = "gear score below raid minimum"
	ErrMsgGearScoreNotCached = "no stored gear score"

	// Raid errors
	ErrMsgRaidNotFound   = "raid not found"
	ErrMsgSignupNotFound = "signup not found"
	ErrMsgInvalidRole    = "invalid raid role"
	ErrMsgInvalidDate    = "invalid raid date"

	// Guild errors
	ErrMsgGuildNotConfigured = "guild is not configured"
	ErrMsgSyncInProgress     = "sync already in progress"

	// Cooldown errors
	ErrMsgOnCooldown = "action on cooldown"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Character errors
	ErrCharacterNotFound  = errors.New(ErrMsgCharacterNotFound)
	ErrCharacterExists    = errors.New(ErrMsgCharacterExists)
	ErrNotCharacterOwner  = errors.New(ErrMsgNotCharacterOwner)
	ErrNoCharacters       = errors.New(ErrMsgNoCharacters)
	ErrGearScoreRange     = errors.New(ErrMsgGearScoreRange)
	ErrGearScoreTooLow    = errors.New(ErrMsgGearScoreTooLow)
	ErrGearScoreNotCached = errors.New(ErrMsgGearScoreNotCached)

	// Raid errors
	ErrRaidNotFound   = errors.New(ErrMsgRaidNotFound)
	ErrSignupNotFound = errors.New(ErrMsgSignupNotFound)
	ErrInvalidRole    = errors.New(ErrMsgInvalidRole)
	ErrInvalidDate    = errors.New(ErrMsgInvalidDate)

	// Guild errors
	ErrGuildNotConfigured = errors.New(ErrMsgGuildNotConfigured)
	ErrSyncInProgress     = errors.New(ErrMsgSyncInProgress)

	// Cooldown errors
	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
