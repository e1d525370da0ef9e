package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction = "failed to begin transaction"
	LogMsgFailedToRollback         = "Failed to rollback transaction"
)

// Error Messages - Guild Configs
const (
	ErrMsgFailedToGetGuildConfig    = "failed to get guild config: %w"
	ErrMsgFailedToUpsertGuildConfig = "failed to save guild config: %w"
	ErrMsgFailedToListGuildConfigs  = "failed to list guild configs: %w"
)

// Error Messages - Characters
const (
	ErrMsgFailedToCreateCharacter = "failed to create character: %w"
	ErrMsgFailedToGetCharacter    = "failed to get character: %w"
	ErrMsgFailedToListCharacters  = "failed to list characters: %w"
	ErrMsgFailedToUpdateGearScore = "failed to update gear score: %w"
	ErrMsgFailedToDeleteCharacter = "failed to delete character: %w"
)

// Error Messages - Raids
const (
	ErrMsgFailedToCreateRaid    = "failed to create raid: %w"
	ErrMsgFailedToGetRaid       = "failed to get raid: %w"
	ErrMsgFailedToUpdateRaid    = "failed to update raid: %w"
	ErrMsgFailedToListRaids     = "failed to list raids: %w"
	ErrMsgFailedToDeleteRaid    = "failed to delete raid: %w"
	ErrMsgFailedToSaveSignup    = "failed to save signup: %w"
	ErrMsgFailedToDeleteSignup  = "failed to delete signup: %w"
	ErrMsgFailedToListSignups   = "failed to list signups: %w"
	ErrMsgFailedToWriteRaidLogs = "failed to write raid logs: %w"
)
