package character

// Embed colors keyed on GearScore bands
const (
	ColorRed     = 0xff0000
	ColorYellow  = 0xffff00
	ColorGreen   = 0x00ff00
	ColorUnknown = 0x808080

	redBelow    = 5000
	yellowBelow = 6000
)

// Metric sources
const (
	sourceRegister = "register"
	sourceRefresh  = "refresh"
	sourceLookup   = "lookup"
)

// Log messages
const (
	LogMsgCharacterRegistered = "Character registered"
	LogMsgCharacterDeleted    = "Character deleted"
	LogMsgGearScoreUpdated    = "GearScore updated"
	LogMsgGearScoreSet        = "GearScore set manually"
	LogMsgArmoryFallback      = "Armory lookup failed, using stored GearScore"
	LogMsgEmptyEquipment      = "Armory returned no equipment"
	LogMsgUnregisteredLookup  = "Scored unregistered character"
)

// Error messages
const (
	ErrMsgArmoryLookup = "failed to fetch character from armory: %w"
	ErrMsgSaveScore    = "failed to save gear score: %w"
)
