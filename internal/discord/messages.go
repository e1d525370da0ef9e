package discord

// Friendly message constants for Discord responses
const (
	// Permissions & setup
	MsgMissingPermission  = "Missing permission."
	MsgGuildNotConfigured = "⚙️ **Guild Not Configured**\nThis server has no Warmane guild set up yet."
	MsgGuildOnly          = "This command can only be used in a server."

	// Characters
	MsgNoCharacters       = "You have no registered characters."
	MsgCharacterNotFound  = "❓ **Character Not Found**\nCheck the spelling and realm."
	MsgCharacterExists    = "That character is already registered."
	MsgNotCharacterOwner  = "That character belongs to someone else."
	MsgGearScoreRange     = "GearScore must be between 3000 and 7000."
	MsgGearScoreNotCached = "Failed to fetch character."
	MsgGearScoreTooLow    = "📉 **GearScore Too Low**\nYour character does not meet this raid's minimum."
	MsgChooseCharacter    = "Choose a character:"
	MsgConfirmDelete      = "Delete **%s**? This cannot be undone."
	MsgCharacterDeleted   = "Character **%s** deleted."
	MsgDeleteCancelled    = "Deletion cancelled."
	MsgRegistered         = "Character [%s](%s) on %s has been registered successfully! Your GearScore is %d."
	MsgGearScoreSet       = "GearScore for **%s** set to **%d**."
	MsgGearScoreLine      = "[%s](%s) has %d GS."

	// Raids
	MsgRaidNotFound    = "Raid not found."
	MsgRaidCreated     = "Raid created."
	MsgRaidCancelled   = "Raid cancelled."
	MsgNoRaids         = "No raids scheduled."
	MsgSignedUp        = "Signed up as %s!"
	MsgChooseRole      = "Choose your role:"
	MsgLeftRaid        = "You have left the raid."
	MsgNotSignedUp     = "You are not signed up for this raid."
	MsgSignupNotFound  = "Signup not found."
	MsgBenched         = "Benched."
	MsgUnbenched       = "Removed from bench."
	MsgInvalidDate     = "📅 **Invalid Date**\nUse the format YYYY-MM-DD HH:MM (UTC)."
	MsgInvalidRole     = "Unknown raid role."
	MsgInvalidSlots    = "Slots must look like tank/healer/dps, for example 2/6/17."
	MsgNoRaidChannel   = "Raid channel not found."
	MsgRaidReminderFmt = "Reminder: raid **%s** (%s) starts <t:%d:R>! %s"

	// Armory
	MsgArmoryMaintenance = "Warmane API is currently under maintenance. Please try again later."
	MsgArmoryUnavailable = "Could not reach the Warmane armory. Please try again later."

	// Sync
	MsgSyncStarted  = "Refreshing roster and syncing roles..."
	MsgSyncComplete = "Sync complete. %d granted, %d removed, %d online."
	MsgSyncCooldown = "Sync recently performed. Try again later."
	MsgSyncRunning  = "A sync is already running for this server."

	// Cooldowns
	MsgCooldownActive = "⏳ **Whoa there!**\nYou need to wait a bit before doing that again."

	// Admin
	MsgDatabaseOK    = "Database connection OK."
	MsgDatabaseError = "Database error: %s"

	MsgPong         = "Pong!"
	MsgGenericError = "❌ Something went wrong."
)

// Log messages
const (
	LogMsgUnhandledInteraction = "Unhandled interaction"
	LogMsgHandlerPanic         = "Interaction handler panicked"
	LogMsgCommandsUnchanged    = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdating     = "Updating application commands"
)
