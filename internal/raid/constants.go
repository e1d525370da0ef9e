package raid

import "time"

// Accepted raid start formats, tried in order
var dateLayouts = []string{
	"2006-01-02 15:04",
	time.RFC3339,
}

// Job name used in metrics and logs
const JobReminders = "raid_reminders"

// Log messages
const (
	LogMsgRaidCreated     = "Raid created"
	LogMsgRaidCancelled   = "Raid cancelled"
	LogMsgSignup          = "Raid signup"
	LogMsgSignupRemoved   = "Raid signup removed"
	LogMsgReminderSent    = "Raid reminder sent"
	LogMsgReminderFailed  = "Failed to send raid reminder"
	LogMsgReminderPending = "Raids due for reminder"
)

// Error messages
const (
	ErrMsgListReminders = "failed to list raids due for reminder: %w"
)
