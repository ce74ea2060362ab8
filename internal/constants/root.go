package constants

const (
	AppName          = "hamcare"
	Version          = "v0.2.0"
	DefaultConfigDir = "~/.config/hamcare"

	// Storage backends
	BackendDiskv  = "diskv"
	BackendSQLite = "sqlite"

	// Notify constants
	NotifierLockfileName   = "hamcare-agent.lock"
	AgentAppIdentifier     = "com.hamcare.agent"
	AgentExecutablePrefix  = "hamcare-agent"
	NotificationDurationMs = 5000

	// ReminderHour is the local hour at which scheduled event reminders fire.
	ReminderHour = 9

	// DefaultReminderBody is used when a reminder has no event labels.
	DefaultReminderBody = "You have a scheduled event today."
)
