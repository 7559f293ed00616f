package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./swinglab.db"

	// DefaultSyncSchedule pushes local state to the backend every 30 minutes
	DefaultSyncSchedule = "*/30 * * * *"
)
