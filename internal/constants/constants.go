package constants

const (
	AppName            = "tracklit"
	DefaultKeyringUser = "database-connection"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Default storage location, expanded relative to the user home directory
	DefaultConfigPath = "~/.config/tracklit/tracklit.db"
)

const (
	// Setting keys
	SettingTimezone  = "timezone"
	SettingWeekStart = "week_start"

	// Default setting values
	DefaultTimezone  = "Local" // Use system local timezone by default
	DefaultWeekStart = "monday"
)
