package models

// Settings represents application-wide settings
type Settings struct {
	Timezone  string `json:"timezone"`   // IANA timezone name (e.g. "America/New_York", or "Local" for system timezone)
	WeekStart string `json:"week_start"` // first day of the week for dashboard views ("monday" or "sunday")
}
