package validation

import (
	"fmt"

	"tracklit/internal/models"
	"tracklit/internal/utils"
)

// Trackable validates user-supplied trackable fields before a write.
func Trackable(t models.Trackable) error {
	if t.Name == "" {
		return fmt.Errorf("name is required")
	}
	if !t.Type.Valid() {
		return fmt.Errorf("invalid type %q (expected daily_habit, one_time, or progress)", t.Type)
	}
	if t.Status != "" && t.Status != models.StatusActive && t.Status != models.StatusCompleted {
		return fmt.Errorf("invalid status %q (expected active or completed)", t.Status)
	}
	if t.Priority != nil && (*t.Priority < 1 || *t.Priority > 9) {
		return fmt.Errorf("priority must be between 1 and 9")
	}
	if t.TargetCount < 0 {
		return fmt.Errorf("target count cannot be negative")
	}
	if t.Type == models.TypeProgress && t.TargetCount == 0 {
		return fmt.Errorf("progress trackables require a target count")
	}
	return nil
}

// MetricEntry validates a health metric sample.
func MetricEntry(e models.MetricEntry) error {
	switch e.Kind {
	case models.MetricWeight, models.MetricSleepHours, models.MetricSteps, models.MetricWaterML:
	case models.MetricCustom:
		if e.Name == "" {
			return fmt.Errorf("custom metrics require a name")
		}
	default:
		return fmt.Errorf("invalid metric kind %q", e.Kind)
	}
	if !utils.ValidateDateFormat(e.Day) {
		return fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", e.Day)
	}
	return nil
}

// MoodEntry validates a mental-health log entry.
func MoodEntry(e models.MoodEntry) error {
	if e.Rating < 1 || e.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5")
	}
	if !utils.ValidateDateFormat(e.Day) {
		return fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", e.Day)
	}
	return nil
}

// Transaction validates a finance log entry.
func Transaction(t models.Transaction) error {
	if !utils.ValidateDateFormat(t.Day) {
		return fmt.Errorf("invalid day %q (expected YYYY-MM-DD)", t.Day)
	}
	if t.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if len(t.Currency) != 3 {
		return fmt.Errorf("currency must be a 3-letter code")
	}
	return nil
}

// Settings validates application settings before a save.
func Settings(s models.Settings) error {
	if !utils.ValidateTimezone(s.Timezone) {
		return fmt.Errorf("invalid timezone %q", s.Timezone)
	}
	if s.WeekStart != "" && s.WeekStart != "monday" && s.WeekStart != "sunday" {
		return fmt.Errorf("week start must be monday or sunday")
	}
	return nil
}
