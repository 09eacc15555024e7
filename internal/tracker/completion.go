package tracker

import (
	"time"

	"tracklit/internal/models"
	"tracklit/internal/utils"
)

// IsCompletedToday decides whether a trackable counts as completed for the
// calendar day containing now, evaluated in loc. Daily habits reset across
// midnight of the viewer's calendar, one-time tasks depend only on their
// status, and progress counters are not decided here (callers treat them as
// not applicable).
//
// Both now and loc are explicit parameters so the answer is deterministic
// under test and independent of the host process timezone.
func IsCompletedToday(t models.Trackable, now time.Time, loc *time.Location) bool {
	switch t.Type {
	case models.TypeDailyHabit:
		if t.LastCompletedAt == nil {
			return false
		}
		return utils.SameCalendarDay(*t.LastCompletedAt, now, loc)
	case models.TypeOneTime:
		return t.Status == models.StatusCompleted
	case models.TypeProgress:
		return false
	}
	return false
}

// Annotate computes the derived is_completed_today field for every trackable
// in the slice. The CLI list path and the HTTP post-fetch path both funnel
// through here so the two call sites cannot drift.
func Annotate(trackables []models.Trackable, now time.Time, loc *time.Location) []models.Trackable {
	out := make([]models.Trackable, len(trackables))
	for i, t := range trackables {
		t.IsCompletedToday = IsCompletedToday(t, now, loc)
		out[i] = t
	}
	return out
}
