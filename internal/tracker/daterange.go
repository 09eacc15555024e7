package tracker

import (
	"time"

	"tracklit/internal/models"
	"tracklit/internal/utils"
)

// NormalizeRange expands a requested [start, end] window to full calendar
// days in loc: start is floored to midnight and end is ceiled to the last
// instant of its day. A same-day start/end therefore covers the whole
// calendar day.
func NormalizeRange(start, end time.Time, loc *time.Location) (time.Time, time.Time) {
	return utils.StartOfDay(start, loc), utils.EndOfDay(end, loc)
}

// InRange reports whether a trackable belongs in a normalized [start, end]
// window. An item matches when its scheduled date falls inside the window,
// when its start date falls inside the window, or when it is recurring.
// Recurring items match every window unconditionally; the stored rule is
// never expanded into occurrences here, the consumer projects it into the
// window itself.
//
// Nil date fields simply fail their clause. The function never errors.
func InRange(t models.Trackable, start, end time.Time) bool {
	if t.Recurring {
		return true
	}
	if within(t.ScheduledDate, start, end) {
		return true
	}
	return within(t.StartDate, start, end)
}

// FilterRange applies InRange over a fetched result set, preserving input
// order.
func FilterRange(trackables []models.Trackable, start, end time.Time) []models.Trackable {
	out := make([]models.Trackable, 0, len(trackables))
	for _, t := range trackables {
		if InRange(t, start, end) {
			out = append(out, t)
		}
	}
	return out
}

func within(ts *time.Time, start, end time.Time) bool {
	if ts == nil {
		return false
	}
	return !ts.Before(start) && !ts.After(end)
}
