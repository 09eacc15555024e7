package tracker

import (
	"sort"

	"tracklit/internal/models"
)

// SortForDisplay orders trackables the way dashboard lists present them:
// scheduled date ascending with unscheduled items last, then priority
// descending with unprioritized items first among equal scheduled dates.
// Storage queries apply the same ordering in SQL; this helper re-establishes
// it after in-memory filtering.
func SortForDisplay(trackables []models.Trackable) {
	sort.SliceStable(trackables, func(i, j int) bool {
		a, b := trackables[i], trackables[j]

		switch {
		case a.ScheduledDate == nil && b.ScheduledDate != nil:
			return false
		case a.ScheduledDate != nil && b.ScheduledDate == nil:
			return true
		case a.ScheduledDate != nil && b.ScheduledDate != nil:
			if !a.ScheduledDate.Equal(*b.ScheduledDate) {
				return a.ScheduledDate.Before(*b.ScheduledDate)
			}
		}

		switch {
		case a.Priority == nil && b.Priority != nil:
			return true
		case a.Priority != nil && b.Priority == nil:
			return false
		case a.Priority != nil && b.Priority != nil:
			return *a.Priority > *b.Priority
		}
		return false
	})
}
