package tracker

import (
	"testing"
	"time"

	"tracklit/internal/models"
)

func TestNormalizeRangeCoversFullDays(t *testing.T) {
	utc := time.UTC
	start, end := NormalizeRange(
		time.Date(2024, 6, 15, 14, 30, 0, 0, utc),
		time.Date(2024, 6, 15, 9, 0, 0, 0, utc),
		utc,
	)

	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("start not floored to midnight: %v", start)
	}
	if end.Hour() != 23 || end.Minute() != 59 {
		t.Errorf("end not ceiled to end of day: %v", end)
	}
	if !start.Before(end) {
		t.Errorf("same-day range collapsed: start=%v end=%v", start, end)
	}
}

func TestInRange(t *testing.T) {
	utc := time.UTC
	start, end := NormalizeRange(
		time.Date(2024, 6, 15, 0, 0, 0, 0, utc),
		time.Date(2024, 6, 15, 0, 0, 0, 0, utc),
		utc,
	)

	tests := []struct {
		name      string
		trackable models.Trackable
		want      bool
	}{
		{
			name:      "scheduled late on the end day is included",
			trackable: models.Trackable{ScheduledDate: tp(time.Date(2024, 6, 15, 23, 59, 0, 0, utc))},
			want:      true,
		},
		{
			name:      "scheduled one second past the window is excluded",
			trackable: models.Trackable{ScheduledDate: tp(time.Date(2024, 6, 16, 0, 0, 1, 0, utc))},
			want:      false,
		},
		{
			name:      "scheduled at window start is included",
			trackable: models.Trackable{ScheduledDate: tp(time.Date(2024, 6, 15, 0, 0, 0, 0, utc))},
			want:      true,
		},
		{
			name:      "start date inside window is included",
			trackable: models.Trackable{StartDate: tp(time.Date(2024, 6, 15, 12, 0, 0, 0, utc))},
			want:      true,
		},
		{
			name:      "no dates and not recurring is excluded",
			trackable: models.Trackable{},
			want:      false,
		},
		{
			name: "recurring matches regardless of its own dates",
			trackable: models.Trackable{
				Recurring:     true,
				ScheduledDate: tp(time.Date(1999, 1, 1, 0, 0, 0, 0, utc)),
				StartDate:     tp(time.Date(2031, 1, 1, 0, 0, 0, 0, utc)),
			},
			want: true,
		},
		{
			name:      "recurring with no dates at all matches",
			trackable: models.Trackable{Recurring: true},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InRange(tt.trackable, start, end); got != tt.want {
				t.Errorf("InRange() = %v, want %v", got, tt.want)
			}
			// Pure function: repeated evaluation with unchanged inputs agrees.
			if again := InRange(tt.trackable, start, end); again != tt.want {
				t.Errorf("InRange() second evaluation = %v, want %v", again, tt.want)
			}
		})
	}
}

func TestFilterRangePreservesOrder(t *testing.T) {
	utc := time.UTC
	start, end := NormalizeRange(
		time.Date(2024, 6, 1, 0, 0, 0, 0, utc),
		time.Date(2024, 6, 30, 0, 0, 0, 0, utc),
		utc,
	)

	items := []models.Trackable{
		{ID: "a", ScheduledDate: tp(time.Date(2024, 6, 3, 9, 0, 0, 0, utc))},
		{ID: "b", ScheduledDate: tp(time.Date(2024, 7, 3, 9, 0, 0, 0, utc))},
		{ID: "c", Recurring: true},
		{ID: "d", StartDate: tp(time.Date(2024, 6, 20, 9, 0, 0, 0, utc))},
	}

	got := FilterRange(items, start, end)
	wantIDs := []string{"a", "c", "d"}
	if len(got) != len(wantIDs) {
		t.Fatalf("FilterRange() returned %d items, want %d", len(got), len(wantIDs))
	}
	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Errorf("FilterRange()[%d].ID = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestSortForDisplay(t *testing.T) {
	utc := time.UTC
	p := func(n int) *int { return &n }

	items := []models.Trackable{
		{ID: "unscheduled-high", Priority: p(5)},
		{ID: "late", ScheduledDate: tp(time.Date(2024, 6, 20, 0, 0, 0, 0, utc))},
		{ID: "early-low", ScheduledDate: tp(time.Date(2024, 6, 10, 0, 0, 0, 0, utc)), Priority: p(1)},
		{ID: "early-none", ScheduledDate: tp(time.Date(2024, 6, 10, 0, 0, 0, 0, utc))},
		{ID: "early-high", ScheduledDate: tp(time.Date(2024, 6, 10, 0, 0, 0, 0, utc)), Priority: p(9)},
	}

	SortForDisplay(items)

	wantIDs := []string{"early-none", "early-high", "early-low", "late", "unscheduled-high"}
	for i, id := range wantIDs {
		if items[i].ID != id {
			t.Errorf("position %d = %s, want %s", i, items[i].ID, id)
		}
	}
}
