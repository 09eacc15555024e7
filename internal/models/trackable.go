package models

import "time"

type TrackableType string

const (
	TypeDailyHabit TrackableType = "daily_habit"
	TypeOneTime    TrackableType = "one_time"
	TypeProgress   TrackableType = "progress"
)

// Valid reports whether t is one of the known trackable types.
func (t TrackableType) Valid() bool {
	switch t {
	case TypeDailyHabit, TypeOneTime, TypeProgress:
		return true
	}
	return false
}

type TrackableStatus string

const (
	StatusActive    TrackableStatus = "active"
	StatusCompleted TrackableStatus = "completed"
)

// Trackable is a user-owned item being tracked: a daily habit that resets
// each calendar day, a one-time task, or a progress counter.
type Trackable struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Type            TrackableType   `json:"type"`
	Status          TrackableStatus `json:"status"`
	Notes           string          `json:"notes,omitempty"`
	Priority        *int            `json:"priority,omitempty"`
	TargetCount     int             `json:"target_count,omitempty"`
	CurrentCount    int             `json:"current_count,omitempty"`
	Recurring       bool            `json:"recurring"`
	ScheduledDate   *time.Time      `json:"scheduled_date,omitempty"`
	StartDate       *time.Time      `json:"start_date,omitempty"`
	LastCompletedAt *time.Time      `json:"last_completed_at,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	DeletedAt       *time.Time      `json:"deleted_at,omitempty"`

	// IsCompletedToday is derived on every read and never persisted.
	IsCompletedToday bool `json:"is_completed_today"`
}

// MarkCompleted applies the completion mutation for the trackable's type:
// daily habits stamp LastCompletedAt (and reset across midnight via the
// read-side evaluator), one-time tasks flip to completed, and progress
// counters increment until they reach their target.
func (t *Trackable) MarkCompleted(now time.Time) {
	switch t.Type {
	case TypeDailyHabit:
		completed := now
		t.LastCompletedAt = &completed
	case TypeOneTime:
		t.Status = StatusCompleted
	case TypeProgress:
		t.CurrentCount++
		if t.TargetCount > 0 && t.CurrentCount >= t.TargetCount {
			t.Status = StatusCompleted
		}
	}
}
