package models

import "time"

type MetricKind string

const (
	MetricWeight     MetricKind = "weight"
	MetricSleepHours MetricKind = "sleep_hours"
	MetricSteps      MetricKind = "steps"
	MetricWaterML    MetricKind = "water_ml"
	MetricCustom     MetricKind = "custom"
)

// MetricEntry represents a single health metric sample for a day
type MetricEntry struct {
	ID        string     `json:"id"`
	Kind      MetricKind `json:"kind"`
	Name      string     `json:"name,omitempty"` // required when Kind is custom
	Value     float64    `json:"value"`
	Unit      string     `json:"unit,omitempty"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// MoodEntry represents a single day's mental-health log. At most one entry
// exists per day; writes upsert on Day.
type MoodEntry struct {
	ID        string     `json:"id"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Rating    int        `json:"rating"` // 1-5
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// Transaction represents a finance log entry. Amounts are stored in minor
// currency units (cents) to avoid float drift.
type Transaction struct {
	ID        string     `json:"id"`
	Day       string     `json:"day"` // YYYY-MM-DD format
	Amount    int64      `json:"amount"`
	Currency  string     `json:"currency"`
	Category  string     `json:"category,omitempty"`
	Payee     string     `json:"payee,omitempty"`
	Note      string     `json:"note,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// CategorySummary aggregates transaction amounts for one category over a
// queried window.
type CategorySummary struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Total    int64  `json:"total"`
}
