package validation

import (
	"testing"

	"tracklit/internal/models"
)

func intPtr(n int) *int { return &n }

func TestTrackable(t *testing.T) {
	tests := []struct {
		name      string
		trackable models.Trackable
		wantErr   bool
	}{
		{
			name:      "valid daily habit",
			trackable: models.Trackable{Name: "Meditate", Type: models.TypeDailyHabit},
			wantErr:   false,
		},
		{
			name:      "valid one-time with priority",
			trackable: models.Trackable{Name: "Renew passport", Type: models.TypeOneTime, Priority: intPtr(5)},
			wantErr:   false,
		},
		{
			name:      "valid progress with target",
			trackable: models.Trackable{Name: "Read 12 books", Type: models.TypeProgress, TargetCount: 12},
			wantErr:   false,
		},
		{
			name:      "missing name",
			trackable: models.Trackable{Type: models.TypeDailyHabit},
			wantErr:   true,
		},
		{
			name:      "unknown type",
			trackable: models.Trackable{Name: "x", Type: "weekly_habit"},
			wantErr:   true,
		},
		{
			name:      "priority out of range",
			trackable: models.Trackable{Name: "x", Type: models.TypeOneTime, Priority: intPtr(10)},
			wantErr:   true,
		},
		{
			name:      "progress without target",
			trackable: models.Trackable{Name: "x", Type: models.TypeProgress},
			wantErr:   true,
		},
		{
			name:      "bad status",
			trackable: models.Trackable{Name: "x", Type: models.TypeOneTime, Status: "done"},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Trackable(tt.trackable)
			if (err != nil) != tt.wantErr {
				t.Errorf("Trackable() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMetricEntry(t *testing.T) {
	tests := []struct {
		name    string
		entry   models.MetricEntry
		wantErr bool
	}{
		{
			name:    "valid weight sample",
			entry:   models.MetricEntry{Kind: models.MetricWeight, Value: 72.5, Day: "2024-06-01"},
			wantErr: false,
		},
		{
			name:    "custom metric with name",
			entry:   models.MetricEntry{Kind: models.MetricCustom, Name: "resting_hr", Value: 58, Day: "2024-06-01"},
			wantErr: false,
		},
		{
			name:    "custom metric without name",
			entry:   models.MetricEntry{Kind: models.MetricCustom, Value: 58, Day: "2024-06-01"},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			entry:   models.MetricEntry{Kind: "blood_type", Value: 1, Day: "2024-06-01"},
			wantErr: true,
		},
		{
			name:    "malformed day",
			entry:   models.MetricEntry{Kind: models.MetricSteps, Value: 9000, Day: "June 1st"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := MetricEntry(tt.entry)
			if (err != nil) != tt.wantErr {
				t.Errorf("MetricEntry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestMoodEntry(t *testing.T) {
	if err := MoodEntry(models.MoodEntry{Day: "2024-06-01", Rating: 3}); err != nil {
		t.Errorf("MoodEntry() unexpected error: %v", err)
	}
	if err := MoodEntry(models.MoodEntry{Day: "2024-06-01", Rating: 0}); err == nil {
		t.Errorf("MoodEntry() expected error for rating 0")
	}
	if err := MoodEntry(models.MoodEntry{Day: "2024-06-01", Rating: 6}); err == nil {
		t.Errorf("MoodEntry() expected error for rating 6")
	}
	if err := MoodEntry(models.MoodEntry{Day: "someday", Rating: 3}); err == nil {
		t.Errorf("MoodEntry() expected error for malformed day")
	}
}

func TestTransaction(t *testing.T) {
	valid := models.Transaction{Day: "2024-06-01", Amount: -1250, Currency: "USD", Category: "groceries"}
	if err := Transaction(valid); err != nil {
		t.Errorf("Transaction() unexpected error: %v", err)
	}
	if err := Transaction(models.Transaction{Day: "2024-06-01", Amount: 100, Currency: ""}); err == nil {
		t.Errorf("Transaction() expected error for missing currency")
	}
	if err := Transaction(models.Transaction{Day: "2024-06-01", Amount: 100, Currency: "dollars"}); err == nil {
		t.Errorf("Transaction() expected error for non-ISO currency")
	}
}

func TestSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings models.Settings
		wantErr  bool
	}{
		{name: "local timezone", settings: models.Settings{Timezone: "Local", WeekStart: "monday"}, wantErr: false},
		{name: "IANA timezone", settings: models.Settings{Timezone: "Europe/Berlin", WeekStart: "sunday"}, wantErr: false},
		{name: "bad timezone", settings: models.Settings{Timezone: "Mars/Olympus", WeekStart: "monday"}, wantErr: true},
		{name: "bad week start", settings: models.Settings{Timezone: "UTC", WeekStart: "saturday"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Settings(tt.settings)
			if (err != nil) != tt.wantErr {
				t.Errorf("Settings() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
