package storage

import "tracklit/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	Ping() error

	// Migrate applies pending schema migrations and returns how many ran.
	// logFn receives progress messages; nil discards them.
	Migrate(logFn func(string)) (int, error)

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Trackables
	AddTrackable(models.Trackable) error
	GetTrackable(id string) (models.Trackable, error)
	// GetAllTrackables lists trackables ordered for display. An empty
	// typeFilter matches every type.
	GetAllTrackables(typeFilter models.TrackableType, includeDeleted bool) ([]models.Trackable, error)
	UpdateTrackable(models.Trackable) error
	DeleteTrackable(id string) error
	RestoreTrackable(id string) error

	// Metric entries
	AddMetricEntry(models.MetricEntry) error
	GetMetricEntry(id string) (models.MetricEntry, error)
	GetMetricEntries(startDay, endDay string) ([]models.MetricEntry, error)
	UpdateMetricEntry(models.MetricEntry) error
	DeleteMetricEntry(id string) error

	// Mood entries (one per day, writes upsert)
	SaveMoodEntry(models.MoodEntry) error
	GetMoodEntry(day string) (models.MoodEntry, error)
	GetMoodEntries(startDay, endDay string) ([]models.MoodEntry, error)
	DeleteMoodEntry(day string) error

	// Transactions
	AddTransaction(models.Transaction) error
	GetTransaction(id string) (models.Transaction, error)
	GetTransactions(startDay, endDay string) ([]models.Transaction, error)
	UpdateTransaction(models.Transaction) error
	DeleteTransaction(id string) error
	SummarizeTransactions(startDay, endDay string) ([]models.CategorySummary, error)

	// Utils
	GetConfigPath() string
}
