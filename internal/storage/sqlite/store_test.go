package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"tracklit/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store := New(dbPath)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func newTestTrackable(id, name string) models.Trackable {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return models.Trackable{
		ID:        id,
		Name:      name,
		Type:      models.TypeDailyHabit,
		Status:    models.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTrackableRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	priority := 5
	scheduled := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	in := newTestTrackable("t1", "Morning run")
	in.Notes = "5k minimum"
	in.Priority = &priority
	in.ScheduledDate = &scheduled

	if err := store.AddTrackable(in); err != nil {
		t.Fatalf("AddTrackable() failed: %v", err)
	}

	out, err := store.GetTrackable("t1")
	if err != nil {
		t.Fatalf("GetTrackable() failed: %v", err)
	}
	if out.Name != "Morning run" || out.Notes != "5k minimum" {
		t.Errorf("round trip lost fields: got name=%q notes=%q", out.Name, out.Notes)
	}
	if out.Priority == nil || *out.Priority != 5 {
		t.Errorf("priority not preserved: got %v", out.Priority)
	}
	if out.ScheduledDate == nil || !out.ScheduledDate.Equal(scheduled) {
		t.Errorf("scheduled date not preserved: got %v", out.ScheduledDate)
	}
	if out.LastCompletedAt != nil {
		t.Errorf("expected nil LastCompletedAt, got %v", out.LastCompletedAt)
	}
}

func TestTrackableUpdate(t *testing.T) {
	store := setupTestStore(t)

	in := newTestTrackable("t1", "Read")
	if err := store.AddTrackable(in); err != nil {
		t.Fatalf("AddTrackable() failed: %v", err)
	}

	completed := time.Date(2026, 3, 11, 8, 30, 0, 0, time.UTC)
	in.Name = "Read 30 minutes"
	in.LastCompletedAt = &completed
	in.UpdatedAt = completed
	if err := store.UpdateTrackable(in); err != nil {
		t.Fatalf("UpdateTrackable() failed: %v", err)
	}

	out, err := store.GetTrackable("t1")
	if err != nil {
		t.Fatalf("GetTrackable() failed: %v", err)
	}
	if out.Name != "Read 30 minutes" {
		t.Errorf("name not updated: got %q", out.Name)
	}
	if out.LastCompletedAt == nil || !out.LastCompletedAt.Equal(completed) {
		t.Errorf("LastCompletedAt not updated: got %v", out.LastCompletedAt)
	}
	if !out.UpdatedAt.Equal(completed) {
		t.Errorf("UpdatedAt should persist the caller's value: got %v, want %v", out.UpdatedAt, completed)
	}

	if err := store.UpdateTrackable(newTestTrackable("missing", "x")); err == nil {
		t.Error("UpdateTrackable() on missing ID should fail")
	}
}

func TestTrackableSoftDeleteAndRestore(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddTrackable(newTestTrackable("t1", "Stretch")); err != nil {
		t.Fatalf("AddTrackable() failed: %v", err)
	}

	if err := store.DeleteTrackable("t1"); err != nil {
		t.Fatalf("DeleteTrackable() failed: %v", err)
	}

	if _, err := store.GetTrackable("t1"); err == nil {
		t.Error("GetTrackable() should not return a soft-deleted trackable")
	}

	visible, err := store.GetAllTrackables("", false)
	if err != nil {
		t.Fatalf("GetAllTrackables() failed: %v", err)
	}
	if len(visible) != 0 {
		t.Errorf("expected 0 visible trackables, got %d", len(visible))
	}

	all, err := store.GetAllTrackables("", true)
	if err != nil {
		t.Fatalf("GetAllTrackables(includeDeleted) failed: %v", err)
	}
	if len(all) != 1 || all[0].DeletedAt == nil {
		t.Errorf("expected 1 soft-deleted trackable, got %+v", all)
	}

	if err := store.RestoreTrackable("t1"); err != nil {
		t.Fatalf("RestoreTrackable() failed: %v", err)
	}
	out, err := store.GetTrackable("t1")
	if err != nil {
		t.Fatalf("GetTrackable() after restore failed: %v", err)
	}
	if out.DeletedAt != nil {
		t.Errorf("restored trackable still has deleted_at: %v", out.DeletedAt)
	}

	// Restoring a live trackable is an error
	if err := store.RestoreTrackable("t1"); err == nil {
		t.Error("RestoreTrackable() on a live trackable should fail")
	}
}

func TestGetAllTrackablesOrdering(t *testing.T) {
	store := setupTestStore(t)

	early := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC)
	low, high := 2, 8

	a := newTestTrackable("a", "late scheduled")
	a.ScheduledDate = &late
	b := newTestTrackable("b", "early scheduled")
	b.ScheduledDate = &early
	c := newTestTrackable("c", "unscheduled low priority")
	c.Priority = &low
	d := newTestTrackable("d", "unscheduled high priority")
	d.Priority = &high
	e := newTestTrackable("e", "unscheduled no priority")

	for _, tr := range []models.Trackable{a, b, c, d, e} {
		if err := store.AddTrackable(tr); err != nil {
			t.Fatalf("AddTrackable(%s) failed: %v", tr.ID, err)
		}
	}

	got, err := store.GetAllTrackables("", false)
	if err != nil {
		t.Fatalf("GetAllTrackables() failed: %v", err)
	}

	want := []string{"b", "a", "e", "d", "c"}
	if len(got) != len(want) {
		t.Fatalf("expected %d trackables, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: want %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestGetAllTrackablesTypeFilter(t *testing.T) {
	store := setupTestStore(t)

	habit := newTestTrackable("h", "habit")
	oneTime := newTestTrackable("o", "one time")
	oneTime.Type = models.TypeOneTime

	if err := store.AddTrackable(habit); err != nil {
		t.Fatalf("AddTrackable() failed: %v", err)
	}
	if err := store.AddTrackable(oneTime); err != nil {
		t.Fatalf("AddTrackable() failed: %v", err)
	}

	got, err := store.GetAllTrackables(models.TypeOneTime, false)
	if err != nil {
		t.Fatalf("GetAllTrackables() failed: %v", err)
	}
	if len(got) != 1 || got[0].ID != "o" {
		t.Errorf("type filter returned %+v, want only 'o'", got)
	}
}

func TestMalformedTimestampDegradesToNil(t *testing.T) {
	store := setupTestStore(t)

	if err := store.AddTrackable(newTestTrackable("t1", "corrupt")); err != nil {
		t.Fatalf("AddTrackable() failed: %v", err)
	}

	// Corrupt the stored value directly; reads must not fail, the field
	// just drops out of date-based matching.
	if _, err := store.GetDB().Exec(
		`UPDATE trackables SET scheduled_date = 'not-a-timestamp' WHERE id = 't1'`); err != nil {
		t.Fatalf("failed to corrupt row: %v", err)
	}

	out, err := store.GetTrackable("t1")
	if err != nil {
		t.Fatalf("GetTrackable() failed on malformed timestamp: %v", err)
	}
	if out.ScheduledDate != nil {
		t.Errorf("malformed scheduled_date should degrade to nil, got %v", out.ScheduledDate)
	}
}

func TestSettingsDefaultsAndSave(t *testing.T) {
	store := setupTestStore(t)

	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() failed: %v", err)
	}
	if settings.Timezone != "Local" || settings.WeekStart != "monday" {
		t.Errorf("unexpected defaults: %+v", settings)
	}

	settings.Timezone = "Europe/Berlin"
	settings.WeekStart = "sunday"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() failed: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() after save failed: %v", err)
	}
	if got != settings {
		t.Errorf("settings not persisted: got %+v, want %+v", got, settings)
	}
}

func TestMoodEntryUpsertPerDay(t *testing.T) {
	store := setupTestStore(t)

	now := time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC)
	first := models.MoodEntry{
		ID: "m1", Day: "2026-03-10", Rating: 3, Note: "okay",
		CreatedAt: now, UpdatedAt: now,
	}
	if err := store.SaveMoodEntry(first); err != nil {
		t.Fatalf("SaveMoodEntry() failed: %v", err)
	}

	second := first
	second.ID = "m2"
	second.Rating = 5
	second.Note = "great actually"
	second.UpdatedAt = now.Add(time.Hour)
	if err := store.SaveMoodEntry(second); err != nil {
		t.Fatalf("SaveMoodEntry() upsert failed: %v", err)
	}

	got, err := store.GetMoodEntry("2026-03-10")
	if err != nil {
		t.Fatalf("GetMoodEntry() failed: %v", err)
	}
	if got.Rating != 5 || got.Note != "great actually" {
		t.Errorf("upsert did not replace: got %+v", got)
	}
	// Original row is updated in place, not duplicated
	if got.ID != "m1" {
		t.Errorf("upsert should keep original ID, got %s", got.ID)
	}

	entries, err := store.GetMoodEntries("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("GetMoodEntries() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected 1 mood entry for the day, got %d", len(entries))
	}
}

func TestMetricEntriesRange(t *testing.T) {
	store := setupTestStore(t)

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	days := []string{"2026-03-09", "2026-03-10", "2026-03-11"}
	for i, day := range days {
		e := models.MetricEntry{
			ID:        "w" + day,
			Kind:      models.MetricWeight,
			Value:     80.5 - float64(i),
			Unit:      "kg",
			Day:       day,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := store.AddMetricEntry(e); err != nil {
			t.Fatalf("AddMetricEntry(%s) failed: %v", day, err)
		}
	}

	got, err := store.GetMetricEntries("2026-03-10", "2026-03-11")
	if err != nil {
		t.Fatalf("GetMetricEntries() failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries in range, got %d", len(got))
	}
	if got[0].Day != "2026-03-10" || got[1].Day != "2026-03-11" {
		t.Errorf("entries not ordered by day: %+v", got)
	}
}

func TestTransactionSummary(t *testing.T) {
	store := setupTestStore(t)

	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		{ID: "x1", Day: "2026-03-10", Amount: -1250, Currency: "EUR", Category: "groceries", CreatedAt: now, UpdatedAt: now},
		{ID: "x2", Day: "2026-03-11", Amount: -800, Currency: "EUR", Category: "groceries", CreatedAt: now, UpdatedAt: now},
		{ID: "x3", Day: "2026-03-11", Amount: 250000, Currency: "EUR", Category: "salary", CreatedAt: now, UpdatedAt: now},
		{ID: "x4", Day: "2026-04-01", Amount: -999, Currency: "EUR", Category: "groceries", CreatedAt: now, UpdatedAt: now},
	}
	for _, tx := range txs {
		if err := store.AddTransaction(tx); err != nil {
			t.Fatalf("AddTransaction(%s) failed: %v", tx.ID, err)
		}
	}

	summaries, err := store.SummarizeTransactions("2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("SummarizeTransactions() failed: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(summaries))
	}
	// Ordered by category name
	if summaries[0].Category != "groceries" || summaries[0].Count != 2 || summaries[0].Total != -2050 {
		t.Errorf("groceries summary wrong: %+v", summaries[0])
	}
	if summaries[1].Category != "salary" || summaries[1].Count != 1 || summaries[1].Total != 250000 {
		t.Errorf("salary summary wrong: %+v", summaries[1])
	}
}

func TestLoadRequiresInit(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "missing.db")
	store := New(dbPath)
	if err := store.Load(); err == nil {
		t.Error("Load() on missing database should fail")
	}
}

func TestMigrateAppliesPending(t *testing.T) {
	store := setupTestStore(t)

	// Roll the recorded version back so the initial migration is pending
	// again. Its statements are idempotent, so reapplying is safe.
	db := store.GetDB()
	if _, err := db.Exec("DELETE FROM schema_version"); err != nil {
		t.Fatalf("failed to reset schema version: %v", err)
	}
	if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (0)"); err != nil {
		t.Fatalf("failed to reset schema version: %v", err)
	}

	count, err := store.Migrate(nil)
	if err != nil {
		t.Fatalf("Migrate() failed: %v", err)
	}
	if count == 0 {
		t.Fatal("Migrate() applied nothing with an older recorded version")
	}

	var version int
	if err := db.QueryRow("SELECT version FROM schema_version").Scan(&version); err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version == 0 {
		t.Errorf("schema version not advanced: got %d", version)
	}

	count, err = store.Migrate(nil)
	if err != nil {
		t.Fatalf("Migrate() on current schema failed: %v", err)
	}
	if count != 0 {
		t.Errorf("Migrate() on current schema applied %d migrations, want 0", count)
	}
}
