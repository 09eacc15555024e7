package migration

import (
	"database/sql"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestApplyMigrationsFreshDatabase(t *testing.T) {
	db := openTestDB(t)
	fs := fstest.MapFS{
		"001_init.sql":  {Data: []byte("CREATE TABLE users (id TEXT PRIMARY KEY);")},
		"002_posts.sql": {Data: []byte("CREATE TABLE posts (id TEXT PRIMARY KEY);")},
	}

	runner := NewRunner(db, fs)
	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("ApplyMigrations() error = %v", err)
	}
	if applied != 2 {
		t.Errorf("ApplyMigrations() applied = %d, want 2", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 2 {
		t.Errorf("GetCurrentVersion() = %d, want 2", version)
	}

	// Both tables exist
	for _, table := range []string{"users", "posts"} {
		var count int
		err := db.QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name = ?", table).Scan(&count)
		if err != nil || count != 1 {
			t.Errorf("table %s missing after migrations (count=%d, err=%v)", table, count, err)
		}
	}
}

func TestApplyMigrationsIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	fs := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE users (id TEXT PRIMARY KEY);")},
	}

	runner := NewRunner(db, fs)
	if _, err := runner.ApplyMigrations(nil); err != nil {
		t.Fatalf("first ApplyMigrations() error = %v", err)
	}

	applied, err := runner.ApplyMigrations(nil)
	if err != nil {
		t.Fatalf("second ApplyMigrations() error = %v", err)
	}
	if applied != 0 {
		t.Errorf("second ApplyMigrations() applied = %d, want 0", applied)
	}
}

func TestApplyMigrationsRejectsNewerDatabase(t *testing.T) {
	db := openTestDB(t)
	runner := NewRunner(db, fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE users (id TEXT PRIMARY KEY);")},
	})

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion() error = %v", err)
	}

	if _, err := runner.ApplyMigrations(nil); err == nil {
		t.Errorf("ApplyMigrations() expected error for database newer than migrations")
	}
	if err := runner.ValidateVersion(); err == nil {
		t.Errorf("ValidateVersion() expected error for database newer than migrations")
	}
}

func TestReadMigrationFilesRejectsBadNames(t *testing.T) {
	db := openTestDB(t)

	tests := []struct {
		name string
		fs   fstest.MapFS
	}{
		{
			name: "missing version prefix",
			fs:   fstest.MapFS{"init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "non-numeric version",
			fs:   fstest.MapFS{"abc_init.sql": {Data: []byte("SELECT 1;")}},
		},
		{
			name: "zero version",
			fs:   fstest.MapFS{"000_init.sql": {Data: []byte("SELECT 1;")}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunner(db, tt.fs)
			if _, err := runner.ReadMigrationFiles(); err == nil {
				t.Errorf("ReadMigrationFiles() expected error")
			}
		})
	}
}

func TestApplyMigrationsRollsBackOnFailure(t *testing.T) {
	db := openTestDB(t)
	fs := fstest.MapFS{
		"001_init.sql": {Data: []byte("CREATE TABLE users (id TEXT PRIMARY KEY);")},
		"002_bad.sql":  {Data: []byte("CREATE BOGUS SYNTAX;")},
	}

	runner := NewRunner(db, fs)
	applied, err := runner.ApplyMigrations(nil)
	if err == nil {
		t.Fatalf("ApplyMigrations() expected error from bad SQL")
	}
	if applied != 1 {
		t.Errorf("ApplyMigrations() applied = %d, want 1 (only the good migration)", applied)
	}

	version, err := runner.GetCurrentVersion()
	if err != nil {
		t.Fatalf("GetCurrentVersion() error = %v", err)
	}
	if version != 1 {
		t.Errorf("GetCurrentVersion() = %d, want 1 after failed second migration", version)
	}
}
