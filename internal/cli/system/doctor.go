package system

import (
	"fmt"
	"io/fs"
	"time"

	"tracklit/internal/cli"
	"tracklit/internal/keyring"
	"tracklit/internal/migration"
	"tracklit/internal/models"
	"tracklit/internal/storage/sqlite"
	"tracklit/internal/utils"
	"tracklit/migrations"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := checkDBReachable(ctx); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid (only if DB is reachable)
	if dbReachable {
		if err := checkSchemaVersion(ctx); err != nil {
			fmt.Printf("❌ Schema version: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schema version: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Settings valid (only if DB is reachable)
	if dbReachable {
		if err := checkSettings(ctx); err != nil {
			fmt.Printf("❌ Settings: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Settings: OK\n")
		}
	} else {
		fmt.Printf("⊘ Settings: SKIPPED (database not reachable)\n")
	}

	// Check 4: Trackable integrity (only if DB is reachable)
	if dbReachable {
		if err := checkTrackableIntegrity(ctx); err != nil {
			fmt.Printf("❌ Trackable integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Trackable integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Trackable integrity: SKIPPED (database not reachable)\n")
	}

	// Check 5: Timestamp integrity (only if DB is reachable)
	if dbReachable {
		if err := checkTimestampIntegrity(ctx); err != nil {
			fmt.Printf("❌ Timestamp integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timestamp integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timestamp integrity: SKIPPED (database not reachable)\n")
	}

	// Check 6: Clock/timezone sanity
	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	// Check 7: Keyring availability (warning only)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   OS keyring is not available; credentials must be passed via --config or environment\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkDBReachable(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	if err := ctx.Store.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func checkSchemaVersion(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		// Postgres validates schema version during Load
		return nil
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access migrations: %w", err)
	}

	runner := migration.NewRunner(db, subFS)

	currentVersion, err := runner.GetCurrentVersion()
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	latestVersion, err := runner.GetLatestVersion()
	if err != nil {
		return fmt.Errorf("failed to get latest schema version: %w", err)
	}

	if currentVersion > latestVersion {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", currentVersion, latestVersion)
	}
	if currentVersion < latestVersion {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d (run 'tracklit migrate')", currentVersion, latestVersion)
	}

	return nil
}

func checkSettings(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("invalid timezone setting: %q", settings.Timezone)
	}
	if settings.WeekStart != "monday" && settings.WeekStart != "sunday" {
		return fmt.Errorf("invalid week start setting: %q", settings.WeekStart)
	}

	return nil
}

func checkTrackableIntegrity(ctx *cli.Context) error {
	trackables, err := ctx.Store.GetAllTrackables("", true)
	if err != nil {
		return fmt.Errorf("failed to get trackables: %w", err)
	}

	seen := make(map[string]bool)
	for _, t := range trackables {
		if seen[t.ID] {
			return fmt.Errorf("duplicate trackable ID found: %s", t.ID)
		}
		seen[t.ID] = true

		if !t.Type.Valid() {
			return fmt.Errorf("trackable %s has invalid type %q", t.ID, t.Type)
		}
		if t.Type == models.TypeProgress && t.TargetCount <= 0 {
			return fmt.Errorf("progress trackable %s has non-positive target count", t.ID)
		}
	}

	return nil
}

func checkTimestampIntegrity(ctx *cli.Context) error {
	sqliteStore, ok := ctx.Store.(*sqlite.Store)
	if !ok {
		return nil // Not SQLite, skip
	}

	db := sqliteStore.GetDB()
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}

	var corruptedCount int
	err := db.QueryRow(`
		SELECT COUNT(*)
		FROM trackables
		WHERE created_at = '' OR updated_at = ''
	`).Scan(&corruptedCount)
	if err != nil {
		return fmt.Errorf("failed to check trackable timestamps: %w", err)
	}
	if corruptedCount > 0 {
		return fmt.Errorf("found %d trackables with corrupted timestamps", corruptedCount)
	}

	err = db.QueryRow(`
		SELECT COUNT(*)
		FROM mood_entries
		WHERE day NOT GLOB '[0-9][0-9][0-9][0-9]-[0-9][0-9]-[0-9][0-9]'
	`).Scan(&corruptedCount)
	if err != nil {
		return fmt.Errorf("failed to check mood entry dates: %w", err)
	}
	if corruptedCount > 0 {
		return fmt.Errorf("found %d mood entries with invalid date format", corruptedCount)
	}

	return nil
}

func checkClockTimezone() error {
	// Check if system time is reasonable
	now := time.Now()

	// Check if time is in a reasonable range (after 2020 and before 2100)
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	return nil
}
