package cli

import (
	"fmt"
	"time"

	ps "github.com/mitchellh/go-ps"

	"github.com/julianstephens/salahtrack/internal/backup"
	"github.com/julianstephens/salahtrack/internal/calendar"
	"github.com/julianstephens/salahtrack/internal/storage"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storeReachable := false

	if err := checkStoreReachable(ctx); err != nil {
		fmt.Printf("❌ Store reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Store reachable: OK\n")
		storeReachable = true
	}

	if storeReachable {
		if err := checkRecordIntegrity(ctx); err != nil {
			fmt.Printf("❌ Record integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Record integrity: OK\n")
		}

		if err := checkHijriConsistency(ctx); err != nil {
			fmt.Printf("⚠ Hijri dates: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Hijri dates: OK\n")
		}
	} else {
		fmt.Printf("⊘ Record integrity: SKIPPED (store not reachable)\n")
		fmt.Printf("⊘ Hijri dates: SKIPPED (store not reachable)\n")
	}

	if err := checkBackupsPresent(ctx); err != nil {
		fmt.Printf("⚠ Backups present: WARNING\n")
		fmt.Printf("   %v\n", err)
	} else {
		fmt.Printf("✓ Backups present: OK\n")
	}

	checkReminderRunner(ctx)

	if err := checkClockTimezone(); err != nil {
		fmt.Printf("❌ Clock/timezone: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Clock/timezone: OK\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}
	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load store: %w", err)
	}
	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

// checkRecordIntegrity validates every stored record against the closed
// vocabularies and checks for duplicate ids.
func checkRecordIntegrity(ctx *Context) error {
	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to get records: %w", err)
	}

	ids := make(map[string]bool, len(records))
	for _, r := range records {
		if r.ID == "" {
			return fmt.Errorf("record %s/%s has no id", r.GregorianDate, r.PrayerName)
		}
		if ids[r.ID] {
			return fmt.Errorf("duplicate record id: %s", r.ID)
		}
		ids[r.ID] = true
		if _, err := calendar.ParseDate(r.GregorianDate); err != nil {
			return fmt.Errorf("record %s has invalid date: %w", r.ID, err)
		}
	}
	return nil
}

// checkHijriConsistency recomputes each record's Hijri date from its
// Gregorian one.
func checkHijriConsistency(ctx *Context) error {
	records, err := ctx.Store.GetAllRecords()
	if err != nil {
		return fmt.Errorf("failed to get records: %w", err)
	}

	mismatches := 0
	for _, r := range records {
		expected, err := calendar.GregorianToHijri(r.GregorianDate)
		if err != nil || r.HijriDate != expected {
			mismatches++
		}
	}
	if mismatches > 0 {
		return fmt.Errorf("%d records have stale hijri dates, re-log them to refresh", mismatches)
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.List()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}
	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'salahtrack backup create'")
	}
	return nil
}

// checkReminderRunner reports lockfile state. A lockfile whose pid is no
// longer alive means the runner died without cleaning up.
func checkReminderRunner(ctx *Context) {
	pid, ok := RunnerPID(ctx.Store.GetConfigPath())
	if !ok {
		fmt.Printf("⊘ Reminder runner: not running\n")
		return
	}
	proc, err := ps.FindProcess(pid)
	if err != nil || proc == nil {
		fmt.Printf("⚠ Reminder runner: WARNING\n")
		fmt.Printf("   stale lockfile, pid %d is not running\n", pid)
		return
	}
	fmt.Printf("✓ Reminder runner: OK (pid %d, %s)\n", pid, proc.Executable())
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	if _, offset := now.Zone(); offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
