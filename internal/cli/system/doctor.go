package system

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/hamcare-app/hamcare/internal/checklist"
	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/constants"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	storageReachable := false

	// Check 1: storage reachable
	if err := checkStorageReachable(ctx); err != nil {
		fmt.Printf("❌ Storage reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Storage reachable: OK\n")
		storageReachable = true
	}

	// Check 2: schedule blob decodes (only if storage is reachable)
	if storageReachable {
		if err := checkScheduleBlob(ctx); err != nil {
			fmt.Printf("❌ Schedule data: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schedule data: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schedule data: SKIPPED (storage not reachable)\n")
	}

	// Check 3: schedule dates valid (only if storage is reachable)
	if storageReachable {
		if err := checkScheduleDates(ctx); err != nil {
			fmt.Printf("❌ Schedule dates: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Schedule dates: OK\n")
		}
	} else {
		fmt.Printf("⊘ Schedule dates: SKIPPED (storage not reachable)\n")
	}

	// Check 4: checklist stamps parse (only if storage is reachable)
	if storageReachable {
		if err := checkChecklistStamps(ctx); err != nil {
			fmt.Printf("❌ Checklist stamps: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Checklist stamps: OK\n")
		}
	} else {
		fmt.Printf("⊘ Checklist stamps: SKIPPED (storage not reachable)\n")
	}

	// Check 5: tray agent reachable (warning only)
	if err := ctx.Notifier.AgentStatus(); err != nil {
		fmt.Printf("⚠ Tray agent: WARNING\n")
		fmt.Printf("   %v (reminders will be skipped)\n", err)
	} else {
		fmt.Printf("✓ Tray agent: OK\n")
	}

	// Check 6: clock/timezone sanity
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

// storageProbeKey is the scratch key used by the reachability check. It is
// written, read back and deleted on every run and must never collide with a
// key the data commands use.
const storageProbeKey = "doctor.probe"

func checkStorageReachable(ctx *cli.Context) error {
	// Has exercises the backend (a stat for diskv, a query for sqlite).
	_ = ctx.KV.Has(constants.ScheduleItemsKey)
	if err := ctx.KV.SetString(storageProbeKey, time.Now().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("failed to write probe key: %w", err)
	}
	if _, ok := ctx.KV.GetString(storageProbeKey); !ok {
		return fmt.Errorf("probe key written but not readable")
	}
	if err := ctx.KV.Delete(storageProbeKey); err != nil {
		return fmt.Errorf("failed to delete probe key: %w", err)
	}
	return nil
}

func checkScheduleBlob(ctx *cli.Context) error {
	data, ok := ctx.KV.GetData(constants.ScheduleItemsKey)
	if !ok {
		// Never saved yet.
		return nil
	}
	var entries []models.ScheduleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("schedule blob does not decode: %w", err)
	}

	seen := make(map[string]bool)
	for _, entry := range entries {
		if entry.ID == "" {
			return fmt.Errorf("schedule entry without an ID")
		}
		if seen[entry.ID] {
			return fmt.Errorf("duplicate schedule entry ID: %s", entry.ID)
		}
		seen[entry.ID] = true
	}
	return nil
}

func checkScheduleDates(ctx *cli.Context) error {
	for _, entry := range ctx.Schedule.Entries() {
		if entry.Date.IsZero() {
			return fmt.Errorf("schedule entry %s has a zero date", entry.ID)
		}
		if len(entry.Events) == 0 {
			return fmt.Errorf("schedule entry %s on %s has no events",
				entry.ID, schedule.FormatDate(entry.Date))
		}
	}
	return nil
}

func checkChecklistStamps(ctx *cli.Context) error {
	for _, p := range []checklist.Period{checklist.Daily, checklist.Weekly, checklist.Monthly} {
		key := p.KeyPrefix + ".savedDate"
		if !ctx.KV.Has(key) {
			continue
		}
		if _, ok := ctx.KV.GetTime(key); !ok {
			return fmt.Errorf("%s does not parse as a timestamp", key)
		}
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}
