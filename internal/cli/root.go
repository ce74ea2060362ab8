package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hamcare-app/hamcare/internal/config"
	"github.com/hamcare-app/hamcare/internal/constants"
	"github.com/hamcare-app/hamcare/internal/logger"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/notifier"
	"github.com/hamcare-app/hamcare/internal/schedule"
	"github.com/hamcare-app/hamcare/internal/storage"
)

// Context carries the wired application services into every command.
type Context struct {
	KV       storage.KV
	Schedule *schedule.Store
	Notifier *notifier.Notifier
	Config   config.Config
}

// Reopen rebuilds the storage backend from the resolved config and rewires
// the services that hold it. Used after init --force deletes the data dir.
func (c *Context) Reopen() error {
	kv, err := storage.Open(c.Config.Backend, c.Config.Path)
	if err != nil {
		return err
	}
	c.KV = kv
	c.Schedule = schedule.New(kv)
	return nil
}

// ParseEventSelection parses a comma-separated list of 1-based event numbers
// (as printed by `schedule events`) into 0-based label indices.
func ParseEventSelection(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	var indices []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		num, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid event number: %s", part)
		}
		if num < 1 || num > len(schedule.EventLabels) {
			return nil, fmt.Errorf("event number %d out of range (1-%d)", num, len(schedule.EventLabels))
		}
		indices = append(indices, num-1)
	}
	return indices, nil
}

// ParseMonthFlag parses a --month value (YYYY-MM); empty means the current
// month.
func ParseMonthFlag(s string) (time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return time.Now(), nil
	}
	t, err := time.ParseInLocation(constants.MonthFlagFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q (expected YYYY-MM)", s)
	}
	return t, nil
}

// ScheduleReminder asks the notifier for a reminder and degrades to a log
// line on failure; the entry it belongs to is already persisted.
func (c *Context) ScheduleReminder(entry models.ScheduleEntry) {
	if !entry.NotificationsOn {
		return
	}
	if err := c.Notifier.Schedule(entry.Date, entry.Events); err != nil {
		logger.Warn("Reminder not scheduled", "date", schedule.FormatDate(entry.Date), "error", err)
	}
}
