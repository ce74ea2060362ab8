package system

import (
	"fmt"
	"time"

	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/logger"
	"github.com/hamcare-app/hamcare/internal/notifier"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

// NotifyCmd re-submits today's reminders to the tray agent. The agent runs
// it on login so alerts scheduled before a reboot are not lost.
type NotifyCmd struct {
	DryRun bool `help:"Print the reminders that would be sent without sending them."`
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	today := time.Now()

	sent := 0
	for _, entry := range ctx.Schedule.EntriesOn(today) {
		if !entry.NotificationsOn {
			continue
		}
		if c.DryRun {
			fmt.Printf("Would notify: %s (%s)\n",
				notifier.ReminderBody(entry.Events), schedule.FormatDate(entry.Date))
			continue
		}
		if err := ctx.Notifier.Schedule(entry.Date, entry.Events); err != nil {
			logger.Warn("Reminder not scheduled", "id", entry.ID, "error", err)
			continue
		}
		sent++
	}

	if !c.DryRun {
		fmt.Printf("Scheduled %d reminder(s) for today\n", sent)
	}
	return nil
}
