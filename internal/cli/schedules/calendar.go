// Package schedules implements the calendar and schedule commands.
package schedules

import (
	"fmt"
	"time"

	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/printers"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

type CalendarCmd struct {
	Month string `short:"m" help:"Month to display (YYYY-MM). Defaults to the current month."`
	Date  string `short:"d" help:"Day whose planned events to show (DD.MM.YYYY). Defaults to today."`
}

func (c *CalendarCmd) Validate() error {
	if _, err := cli.ParseMonthFlag(c.Month); err != nil {
		return err
	}
	if c.Date != "" && !schedule.ValidDateInput(c.Date) {
		return fmt.Errorf("invalid date %q (expected DD.MM.YYYY)", c.Date)
	}
	return nil
}

func (c *CalendarCmd) Run(ctx *cli.Context) error {
	month, err := cli.ParseMonthFlag(c.Month)
	if err != nil {
		return err
	}

	selected := time.Now()
	if c.Date != "" {
		selected, err = schedule.ParseDateInput(c.Date)
		if err != nil {
			return err
		}
	}

	pp := &printers.PrettyPrint{}
	pp.Month(month, ctx.Schedule.DaysWithEntries(month))
	pp.NewLine()
	pp.Planned(selected, ctx.Schedule.PlannedLabels(selected))
	return nil
}
