package schedules

import (
	"fmt"

	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/printers"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

type ListCmd struct {
	Date   string `short:"d" help:"Only entries on this date (DD.MM.YYYY)."`
	ShowID bool   `help:"Include entry IDs."`
}

func (c *ListCmd) Validate() error {
	if c.Date != "" && !schedule.ValidDateInput(c.Date) {
		return fmt.Errorf("invalid date %q (expected DD.MM.YYYY)", c.Date)
	}
	return nil
}

func (c *ListCmd) Run(ctx *cli.Context) error {
	pp := &printers.PrettyPrint{ShowID: c.ShowID}

	if c.Date == "" {
		pp.ScheduleTable(ctx.Schedule.Entries())
		return nil
	}

	date, err := schedule.ParseDateInput(c.Date)
	if err != nil {
		return err
	}
	pp.ScheduleTable(ctx.Schedule.EntriesOn(date))
	pp.Planned(date, ctx.Schedule.PlannedLabels(date))
	return nil
}

type UpcomingCmd struct {
	ShowID bool `help:"Include entry IDs."`
}

func (c *UpcomingCmd) Run(ctx *cli.Context) error {
	pp := &printers.PrettyPrint{ShowID: c.ShowID}
	pp.ScheduleTable(ctx.Schedule.Upcoming())
	return nil
}

// EventsCmd prints the fixed event set with the numbers --events expects.
type EventsCmd struct{}

func (c *EventsCmd) Run(ctx *cli.Context) error {
	for i, label := range schedule.EventLabels {
		fmt.Printf("%d. %s\n", i+1, label)
	}
	return nil
}
