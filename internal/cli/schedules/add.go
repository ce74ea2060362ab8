package schedules

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

type AddCmd struct {
	Date        string `short:"d" help:"Event date (DD.MM.YYYY). Defaults to today."`
	Events      string `short:"e" help:"Comma-separated event numbers (see 'schedule events')."`
	Notify      bool   `short:"n" help:"Schedule a reminder for 09:00 on the event date."`
	Interactive bool   `short:"i" help:"Fill the schedule form interactively."`
}

func (c *AddCmd) Validate() error {
	if c.Interactive {
		return nil
	}
	if c.Date != "" && !schedule.ValidDateInput(c.Date) {
		return fmt.Errorf("invalid date %q (expected DD.MM.YYYY)", c.Date)
	}
	if strings.TrimSpace(c.Events) == "" {
		return fmt.Errorf("at least one event is required (use --events or --interactive)")
	}
	if _, err := cli.ParseEventSelection(c.Events); err != nil {
		return err
	}
	return nil
}

func (c *AddCmd) Run(ctx *cli.Context) error {
	dateText := c.Date
	if dateText == "" {
		dateText = schedule.FormatDate(time.Now())
	}

	var indices []int
	notify := c.Notify

	if c.Interactive {
		var err error
		dateText, indices, notify, err = runAddForm(ctx, dateText)
		if err != nil {
			return err
		}
	} else {
		var err error
		indices, err = cli.ParseEventSelection(c.Events)
		if err != nil {
			return err
		}
	}

	entry, err := ctx.Schedule.Add(dateText, indices, notify)
	if err != nil {
		return err
	}

	fmt.Printf("Scheduled %s on %s\n", strings.Join(entry.Events, ", "), schedule.FormatDate(entry.Date))
	ctx.ScheduleReminder(entry)
	return nil
}

// runAddForm walks the schedule form. The selection is prefilled from the
// latest existing entry for the chosen date, mirroring the calendar screen.
func runAddForm(ctx *cli.Context, dateText string) (string, []int, bool, error) {
	var indices []int
	var notify bool

	if date, err := schedule.ParseDateInput(dateText); err == nil {
		indices, notify = ctx.Schedule.Prefill(date)
	}

	options := make([]huh.Option[int], len(schedule.EventLabels))
	for i, label := range schedule.EventLabels {
		options[i] = huh.NewOption(label, i)
		for _, sel := range indices {
			if sel == i {
				options[i] = options[i].Selected(true)
			}
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Select Date").
				Placeholder("DD.MM.YYYY").
				Value(&dateText).
				Validate(func(s string) error {
					if !schedule.ValidDateInput(schedule.FormatDateInput(s)) {
						return fmt.Errorf("date must be DD.MM.YYYY")
					}
					return nil
				}),
			huh.NewMultiSelect[int]().
				Title("Select event").
				Options(options...).
				Value(&indices).
				Validate(func(sel []int) error {
					if len(sel) == 0 {
						return fmt.Errorf("select at least one event")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Notifications").
				Affirmative("On").
				Negative("Off").
				Value(&notify),
		),
	).WithTheme(huh.ThemeBase())

	if err := form.Run(); err != nil {
		return "", nil, false, err
	}
	return schedule.FormatDateInput(dateText), indices, notify, nil
}
