package care

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/hamcare-app/hamcare/internal/checklist"
	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/models"
)

type SaveCmd struct {
	Period      string `arg:"" enum:"daily,weekly,monthly" help:"Checklist period (daily|weekly|monthly)."`
	Check       string `short:"c" help:"Comma-separated item keys to mark done (see 'care show')."`
	Uncheck     string `short:"u" help:"Comma-separated item keys to mark not done."`
	Notes       string `help:"Free-text notes."`
	Mood        string `enum:"nice,good,bad," help:"Hamster condition (nice|good|bad). Unset keeps the stored mood."`
	Interactive bool   `short:"i" help:"Fill the checklist interactively."`
}

func (c *SaveCmd) Run(ctx *cli.Context) error {
	period, err := checklist.ByName(c.Period)
	if err != nil {
		return err
	}

	gate := checklist.NewGate(period, ctx.KV)
	state := gate.Load()

	checked := state.Checked
	notes := state.Notes
	mood := state.Mood

	if c.Interactive {
		checked, notes, mood, err = runChecklistForm(period, state)
		if err != nil {
			return err
		}
	} else {
		if err := applyKeys(period, checked, c.Check, true); err != nil {
			return err
		}
		if err := applyKeys(period, checked, c.Uncheck, false); err != nil {
			return err
		}
		if c.Notes != "" {
			notes = c.Notes
		}
		if c.Mood != "" {
			m, err := models.ParseMood(c.Mood)
			if err != nil {
				return err
			}
			mood = &m
		}
	}

	if err := gate.Save(checked, notes, mood); err != nil {
		return err
	}

	fmt.Printf("Saved %s checklist.\n", period.Name)
	return nil
}

func applyKeys(period checklist.Period, checked map[string]bool, keys string, value bool) error {
	if strings.TrimSpace(keys) == "" {
		return nil
	}
	for _, key := range strings.Split(keys, ",") {
		key = strings.TrimSpace(key)
		if _, ok := period.ItemByKey(key); !ok {
			return fmt.Errorf("unknown %s checklist item %q", period.Name, key)
		}
		checked[key] = value
	}
	return nil
}

func runChecklistForm(period checklist.Period, state models.ChecklistState) (map[string]bool, string, *models.Mood, error) {
	var selected []string
	options := make([]huh.Option[string], len(period.Items))
	for i, item := range period.Items {
		options[i] = huh.NewOption(item.Label, item.Key)
		if state.Checked[item.Key] {
			options[i] = options[i].Selected(true)
			selected = append(selected, item.Key)
		}
	}

	notes := state.Notes

	// "keep" leaves the stored mood untouched, matching the original form
	// where an unselected mood was simply not written.
	moodChoice := "keep"
	if state.Mood != nil {
		moodChoice = state.Mood.String()
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(title(period)).
				Options(options...).
				Value(&selected),
			huh.NewSelect[string]().
				Title("Mark the condition of the hamster").
				Options(
					huh.NewOption("Nice!", "nice"),
					huh.NewOption("Good!", "good"),
					huh.NewOption("Bad!", "bad"),
					huh.NewOption("(leave unchanged)", "keep"),
				).
				Value(&moodChoice),
			huh.NewText().
				Title("Notes").
				Value(&notes),
		),
	).WithTheme(huh.ThemeBase())

	if err := form.Run(); err != nil {
		return nil, "", nil, err
	}

	checked := make(map[string]bool, len(period.Items))
	for _, item := range period.Items {
		checked[item.Key] = false
	}
	for _, key := range selected {
		checked[key] = true
	}

	mood := state.Mood
	if moodChoice != "keep" {
		m, err := models.ParseMood(moodChoice)
		if err != nil {
			return nil, "", nil, err
		}
		mood = &m
	}

	return checked, notes, mood, nil
}
