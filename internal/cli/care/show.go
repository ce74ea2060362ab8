// Package care implements the daily/weekly/monthly checklist commands.
package care

import (
	"github.com/hamcare-app/hamcare/internal/checklist"
	"github.com/hamcare-app/hamcare/internal/cli"
	"github.com/hamcare-app/hamcare/internal/printers"
)

type ShowCmd struct {
	Period string `arg:"" enum:"daily,weekly,monthly" help:"Checklist period (daily|weekly|monthly)."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	period, err := checklist.ByName(c.Period)
	if err != nil {
		return err
	}

	gate := checklist.NewGate(period, ctx.KV)
	state := gate.Load()

	rows := make([]printers.Row, len(period.Items))
	for i, item := range period.Items {
		rows[i] = printers.Row{Label: item.Label, Checked: state.Checked[item.Key]}
	}

	pp := &printers.PrettyPrint{}
	pp.Checklist(title(period), rows, state.Notes, state.Mood, state.Status)
	return nil
}

func title(p checklist.Period) string {
	switch p.Name {
	case checklist.Daily.Name:
		return "Daily To-do list"
	case checklist.Weekly.Name:
		return "Weekly To-do list"
	default:
		return "Monthly To-do list"
	}
}
