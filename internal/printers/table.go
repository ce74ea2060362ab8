package printers

import (
	"fmt"
	"strings"

	"github.com/gosuri/uitable"

	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

// ScheduleTable renders schedule entries as a table, one row per entry.
func (pp *PrettyPrint) ScheduleTable(entries []models.ScheduleEntry) {
	if len(entries) == 0 {
		fmt.Println("No scheduled events.")
		return
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.Wrap = true

	if pp.ShowID {
		table.AddRow("ID", "DATE", "EVENTS", "NOTIFY")
	} else {
		table.AddRow("DATE", "EVENTS", "NOTIFY")
	}

	for _, e := range entries {
		notify := "off"
		if e.NotificationsOn {
			notify = "on"
		}
		if pp.ShowID {
			table.AddRow(e.ID, schedule.FormatDate(e.Date), strings.Join(e.Events, ", "), notify)
		} else {
			table.AddRow(schedule.FormatDate(e.Date), strings.Join(e.Events, ", "), notify)
		}
	}

	fmt.Println(table)
}

// Profile renders the pet profile as a two-column table.
func (pp *PrettyPrint) Profile(p models.Profile, trend []float64) {
	table := uitable.New()
	table.AddRow("Name:", p.Name)
	table.AddRow("Breed:", p.Breed)
	table.AddRow("Age:", p.Age)
	table.AddRow("Gender:", p.Gender)
	fmt.Println(table)

	if len(trend) > 0 {
		fmt.Printf("Condition: %s\n", sparkline(trend))
	}
}

// sparkline renders the mood trend the way the profile screen graphs it.
func sparkline(points []float64) string {
	levels := []rune("▁▂▃▄▅▆▇█")
	var b strings.Builder
	for _, p := range points {
		if p < 0 {
			p = 0
		}
		if p > 1 {
			p = 1
		}
		idx := int(p * float64(len(levels)-1))
		b.WriteRune(levels[idx])
	}
	return b.String()
}
