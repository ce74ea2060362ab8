// Package printers renders calendar, schedule and checklist output for the
// plain (non-TUI) commands.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/hamcare-app/hamcare/internal/calendar"
	"github.com/hamcare-app/hamcare/internal/models"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Month prints the Monday-first grid for the month containing on. Days in
// marked get a highlight, today is bold.
func (pp *PrettyPrint) Month(on time.Time, marked map[int]bool) {
	tf := color.New(color.FgWhite, color.Italic)
	hf := color.New(color.Faint)
	df := color.New()
	mf := color.New(color.FgHiMagenta)
	nf := color.New(color.Bold, color.Underline)

	title := calendar.MonthTitle(on)
	width := len("Mon Tue Wen Thu Fri Sat Sun")
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), title)
	_, _ = hf.Println(strings.Join(calendar.WeekdaySymbols, " "))

	now := time.Now()
	sameMonth := now.Year() == on.Year() && now.Month() == on.Month()

	for _, row := range calendar.MonthGrid(on) {
		for col, day := range row {
			if col > 0 {
				fmt.Print(" ")
			}
			if day == 0 {
				fmt.Print("   ")
				continue
			}
			cell := fmt.Sprintf("%3d", day)
			switch {
			case sameMonth && day == now.Day():
				_, _ = nf.Print(cell)
			case marked[day]:
				_, _ = mf.Print(cell)
			default:
				_, _ = df.Print(cell)
			}
		}
		fmt.Println("")
	}
}

// Planned prints the deduplicated event labels for a day as a bullet list.
func (pp *PrettyPrint) Planned(on time.Time, labels []string) {
	if len(labels) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Println("No events planned for this day.")
		return
	}

	t := color.New(color.Bold)
	_, _ = t.Println("Planned:")
	for _, label := range labels {
		fmt.Printf("  • %s\n", label)
	}
}

// Checklist prints a periodic checklist's current state.
func (pp *PrettyPrint) Checklist(title string, items []Row, notes string, mood *models.Mood, status models.ChecklistStatus) {
	pp.Title(title)

	done := color.New(color.FgGreen)
	todo := color.New(color.Faint)
	for _, row := range items {
		if row.Checked {
			_, _ = done.Printf("  [x] %s\n", row.Label)
		} else {
			_, _ = todo.Printf("  [ ] %s\n", row.Label)
		}
	}

	if notes != "" {
		fmt.Printf("Notes: %s\n", notes)
	}
	if mood != nil {
		fmt.Printf("Mood: %s\n", mood.String())
	}

	f := color.New(color.Faint, color.Italic)
	switch status {
	case models.ChecklistFresh:
		_, _ = f.Println("(never saved)")
	case models.ChecklistExpired:
		_, _ = f.Println("(previous save expired; showing a fresh list)")
	}
}

// Row pairs a display label with its checked state for printing.
type Row struct {
	Label   string
	Checked bool
}
