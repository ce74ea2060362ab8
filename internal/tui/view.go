package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/hamcare-app/hamcare/internal/calendar"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/profile"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

var sparkline = []rune("▁▂▃▄▅▆▇█")

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateCalendar:
		content = docStyle.Render(m.viewCalendar())
	case StateDaily, StateWeekly, StateMonthly:
		content = docStyle.Render(m.viewChecklist())
	case StateProfile:
		content = docStyle.Render(m.viewProfile())
	case StateScheduleForm, StateNotesForm, StateProfileForm:
		content = m.form.View()
	}

	var status string
	if m.formError != "" {
		status = errStyle.Render(m.formError)
	} else if m.statusMsg != "" {
		status = faintStyle.Render(m.statusMsg)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Calendar", "Daily", "Weekly", "Monthly", "Profile"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewCalendar() string {
	var b strings.Builder

	title := calendar.MonthTitle(m.month)
	width := len("Mon Tue Wen Thu Fri Sat Sun")
	mid := (width - len(title)) / 2
	if mid < 0 {
		mid = 0
	}
	b.WriteString(strings.Repeat(" ", mid))
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(strings.Join(calendar.WeekdaySymbols, " ")))
	b.WriteString("\n")

	now := time.Now()
	sameMonth := now.Year() == m.month.Year() && now.Month() == m.month.Month()
	selDay := 0
	if m.selected.Month() == m.month.Month() && m.selected.Year() == m.month.Year() {
		selDay = m.selected.Day()
	}

	for _, row := range calendar.MonthGrid(m.month) {
		for col, day := range row {
			if col > 0 {
				b.WriteString(" ")
			}
			if day == 0 {
				b.WriteString("   ")
				continue
			}
			cell := fmt.Sprintf("%3d", day)
			switch {
			case day == selDay:
				b.WriteString(selectedStyle.Render(cell))
			case sameMonth && day == now.Day():
				b.WriteString(todayStyle.Render(cell))
			case m.marked[day]:
				b.WriteString(markedStyle.Render(cell))
			default:
				b.WriteString(cell)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(schedule.FormatDate(m.selected)))
	b.WriteString("\n")
	if len(m.planned) == 0 {
		b.WriteString(faintStyle.Render("No events planned for this day."))
	} else {
		for _, label := range m.planned {
			b.WriteString(fmt.Sprintf("  • %s\n", label))
		}
	}

	return b.String()
}

func (m Model) viewChecklist() string {
	pane := m.panes[m.state]
	period := pane.gate.Period()

	var b strings.Builder
	b.WriteString(titleStyle.Render(checklistTitle(period.Name)))
	b.WriteString("\n\n")

	for i, item := range period.Items {
		cursor := "  "
		if i == pane.cursor {
			cursor = cursorStyle.Render("> ")
		}
		line := fmt.Sprintf("[ ] %s", item.Label)
		if pane.draft.Checked[item.Key] {
			line = doneStyle.Render(fmt.Sprintf("[x] %s", item.Label))
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	if pane.draft.Notes != "" {
		b.WriteString(fmt.Sprintf("Notes: %s\n", pane.draft.Notes))
	}
	mood := "not set"
	if pane.draft.Mood != nil {
		mood = pane.draft.Mood.String()
	}
	b.WriteString(fmt.Sprintf("Mood: %s\n", mood))

	switch pane.draft.Status {
	case models.ChecklistFresh:
		b.WriteString(faintStyle.Render("(never saved)"))
	case models.ChecklistExpired:
		b.WriteString(faintStyle.Render("(previous save expired; showing a fresh list)"))
	case models.ChecklistValid:
		if pane.draft.SavedAt != nil {
			b.WriteString(faintStyle.Render(fmt.Sprintf("(saved %s)", pane.draft.SavedAt.Format("02.01.2006 15:04"))))
		}
	}
	if pane.dirty {
		b.WriteString("\n")
		b.WriteString(faintStyle.Render("unsaved changes"))
	}

	return b.String()
}

func checklistTitle(name string) string {
	switch name {
	case "daily":
		return "Daily To-do list"
	case "weekly":
		return "Weekly To-do list"
	case "monthly":
		return "Monthly To-do list"
	}
	return name
}

func (m Model) viewProfile() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Hamster Profile"))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
	}{
		{"Breed", m.pet.Breed},
		{"Name", m.pet.Name},
		{"Age", m.pet.Age},
		{"Gender", m.pet.Gender},
	}
	for _, f := range fields {
		value := f.value
		if value == "" {
			value = faintStyle.Render("not set")
		}
		b.WriteString(fmt.Sprintf("  %-8s %s\n", f.label, value))
	}

	sound := "on"
	if !m.sound {
		sound = "off"
	}
	b.WriteString(fmt.Sprintf("  %-8s %s\n", "Sound", sound))

	b.WriteString("\n")
	b.WriteString(headerStyle.Render("Mood trend"))
	b.WriteString("\n  ")
	for _, point := range profile.MoodTrend(m.kv) {
		idx := int(point * float64(len(sparkline)-1))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkline) {
			idx = len(sparkline) - 1
		}
		b.WriteRune(sparkline[idx])
	}
	b.WriteString("\n")

	return b.String()
}
