package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hamcare-app/hamcare/internal/calendar"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/profile"
	"github.com/hamcare-app/hamcare/internal/schedule"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	switch m.state {
	case StateScheduleForm:
		return m.updateScheduleForm(msg)
	case StateNotesForm:
		return m.updateNotesForm(msg)
	case StateProfileForm:
		return m.updateProfileForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.statusMsg = ""
	m.formError = ""

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.state = m.nextTab(1)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.state = m.nextTab(-1)
		return m, nil
	}

	switch m.state {
	case StateCalendar:
		return m.updateCalendar(keyMsg)
	case StateDaily, StateWeekly, StateMonthly:
		return m.updateChecklist(keyMsg)
	case StateProfile:
		return m.updateProfile(keyMsg)
	}
	return m, nil
}

// nextTab cycles through the five main views. Checklist drafts are reloaded
// on entry so an expired window is never shown as still checked.
func (m *Model) nextTab(delta int) SessionState {
	tabs := 5
	next := SessionState((int(m.state) + delta + tabs) % tabs)
	if pane, ok := m.panes[next]; ok {
		pane.reload()
	}
	if next == StateProfile {
		m.pet = profile.Load(m.kv)
		m.sound = profile.SoundEnabled(m.kv)
	}
	if next == StateCalendar {
		m.refreshCalendar()
	}
	return next
}

func (m Model) updateCalendar(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveSelection(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveSelection(1)
	case key.Matches(msg, m.keys.Up):
		m.moveSelection(-7)
	case key.Matches(msg, m.keys.Down):
		m.moveSelection(7)
	case key.Matches(msg, m.keys.PrevMonth):
		m.month = calendar.ChangeMonth(m.month, -1)
		m.selected = calendar.DateFor(m.month, 1)
		m.refreshCalendar()
	case key.Matches(msg, m.keys.NextMonth):
		m.month = calendar.ChangeMonth(m.month, 1)
		m.selected = calendar.DateFor(m.month, 1)
		m.refreshCalendar()
	case key.Matches(msg, m.keys.Today):
		m.selected = calendar.StartOfDay(time.Now())
		m.month = m.selected
		m.refreshCalendar()
	case key.Matches(msg, m.keys.Schedule):
		m.openScheduleForm()
	}
	return m, nil
}

// moveSelection shifts the selected day; the displayed month follows the
// selection across month boundaries.
func (m *Model) moveSelection(days int) {
	m.selected = m.selected.AddDate(0, 0, days)
	if m.selected.Month() != m.month.Month() || m.selected.Year() != m.month.Year() {
		m.month = m.selected
	}
	m.refreshCalendar()
}

func (m Model) updateChecklist(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pane := m.panes[m.state]
	items := pane.gate.Period().Items

	switch {
	case key.Matches(msg, m.keys.Up):
		if pane.cursor > 0 {
			pane.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if pane.cursor < len(items)-1 {
			pane.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		item := items[pane.cursor]
		pane.draft.Checked[item.Key] = !pane.draft.Checked[item.Key]
		pane.dirty = true
	case key.Matches(msg, m.keys.Mood):
		pane.draft.Mood = cycleMood(pane.draft.Mood)
		pane.dirty = true
	case key.Matches(msg, m.keys.Edit):
		m.openNotesForm(pane)
	case key.Matches(msg, m.keys.Save):
		if err := pane.gate.Save(pane.draft.Checked, pane.draft.Notes, pane.draft.Mood); err != nil {
			m.formError = err.Error()
			return m, nil
		}
		pane.reload()
		m.statusMsg = fmt.Sprintf("Saved %s checklist", pane.gate.Period().Name)
	}
	return m, nil
}

// cycleMood walks unset -> nice -> good -> bad -> unset.
func cycleMood(current *models.Mood) *models.Mood {
	if current == nil {
		mood := models.MoodNice
		return &mood
	}
	if *current == models.MoodBad {
		return nil
	}
	mood := *current + 1
	return &mood
}

func (m Model) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Edit):
		m.openProfileForm()
	case key.Matches(msg, m.keys.Toggle):
		m.sound = !m.sound
		if err := profile.SetSoundEnabled(m.kv, m.sound); err != nil {
			m.formError = err.Error()
		}
	}
	return m, nil
}

func (m *Model) openScheduleForm() {
	dateText := schedule.FormatDate(m.selected)
	indices, notify := m.schedule.Prefill(m.selected)

	m.scheduleForm = &ScheduleFormModel{
		Date:    dateText,
		Indices: indices,
		Notify:  notify,
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

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Select Date").
				Placeholder("DD.MM.YYYY").
				Value(&m.scheduleForm.Date).
				Validate(func(s string) error {
					if !schedule.ValidDateInput(schedule.FormatDateInput(s)) {
						return fmt.Errorf("date must be DD.MM.YYYY")
					}
					return nil
				}),
			huh.NewMultiSelect[int]().
				Title("Select event").
				Options(options...).
				Value(&m.scheduleForm.Indices).
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
				Value(&m.scheduleForm.Notify),
		),
	).WithTheme(huh.ThemeBase())

	m.previousState = m.state
	m.state = StateScheduleForm
}

func (m *Model) openNotesForm(pane *checklistPane) {
	m.notesDraft = pane.draft.Notes
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Notes").
				Value(&m.notesDraft),
		),
	).WithTheme(huh.ThemeBase())

	m.previousState = m.state
	m.state = StateNotesForm
}

func (m *Model) openProfileForm() {
	m.profileForm = &ProfileFormModel{
		Breed:  m.pet.Breed,
		Name:   m.pet.Name,
		Age:    m.pet.Age,
		Gender: m.pet.Gender,
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Breed").Value(&m.profileForm.Breed),
			huh.NewInput().Title("Name").Value(&m.profileForm.Name),
			huh.NewInput().Title("Age").Value(&m.profileForm.Age),
			huh.NewInput().Title("Gender").Value(&m.profileForm.Gender),
		),
	).WithTheme(huh.ThemeBase())

	m.previousState = m.state
	m.state = StateProfileForm
}

func (m Model) updateScheduleForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		dateText := schedule.FormatDateInput(m.scheduleForm.Date)
		entry, err := m.schedule.Add(dateText, m.scheduleForm.Indices, m.scheduleForm.Notify)
		if err != nil {
			m.formError = err.Error()
			m.state = m.previousState
			return m, tea.Batch(cmds...)
		}
		if entry.NotificationsOn {
			// Reminder failure never rolls back the saved entry.
			_ = m.notifier.Schedule(entry.Date, entry.Events)
		}
		m.selected = entry.Date
		m.month = entry.Date
		m.refreshCalendar()
		m.statusMsg = fmt.Sprintf("Scheduled for %s", schedule.FormatDate(entry.Date))
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateNotesForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		pane := m.panes[m.previousState]
		pane.draft.Notes = m.notesDraft
		pane.dirty = true
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateProfileForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		m.pet = models.Profile{
			Breed:  m.profileForm.Breed,
			Name:   m.profileForm.Name,
			Age:    m.profileForm.Age,
			Gender: m.profileForm.Gender,
		}
		if err := profile.Save(m.kv, m.pet); err != nil {
			m.formError = err.Error()
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}
