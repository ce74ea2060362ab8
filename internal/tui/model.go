// Package tui implements the interactive calendar screen: a month grid with
// the periodic checklists and the pet profile on sibling tabs.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/hamcare-app/hamcare/internal/checklist"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/notifier"
	"github.com/hamcare-app/hamcare/internal/profile"
	"github.com/hamcare-app/hamcare/internal/schedule"
	"github.com/hamcare-app/hamcare/internal/storage"
)

type SessionState int

const (
	StateCalendar SessionState = iota
	StateDaily
	StateWeekly
	StateMonthly
	StateProfile
	StateScheduleForm
	StateNotesForm
	StateProfileForm
)

type ScheduleFormModel struct {
	Date    string
	Indices []int
	Notify  bool
}

type ProfileFormModel struct {
	Breed  string
	Name   string
	Age    string
	Gender string
}

// checklistPane is the edit buffer for one checklist tab. Nothing is
// persisted until the user saves; the gate re-applies the validity window on
// every reload.
type checklistPane struct {
	gate   *checklist.Gate
	draft  models.ChecklistState
	cursor int
	dirty  bool
}

func (p *checklistPane) reload() {
	p.draft = p.gate.Load()
	p.dirty = false
	if p.cursor >= len(p.gate.Period().Items) {
		p.cursor = 0
	}
}

type Model struct {
	kv       storage.KV
	schedule *schedule.Store
	notifier *notifier.Notifier

	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	month    time.Time
	selected time.Time
	marked   map[int]bool
	planned  []string

	panes map[SessionState]*checklistPane

	form         *huh.Form
	scheduleForm *ScheduleFormModel
	profileForm  *ProfileFormModel
	notesDraft   string

	pet   models.Profile
	sound bool

	formError string
	statusMsg string
	quitting  bool
	width     int
	height    int
}

func NewModel(kv storage.KV, store *schedule.Store, n *notifier.Notifier) Model {
	now := time.Now()

	m := Model{
		kv:       kv,
		schedule: store,
		notifier: n,
		state:    StateCalendar,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		month:    now,
		selected: now,
		panes: map[SessionState]*checklistPane{
			StateDaily:   {gate: checklist.NewGate(checklist.Daily, kv)},
			StateWeekly:  {gate: checklist.NewGate(checklist.Weekly, kv)},
			StateMonthly: {gate: checklist.NewGate(checklist.Monthly, kv)},
		},
		pet:   profile.Load(kv),
		sound: profile.SoundEnabled(kv),
	}

	m.refreshCalendar()
	for _, pane := range m.panes {
		pane.reload()
	}
	return m
}

// refreshCalendar recomputes the grid highlights and the planned list for
// the current month and selection.
func (m *Model) refreshCalendar() {
	m.marked = m.schedule.DaysWithEntries(m.month)
	m.planned = m.schedule.PlannedLabels(m.selected)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateCalendar:
		keys = append(keys, m.keys.PrevMonth, m.keys.NextMonth, m.keys.Schedule)
	case StateDaily, StateWeekly, StateMonthly:
		keys = append(keys, m.keys.Toggle, m.keys.Mood, m.keys.Save)
	case StateProfile:
		keys = append(keys, m.keys.Edit, m.keys.Toggle)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	var actions []key.Binding
	switch m.state {
	case StateCalendar:
		actions = []key.Binding{m.keys.PrevMonth, m.keys.NextMonth, m.keys.Today, m.keys.Schedule}
	case StateDaily, StateWeekly, StateMonthly:
		actions = []key.Binding{m.keys.Toggle, m.keys.Mood, m.keys.Edit, m.keys.Save}
	case StateProfile:
		actions = []key.Binding{m.keys.Edit, m.keys.Toggle}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return nil
}
