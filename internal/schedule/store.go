// Package schedule implements the event store behind the calendar screen:
// an append-only collection of scheduled care events persisted as a single
// JSON blob in the key-value store.
package schedule

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hamcare-app/hamcare/internal/calendar"
	"github.com/hamcare-app/hamcare/internal/constants"
	"github.com/hamcare-app/hamcare/internal/logger"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/storage"
)

// EventLabels is the closed set of schedulable care events, in display
// order. Persisted entries reference these exact strings.
var EventLabels = []string{
	"Add Food",
	"Add Water",
	"Clean The Cage",
	"Wash The Cage",
	"Visit The Vet - Recommended Once A Year",
}

var (
	ErrNoEvents     = errors.New("at least one event must be selected")
	ErrInvalidDate  = errors.New("date must be in DD.MM.YYYY format")
	ErrInvalidEvent = errors.New("event index out of range")
)

// Store reads and writes the schedule collection. Entries are never updated
// or deleted once persisted.
type Store struct {
	kv  storage.KV
	now func() time.Time
}

func New(kv storage.KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Add validates the form input, appends a new entry to the persisted
// collection and returns it. Nothing is persisted on validation failure.
func (s *Store) Add(dateText string, labelIndices []int, notificationsOn bool) (models.ScheduleEntry, error) {
	date, err := ParseDateInput(dateText)
	if err != nil {
		return models.ScheduleEntry{}, ErrInvalidDate
	}
	if len(labelIndices) == 0 {
		return models.ScheduleEntry{}, ErrNoEvents
	}

	events, err := labelsForIndices(labelIndices)
	if err != nil {
		return models.ScheduleEntry{}, err
	}

	entry := models.ScheduleEntry{
		ID:              uuid.NewString(),
		Date:            date,
		Events:          events,
		NotificationsOn: notificationsOn,
	}

	existing := s.Entries()
	existing = append(existing, entry)

	data, err := json.Marshal(existing)
	if err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("failed to serialize schedule: %w", err)
	}
	if err := s.kv.SetData(constants.ScheduleItemsKey, data); err != nil {
		return models.ScheduleEntry{}, fmt.Errorf("failed to persist schedule: %w", err)
	}

	return entry, nil
}

// Entries returns every persisted entry in append order. A missing or
// undecodable blob reads as an empty collection.
func (s *Store) Entries() []models.ScheduleEntry {
	data, ok := s.kv.GetData(constants.ScheduleItemsKey)
	if !ok {
		return nil
	}
	var entries []models.ScheduleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		logger.Debug("Discarding undecodable schedule blob", "error", err)
		return nil
	}
	return entries
}

// EntriesOn returns the entries whose date falls on the same calendar day as
// date, in append order.
func (s *Store) EntriesOn(date time.Time) []models.ScheduleEntry {
	var matched []models.ScheduleEntry
	for _, e := range s.Entries() {
		if calendar.SameDay(e.Date, date) {
			matched = append(matched, e)
		}
	}
	return matched
}

// PlannedLabels returns the distinct event labels planned for a day, drawn
// from every matching entry, deduplicated in first-seen order.
func (s *Store) PlannedLabels(date time.Time) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, e := range s.EntriesOn(date) {
		for _, event := range e.Events {
			if seen[event] {
				continue
			}
			seen[event] = true
			labels = append(labels, event)
		}
	}
	return labels
}

// Prefill derives schedule-form defaults for a day from the most recently
// appended matching entry: its label indices and notification flag. A day
// without entries yields an empty selection.
func (s *Store) Prefill(date time.Time) (labelIndices []int, notificationsOn bool) {
	matched := s.EntriesOn(date)
	if len(matched) == 0 {
		return nil, false
	}

	last := matched[len(matched)-1]
	for _, event := range last.Events {
		for i, label := range EventLabels {
			if label == event {
				labelIndices = append(labelIndices, i)
				break
			}
		}
	}
	return labelIndices, last.NotificationsOn
}

// DaysWithEntries returns the day numbers in the month containing month that
// have at least one entry. Used by calendar rendering.
func (s *Store) DaysWithEntries(month time.Time) map[int]bool {
	days := make(map[int]bool)
	for _, e := range s.Entries() {
		if e.Date.Year() == month.Year() && e.Date.Month() == month.Month() {
			days[e.Date.Day()] = true
		}
	}
	return days
}

// Upcoming returns entries on or after the start of today, ordered by date
// then append order.
func (s *Store) Upcoming() []models.ScheduleEntry {
	today := calendar.StartOfDay(s.now())
	var upcoming []models.ScheduleEntry
	for _, e := range s.Entries() {
		if !e.Date.Before(today) {
			upcoming = append(upcoming, e)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	return upcoming
}

// labelsForIndices maps selection indices onto EventLabels, sorted and
// deduplicated the way the schedule form commits them.
func labelsForIndices(indices []int) ([]string, error) {
	uniq := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(EventLabels) {
			return nil, fmt.Errorf("%w: %d", ErrInvalidEvent, idx)
		}
		uniq[idx] = true
	}

	sorted := make([]int, 0, len(uniq))
	for idx := range uniq {
		sorted = append(sorted, idx)
	}
	sort.Ints(sorted)

	events := make([]string, len(sorted))
	for i, idx := range sorted {
		events[i] = EventLabels[idx]
	}
	return events, nil
}
