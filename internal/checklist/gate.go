package checklist

import (
	"fmt"
	"time"

	"github.com/hamcare-app/hamcare/internal/calendar"
	"github.com/hamcare-app/hamcare/internal/models"
	"github.com/hamcare-app/hamcare/internal/storage"
)

// Gate loads and saves one periodic checklist, applying the validity window
// on the way out. A checklist moves Fresh/Expired -> Valid only through
// Save; Valid -> Expired is detected lazily on Load, never scheduled.
type Gate struct {
	period Period
	kv     storage.KV
	now    func() time.Time
}

func NewGate(period Period, kv storage.KV) *Gate {
	return &Gate{period: period, kv: kv, now: time.Now}
}

// Period returns the gate's period descriptor.
func (g *Gate) Period() Period {
	return g.period
}

// Load returns the checklist state as it should be presented right now.
// Outside the validity window the items and notes read as defaults; the
// persisted bytes are left alone until the next Save overwrites them. Mood
// bypasses the window entirely.
func (g *Gate) Load() models.ChecklistState {
	state := models.ChecklistState{
		Checked: make(map[string]bool, len(g.period.Items)),
		Status:  models.ChecklistFresh,
	}
	for _, item := range g.period.Items {
		state.Checked[item.Key] = false
	}

	if savedAt, ok := g.kv.GetTime(g.period.savedDateKey()); ok {
		state.SavedAt = &savedAt
		if g.withinWindow(savedAt) {
			state.Status = models.ChecklistValid
			for _, item := range g.period.Items {
				if v, ok := g.kv.GetBool(g.period.itemKey(item)); ok {
					state.Checked[item.Key] = v
				}
			}
			if notes, ok := g.kv.GetString(g.period.notesKey()); ok {
				state.Notes = notes
			}
		} else {
			state.Status = models.ChecklistExpired
		}
	}

	if raw, ok := g.kv.GetInt(g.period.moodKey()); ok {
		if raw >= int(models.MoodNice) && raw <= int(models.MoodBad) {
			mood := models.Mood(raw)
			state.Mood = &mood
		}
	}

	return state
}

// Save persists the checklist unconditionally and stamps the validity
// anchor: start of today for calendar-day periods, the exact moment for
// rolling ones. Mood is written only when provided and under its own
// always-valid key.
func (g *Gate) Save(checked map[string]bool, notes string, mood *models.Mood) error {
	now := g.now()
	stamp := now
	if g.period.Anchor == AnchorCalendarDay {
		stamp = calendar.StartOfDay(now)
	}

	if err := g.kv.SetTime(g.period.savedDateKey(), stamp); err != nil {
		return fmt.Errorf("failed to save %s checklist date: %w", g.period.Name, err)
	}
	for _, item := range g.period.Items {
		if err := g.kv.SetBool(g.period.itemKey(item), checked[item.Key]); err != nil {
			return fmt.Errorf("failed to save %s checklist item %s: %w", g.period.Name, item.Key, err)
		}
	}
	if err := g.kv.SetString(g.period.notesKey(), notes); err != nil {
		return fmt.Errorf("failed to save %s checklist notes: %w", g.period.Name, err)
	}
	if mood != nil {
		if err := g.kv.SetInt(g.period.moodKey(), int(*mood)); err != nil {
			return fmt.Errorf("failed to save %s mood: %w", g.period.Name, err)
		}
	}
	return nil
}

func (g *Gate) withinWindow(savedAt time.Time) bool {
	now := g.now()
	if g.period.Anchor == AnchorCalendarDay {
		return calendar.SameDay(savedAt, now)
	}
	return now.Sub(savedAt) < g.period.Window
}
