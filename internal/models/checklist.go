package models

import (
	"fmt"
	"time"
)

// Mood is the owner's assessment of the hamster's condition. The raw values
// are part of the persisted key space and must not be reordered.
type Mood int

const (
	MoodNice Mood = 0
	MoodGood Mood = 1
	MoodBad  Mood = 2
)

func (m Mood) String() string {
	switch m {
	case MoodNice:
		return "nice"
	case MoodGood:
		return "good"
	case MoodBad:
		return "bad"
	default:
		return "unknown"
	}
}

// ParseMood parses a user-supplied mood name.
func ParseMood(s string) (Mood, error) {
	switch s {
	case "nice":
		return MoodNice, nil
	case "good":
		return MoodGood, nil
	case "bad":
		return MoodBad, nil
	default:
		return 0, fmt.Errorf("invalid mood %q (expected nice|good|bad)", s)
	}
}

// ChecklistStatus describes where a periodic checklist sits relative to its
// validity window at load time.
type ChecklistStatus string

const (
	// ChecklistFresh means the checklist has never been saved.
	ChecklistFresh ChecklistStatus = "fresh"
	// ChecklistValid means the last save is still inside the validity window.
	ChecklistValid ChecklistStatus = "valid"
	// ChecklistExpired means the last save fell outside the window and the
	// item/notes state was presented as defaults.
	ChecklistExpired ChecklistStatus = "expired"
)

// ChecklistState is the loaded view of one periodic checklist. Checked is
// keyed by item key, not display label. Mood is nil when never recorded;
// it survives window expiry, unlike Checked and Notes.
type ChecklistState struct {
	Checked map[string]bool
	Notes   string
	Mood    *Mood
	SavedAt *time.Time
	Status  ChecklistStatus
}
