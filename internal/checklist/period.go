// Package checklist implements the periodic care checklists: three fixed
// item sets whose checked state and notes are only honored while the last
// save sits inside the period's validity window.
package checklist

import (
	"fmt"
	"time"
)

// Anchor selects how a period's validity window is measured.
type Anchor int

const (
	// AnchorCalendarDay: valid while the save happened on today's calendar
	// day. The saved timestamp is pinned to start of day, so the window
	// effectively resets at midnight.
	AnchorCalendarDay Anchor = iota
	// AnchorRolling: valid while now minus the saved timestamp is below the
	// window duration.
	AnchorRolling
)

// Item is one checklist row. Key is the persistence suffix (stable across
// releases); Label is what the user sees. Labels are authoritative for
// meaning; key names are historical and do not always describe the item.
type Item struct {
	Key   string
	Label string
}

// Period describes one checklist: its key space, validity window and fixed
// item set.
type Period struct {
	Name      string
	KeyPrefix string
	Window    time.Duration
	Anchor    Anchor
	Items     []Item
}

var Daily = Period{
	Name:      "daily",
	KeyPrefix: "DailyList",
	Window:    24 * time.Hour,
	Anchor:    AnchorCalendarDay,
	Items: []Item{
		{Key: "addWater", Label: "Add Water To The Drinking Cup"},
		{Key: "addFood", Label: "Add Food To The Feeder"},
		{Key: "removeVeg", Label: "Remove Any Remaining Vegetables/Fruits"},
		{Key: "removeFeces", Label: "Remove Feces"},
		{Key: "playHamster", Label: "Play With The Hamster"},
	},
}

var Weekly = Period{
	Name:      "weekly",
	KeyPrefix: "WeeklyList",
	Window:    7 * 24 * time.Hour,
	Anchor:    AnchorRolling,
	Items: []Item{
		{Key: "partialLitter", Label: "Partial replacement of litter"},
		{Key: "waterChange", Label: "Complete water change"},
		{Key: "washDishes", Label: "Washing the sippy cup and bowls with soap"},
		{Key: "addToy", Label: "Add a teething toy"},
	},
}

var Monthly = Period{
	Name:      "monthly",
	KeyPrefix: "MonthlyList",
	Window:    30 * 24 * time.Hour,
	Anchor:    AnchorRolling,
	Items: []Item{
		{Key: "completeBedding", Label: "Complete bedding change"},
		{Key: "completeFeed", Label: "Complete feed replacement"},
		{Key: "washCage", Label: "Washing the cage with soap"},
		{Key: "washBowls", Label: "Washing bowls with soap"},
		{Key: "furCleaning", Label: "Cleaning a hamster's fur (sand bath)"},
	},
}

// ByName resolves a period from its CLI name.
func ByName(name string) (Period, error) {
	switch name {
	case Daily.Name:
		return Daily, nil
	case Weekly.Name:
		return Weekly, nil
	case Monthly.Name:
		return Monthly, nil
	default:
		return Period{}, fmt.Errorf("unknown checklist period %q", name)
	}
}

// ItemByKey finds an item in the period's set.
func (p Period) ItemByKey(key string) (Item, bool) {
	for _, item := range p.Items {
		if item.Key == key {
			return item, true
		}
	}
	return Item{}, false
}

func (p Period) savedDateKey() string { return p.KeyPrefix + ".savedDate" }
func (p Period) notesKey() string     { return p.KeyPrefix + ".notes" }
func (p Period) moodKey() string      { return p.KeyPrefix + ".mood" }

func (p Period) itemKey(item Item) string { return p.KeyPrefix + "." + item.Key }
