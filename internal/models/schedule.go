package models

import "time"

// ScheduleEntry is one scheduled care event. Entries are immutable once
// created; the store only ever appends to the persisted collection.
type ScheduleEntry struct {
	ID              string    `json:"id"`
	Date            time.Time `json:"date"`
	Events          []string  `json:"events"`
	NotificationsOn bool      `json:"notificationsOn"`
}
