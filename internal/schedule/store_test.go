package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/hamcare-app/hamcare/internal/constants"
	"github.com/hamcare-app/hamcare/internal/storage"
)

func newTestStore(t *testing.T) (*Store, storage.KV) {
	t.Helper()
	kv := storage.NewMemoryStore()
	t.Cleanup(func() {
		if err := kv.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return New(kv), kv
}

func TestStore_Add(t *testing.T) {
	store, _ := newTestStore(t)

	entry, err := store.Add("15.03.2024", []int{0, 2}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if entry.ID == "" {
		t.Error("expected a generated ID")
	}
	if !entry.NotificationsOn {
		t.Error("expected notifications on")
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if !entry.Date.Equal(want) {
		t.Errorf("date = %v, want %v", entry.Date, want)
	}
	if len(entry.Events) != 2 || entry.Events[0] != "Add Food" || entry.Events[1] != "Clean The Cage" {
		t.Errorf("events = %v", entry.Events)
	}

	entries := store.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 persisted entry, got %d", len(entries))
	}
	if entries[0].ID != entry.ID {
		t.Errorf("persisted ID %s, want %s", entries[0].ID, entry.ID)
	}
}

func TestStore_Add_Validation(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		indices []int
		wantErr error
	}{
		{"bad date", "2024-03-15", []int{0}, ErrInvalidDate},
		{"empty selection", "15.03.2024", nil, ErrNoEvents},
		{"index out of range", "15.03.2024", []int{5}, ErrInvalidEvent},
		{"negative index", "15.03.2024", []int{-1}, ErrInvalidEvent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _ := newTestStore(t)

			if _, err := store.Add(tt.date, tt.indices, false); !errors.Is(err, tt.wantErr) {
				t.Errorf("Add error = %v, want %v", err, tt.wantErr)
			}
			if got := store.Entries(); len(got) != 0 {
				t.Errorf("validation failure persisted %d entries", len(got))
			}
		})
	}
}

func TestStore_Add_SortsAndDeduplicatesSelection(t *testing.T) {
	store, _ := newTestStore(t)

	entry, err := store.Add("15.03.2024", []int{4, 1, 1, 0}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"Add Food", "Add Water", "Visit The Vet - Recommended Once A Year"}
	if len(entry.Events) != len(want) {
		t.Fatalf("events = %v, want %v", entry.Events, want)
	}
	for i := range want {
		if entry.Events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, entry.Events[i], want[i])
		}
	}
}

func TestStore_Add_AppendsAcrossCalls(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Add("15.03.2024", []int{0}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Add("15.03.2024", []int{1}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Add("16.03.2024", []int{2}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := len(store.Entries()); got != 3 {
		t.Fatalf("expected 3 entries, got %d", got)
	}

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if got := len(store.EntriesOn(day)); got != 2 {
		t.Errorf("expected 2 entries on %v, got %d", day, got)
	}
}

func TestStore_Entries_CorruptBlobReadsEmpty(t *testing.T) {
	store, kv := newTestStore(t)

	if err := kv.SetData(constants.ScheduleItemsKey, []byte("{not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := store.Entries(); got != nil {
		t.Errorf("expected nil for corrupt blob, got %v", got)
	}

	// Appending after corruption starts a fresh collection.
	if _, err := store.Add("15.03.2024", []int{0}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(store.Entries()); got != 1 {
		t.Errorf("expected 1 entry after recovery, got %d", got)
	}
}

func TestStore_PlannedLabels_DeduplicatesAcrossEntries(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Add("15.03.2024", []int{2, 0}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Add("15.03.2024", []int{0, 1}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	got := store.PlannedLabels(day)

	// First-seen order across entries: the first entry commits sorted
	// labels, the second contributes only what is new.
	want := []string{"Add Food", "Clean The Cage", "Add Water"}
	if len(got) != len(want) {
		t.Fatalf("labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestStore_PlannedLabels_EmptyDay(t *testing.T) {
	store, _ := newTestStore(t)

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if got := store.PlannedLabels(day); len(got) != 0 {
		t.Errorf("expected no labels, got %v", got)
	}
}

func TestStore_Prefill_LastEntryWins(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Add("15.03.2024", []int{0}, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Add("15.03.2024", []int{1, 3}, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	indices, notify := store.Prefill(day)

	if notify {
		t.Error("expected the last entry's notification flag")
	}
	if len(indices) != 2 || indices[0] != 1 || indices[1] != 3 {
		t.Errorf("indices = %v, want [1 3]", indices)
	}
}

func TestStore_Prefill_EmptyDay(t *testing.T) {
	store, _ := newTestStore(t)

	day := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	indices, notify := store.Prefill(day)
	if indices != nil || notify {
		t.Errorf("expected empty prefill, got %v, %v", indices, notify)
	}
}

func TestStore_DaysWithEntries(t *testing.T) {
	store, _ := newTestStore(t)

	for _, date := range []string{"01.03.2024", "15.03.2024", "15.03.2024", "02.04.2024"} {
		if _, err := store.Add(date, []int{0}, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	march := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)
	days := store.DaysWithEntries(march)

	if len(days) != 2 {
		t.Fatalf("expected 2 marked days, got %v", days)
	}
	if !days[1] || !days[15] {
		t.Errorf("days = %v, want 1 and 15 marked", days)
	}
}

func TestStore_Upcoming(t *testing.T) {
	store, _ := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2024, time.March, 15, 14, 30, 0, 0, time.Local)
	}

	for _, date := range []string{"14.03.2024", "20.03.2024", "15.03.2024", "16.03.2024"} {
		if _, err := store.Add(date, []int{0}, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	upcoming := store.Upcoming()
	if len(upcoming) != 3 {
		t.Fatalf("expected 3 upcoming entries, got %d", len(upcoming))
	}

	wantDays := []int{15, 16, 20}
	for i, e := range upcoming {
		if e.Date.Day() != wantDays[i] {
			t.Errorf("upcoming[%d] on day %d, want %d", i, e.Date.Day(), wantDays[i])
		}
	}
}
