package cli

import (
	"testing"
	"time"
)

func TestParseEventSelection(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"empty", "", nil, false},
		{"single", "1", []int{0}, false},
		{"multiple", "1,3,5", []int{0, 2, 4}, false},
		{"spaces tolerated", " 2 , 4 ", []int{1, 3}, false},
		{"zero rejected", "0", nil, true},
		{"out of range", "6", nil, true},
		{"not a number", "one", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventSelection(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("indices = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("indices[%d] = %d, want %d", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseMonthFlag(t *testing.T) {
	got, err := ParseMonthFlag("2024-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March {
		t.Errorf("ParseMonthFlag = %v", got)
	}

	if _, err := ParseMonthFlag("March 2024"); err == nil {
		t.Error("expected an error for a non YYYY-MM value")
	}

	now, err := ParseMonthFlag("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if now.Month() != time.Now().Month() {
		t.Errorf("empty flag should mean the current month, got %v", now)
	}
}
