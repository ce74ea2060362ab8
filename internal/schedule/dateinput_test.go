package schedule

import (
	"testing"
	"time"
)

func TestFormatDateInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"digits only", "15032024", "15.03.2024"},
		{"partial day", "1", "1"},
		{"partial month", "1503", "15.03"},
		{"already formatted", "15.03.2024", "15.03.2024"},
		{"letters stripped", "15a03b2024", "15.03.2024"},
		{"mixed separators", "15/03-2024", "15.03.2024"},
		{"overflow truncated", "150320249999", "15.03.2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDateInput(tt.in); got != tt.want {
				t.Errorf("FormatDateInput(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseDateInput(t *testing.T) {
	got, err := ParseDateInput("15.03.2024")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("ParseDateInput = %v, want %v", got, want)
	}
}

func TestParseDateInput_TrimsWhitespace(t *testing.T) {
	if _, err := ParseDateInput("  15.03.2024  "); err != nil {
		t.Errorf("expected surrounding whitespace to be accepted, got %v", err)
	}
}

func TestValidDateInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"valid", "15.03.2024", true},
		{"leap day", "29.02.2024", true},
		{"leap day non-leap year", "29.02.2023", false},
		{"day out of range", "32.01.2024", false},
		{"month out of range", "15.13.2024", false},
		{"partial", "15.03", false},
		{"empty", "", false},
		{"garbage", "not-a-date", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidDateInput(tt.in); got != tt.want {
				t.Errorf("ValidDateInput(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	in := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	text := FormatDate(in)
	if text != "15.03.2024" {
		t.Fatalf("FormatDate = %q", text)
	}
	back, err := ParseDateInput(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !back.Equal(in) {
		t.Errorf("round trip changed the date: %v -> %v", in, back)
	}
}
