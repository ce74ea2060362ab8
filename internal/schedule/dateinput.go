package schedule

import (
	"strings"
	"time"
	"unicode"

	"github.com/hamcare-app/hamcare/internal/constants"
)

// FormatDateInput reformats a raw text-field value as DD.MM.YYYY: non-digit
// characters are stripped, the digit stream is capped at 8, and separators
// are inserted after the day and month positions. Partial input stays
// partial ("1503" -> "15.03").
func FormatDateInput(raw string) string {
	var digits []rune
	for _, r := range raw {
		if unicode.IsDigit(r) {
			digits = append(digits, r)
			if len(digits) == 8 {
				break
			}
		}
	}

	var b strings.Builder
	for i, r := range digits {
		if i == 2 || i == 4 {
			b.WriteRune('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseDateInput parses a trimmed DD.MM.YYYY value into a local midnight
// date.
func ParseDateInput(s string) (time.Time, error) {
	t, err := time.Parse(constants.DateInputFormat, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local), nil
}

// ValidDateInput reports whether s would be accepted by ParseDateInput. The
// schedule form disables its save action while this is false.
func ValidDateInput(s string) bool {
	_, err := ParseDateInput(s)
	return err == nil
}

// FormatDate renders a date back into the DD.MM.YYYY input format.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateInputFormat)
}
