// Package calendar implements the month-grid math behind the calendar
// screen. Everything here is a pure function of its inputs; persistence and
// rendering live elsewhere.
package calendar

import (
	"time"

	"github.com/hamcare-app/hamcare/internal/constants"
)

// WeekdaySymbols are the column headers for a Monday-first week. The "Wen"
// spelling shipped in the original app and is kept for parity.
var WeekdaySymbols = []string{"Mon", "Tue", "Wen", "Thu", "Fri", "Sat", "Sun"}

// DaysIn returns the number of days in the month containing t.
func DaysIn(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// FirstDayIndex returns the Monday-first weekday index (0 = Monday,
// 6 = Sunday) of the first day of the month containing t.
func FirstDayIndex(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	// time.Weekday counts Sunday as 0.
	return (int(first.Weekday()) + 6) % 7
}

// MonthGrid builds the 7-column day matrix for the month containing t. Cells
// holding 0 are padding before day 1 or after the last day; every other cell
// holds a day number. Rows are always complete weeks of 7 cells.
func MonthGrid(t time.Time) [][]int {
	dayCount := DaysIn(t)
	leadingEmpty := FirstDayIndex(t)

	totalCells := leadingEmpty + dayCount
	rows := (totalCells + 6) / 7

	grid := make([][]int, rows)
	day := 1
	for row := 0; row < rows; row++ {
		grid[row] = make([]int, 7)
		for col := 0; col < 7; col++ {
			index := row*7 + col
			if index < leadingEmpty || index >= leadingEmpty+dayCount {
				continue
			}
			grid[row][col] = day
			day++
		}
	}
	return grid
}

// ChangeMonth moves the displayed month by deltaMonths. The input is
// normalized to the first of its month before the shift so that a day-31
// current value can never skip a short month.
func ChangeMonth(current time.Time, deltaMonths int) time.Time {
	first := time.Date(current.Year(), current.Month(), 1, 0, 0, 0, 0, current.Location())
	return first.AddDate(0, deltaMonths, 0)
}

// MonthTitle renders the header for a displayed month, e.g. "January 26".
func MonthTitle(t time.Time) string {
	return t.Format(constants.MonthTitleFormat)
}

// DateFor returns the concrete date of a day number within the month
// containing t.
func DateFor(t time.Time, day int) time.Time {
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in their
// local calendar, ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
