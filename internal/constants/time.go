package constants

const (
	// DateInputFormat is the user-facing date format (DD.MM.YYYY)
	DateInputFormat = "02.01.2006"

	// DateFormat is the standard date format used internally (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// MonthFlagFormat parses --month flags (YYYY-MM)
	MonthFlagFormat = "2006-01"

	// MonthTitleFormat renders the calendar header, e.g. "January 06"
	MonthTitleFormat = "January 06"
)
