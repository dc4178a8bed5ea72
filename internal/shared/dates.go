package shared

import "time"

// day is the canonical day length for schedule arithmetic. Dates in
// this system carry no wall-clock component, so DST never shifts a span.
const day = 24 * time.Hour

// DateOnly truncates t to midnight UTC.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the whole number of days from a to b, negative
// when b precedes a.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)) / day)
}

// FormatDate renders a date as DD/MM/YYYY, the display format used on
// exports and printable documents. Zero dates render empty.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}
