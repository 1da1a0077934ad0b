package domain

import "time"

// DateLayout is the storage and wire format for calendar dates.
const DateLayout = "2006-01-02"

// Weekday numbers days Monday=0 through Sunday=6.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "???"
	}
	return weekdayNames[w]
}

// Valid reports whether w is in the 0..6 range.
func (w Weekday) Valid() bool {
	return w >= Monday && w <= Sunday
}

// WeekdayOf converts a date's time.Weekday (Sunday=0) to the Monday=0 numbering.
func WeekdayOf(date time.Time) Weekday {
	return Weekday((int(date.Weekday()) + 6) % 7)
}

// DateOf truncates t to a naive calendar date: midnight UTC.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDate builds a naive calendar date.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return DateOf(a).Equal(DateOf(b))
}
