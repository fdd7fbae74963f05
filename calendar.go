package dates

import "time"

// Calendar carries the week-start convention shared by the week-sensitive
// operations (StartOf and EndOf at Week granularity, Weekday, WithWeekday,
// and the truncating comparators when given Week). It is read-only after
// construction and safe for concurrent use.
type Calendar struct {
	// WeekStart is the first day of the week. The zero value is
	// time.Sunday, matching the Default calendar.
	WeekStart time.Weekday
}

// Default is the Sunday-first calendar used by the package-level functions.
var Default = Calendar{WeekStart: time.Sunday}
