package dates

import (
	"strconv"
	"time"
)

// Field identifies one calendar field of an instant. Each field has a
// (getter, setter) pair in the accessor registry; Get and Set dispatch
// through it, and the named functions below are statically bound wrappers.
type Field int

const (
	FieldMillisecond Field = iota
	FieldSecond
	FieldMinute
	FieldHour
	// FieldDay is the day of week, 0 = Sunday.
	FieldDay
	// FieldDate is the day of month, 1-based.
	FieldDate
	// FieldMonth is 0-based: January = 0.
	FieldMonth
	FieldYear
)

var fieldNames = map[Field]string{
	FieldMillisecond: "millisecond",
	FieldSecond:      "second",
	FieldMinute:      "minute",
	FieldHour:        "hour",
	FieldDay:         "day",
	FieldDate:        "date",
	FieldMonth:       "month",
	FieldYear:        "year",
}

func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "Field(" + strconv.Itoa(int(f)) + ")"
}

// accessor is one field's (getter, setter) pair. Setters return a fresh
// instant; the input is never modified.
type accessor struct {
	get func(time.Time) int
	set func(time.Time, int) time.Time
}

// accessors is the field registry, initialized once and read-only afterwards.
var accessors = map[Field]accessor{
	FieldMillisecond: {get: Milliseconds, set: WithMilliseconds},
	FieldSecond:      {get: Seconds, set: WithSeconds},
	FieldMinute:      {get: Minutes, set: WithMinutes},
	FieldHour:        {get: Hours, set: WithHours},
	FieldDay:         {get: DayOfWeek, set: WithDayOfWeek},
	FieldDate:        {get: DayOfMonth, set: WithDayOfMonth},
	FieldMonth:       {get: MonthIndex, set: WithMonthIndex},
	FieldYear:        {get: YearOf, set: WithYear},
}

// Get reads one calendar field of t. Unknown fields fail with
// *InvalidFieldError.
func Get(t time.Time, f Field) (int, error) {
	a, ok := accessors[f]
	if !ok {
		return 0, &InvalidFieldError{Field: f}
	}
	return a.get(t), nil
}

// Set returns a copy of t with one calendar field replaced. Values that
// overflow the field (minute 72, month index 14, February 31st) follow the
// time package's normalization rule and roll into the adjacent period.
// Unknown fields fail with *InvalidFieldError.
func Set(t time.Time, f Field, v int) (time.Time, error) {
	a, ok := accessors[f]
	if !ok {
		return time.Time{}, &InvalidFieldError{Field: f}
	}
	return a.set(t, v), nil
}

// Milliseconds returns the millisecond of second, in [0,999].
func Milliseconds(t time.Time) int {
	return t.Nanosecond() / int(time.Millisecond)
}

// WithMilliseconds replaces the millisecond of second. Sub-millisecond
// precision is dropped: the engine's resolution is one millisecond.
func WithMilliseconds(t time.Time, v int) time.Time {
	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	return time.Date(year, month, day, hour, minute, sec, v*int(time.Millisecond), t.Location())
}

// Seconds returns the second of minute.
func Seconds(t time.Time) int {
	return t.Second()
}

// WithSeconds replaces the second of minute.
func WithSeconds(t time.Time, v int) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, t.Hour(), t.Minute(), v, t.Nanosecond(), t.Location())
}

// Minutes returns the minute of hour.
func Minutes(t time.Time) int {
	return t.Minute()
}

// WithMinutes replaces the minute of hour.
func WithMinutes(t time.Time, v int) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, t.Hour(), v, t.Second(), t.Nanosecond(), t.Location())
}

// Hours returns the hour of day.
func Hours(t time.Time) int {
	return t.Hour()
}

// WithHours replaces the hour of day.
func WithHours(t time.Time, v int) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, v, t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DayOfWeek returns the day of week with Sunday as 0, matching
// time.Weekday's own numbering.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday())
}

// WithDayOfWeek shifts t by whole days to the requested day of week
// (0 = Sunday) within the same Sunday-first week, holding the time of day
// fixed.
func WithDayOfWeek(t time.Time, v int) time.Time {
	return t.AddDate(0, 0, v-int(t.Weekday()))
}

// DayOfMonth returns the day of month, 1-based.
func DayOfMonth(t time.Time) int {
	return t.Day()
}

// WithDayOfMonth replaces the day of month.
func WithDayOfMonth(t time.Time, v int) time.Time {
	year, month, _ := t.Date()
	hour, minute, sec := t.Clock()
	return time.Date(year, month, v, hour, minute, sec, t.Nanosecond(), t.Location())
}

// MonthIndex returns the month as a 0-based index: January = 0. Callers
// exchanging values with time.Month must apply the +1/-1 conversion; the
// named accessors here do it consistently.
func MonthIndex(t time.Time) int {
	return int(t.Month()) - 1
}

// WithMonthIndex replaces the month, given as a 0-based index.
func WithMonthIndex(t time.Time, v int) time.Time {
	year, _, day := t.Date()
	hour, minute, sec := t.Clock()
	return time.Date(year, time.Month(v+1), day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// YearOf returns the calendar year.
func YearOf(t time.Time) int {
	return t.Year()
}

// WithYear replaces the calendar year.
func WithYear(t time.Time, v int) time.Time {
	_, month, day := t.Date()
	hour, minute, sec := t.Clock()
	return time.Date(v, month, day, hour, minute, sec, t.Nanosecond(), t.Location())
}

// Weekday returns the day offset of t from the calendar's first day of
// week, in [0,6].
func (c Calendar) Weekday(t time.Time) int {
	return (int(t.Weekday()) - int(c.WeekStart) + daysPerWeek) % daysPerWeek
}

// WithWeekday shifts t by whole days to land on the requested offset from
// the calendar's first day of week, holding the time of day fixed.
func (c Calendar) WithWeekday(t time.Time, offset int) time.Time {
	return t.AddDate(0, 0, offset-c.Weekday(t))
}

// Weekday returns the day offset from Sunday, in [0,6].
func Weekday(t time.Time) int {
	return Default.Weekday(t)
}

// WithWeekday shifts t within its Sunday-first week to the given offset.
func WithWeekday(t time.Time, offset int) time.Time {
	return Default.WithWeekday(t, offset)
}

// EpochMillis returns t as milliseconds since the Unix epoch, computed with
// integer arithmetic only.
func EpochMillis(t time.Time) int64 {
	return t.Unix()*1000 + int64(t.Nanosecond())/int64(time.Millisecond)
}
