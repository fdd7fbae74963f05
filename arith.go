package dates

import (
	"math"
	"time"
)

// Add shifts t forward by amount units. Sub-day units move the absolute
// instant by a fixed duration; Day and coarser use calendar arithmetic, so
// adding a day across a DST transition keeps the wall-clock time and adding
// a month to January 31st follows the time package's normalization rule.
// A unit outside the enumeration fails with *InvalidUnitError.
func Add(t time.Time, amount int, unit Unit) (time.Time, error) {
	switch unit {
	case Millisecond:
		return t.Add(time.Duration(amount) * time.Millisecond), nil
	case Second:
		return t.Add(time.Duration(amount) * time.Second), nil
	case Minute:
		return t.Add(time.Duration(amount) * time.Minute), nil
	case Hour:
		return t.Add(time.Duration(amount) * time.Hour), nil
	case Day:
		return t.AddDate(0, 0, amount), nil
	case Week:
		return t.AddDate(0, 0, amount*daysPerWeek), nil
	case Month:
		return t.AddDate(0, amount, 0), nil
	case Year:
		return t.AddDate(amount, 0, 0), nil
	case Decade:
		return t.AddDate(amount*yearsPerDecade, 0, 0), nil
	case Century:
		return t.AddDate(amount*yearsPerCentury, 0, 0), nil
	}
	return time.Time{}, invalidUnit(unit)
}

// Subtract shifts t backward by amount units.
func Subtract(t time.Time, amount int, unit Unit) (time.Time, error) {
	return Add(t, -amount, unit)
}

// StartOf normalizes t to the earliest instant of the bucket of the given
// granularity containing it.
//
// Truncation cascades: requesting a coarse unit applies every finer
// truncation below it, so StartOf(t, Year) also resets the month, day and
// time of day. After the cascade, Decade and Century subtract the year
// remainder and Week shifts back to the calendar's first day of week.
func (c Calendar) StartOf(t time.Time, unit Unit) (time.Time, error) {
	if !unit.valid() {
		return time.Time{}, invalidUnit(unit)
	}

	year, month, day := t.Date()
	hour, minute, sec := t.Clock()
	milli := t.Nanosecond() / int(time.Millisecond)

	if unit >= Second {
		milli = 0
	}
	if unit >= Minute {
		sec = 0
	}
	if unit >= Hour {
		minute = 0
	}
	if unit >= Day {
		hour = 0
	}
	if unit >= Month {
		day = 1
	}
	if unit >= Year {
		month = time.January
	}

	out := time.Date(year, month, day, hour, minute, sec, milli*int(time.Millisecond), t.Location())

	switch unit {
	case Week:
		out = c.WithWeekday(out, 0)
	case Decade:
		out = out.AddDate(-(out.Year() % yearsPerDecade), 0, 0)
	case Century:
		out = out.AddDate(-(out.Year() % yearsPerCentury), 0, 0)
	}
	return out, nil
}

// EndOf returns the last instant of the bucket containing t: exactly one
// millisecond before the start of the next bucket, for every unit including
// Week, Decade and Century.
func (c Calendar) EndOf(t time.Time, unit Unit) (time.Time, error) {
	start, err := c.StartOf(t, unit)
	if err != nil {
		return time.Time{}, err
	}
	next, err := Add(start, 1, unit)
	if err != nil {
		return time.Time{}, err
	}
	return next.Add(-time.Millisecond), nil
}

// StartOf applies the Default calendar.
func StartOf(t time.Time, unit Unit) (time.Time, error) {
	return Default.StartOf(t, unit)
}

// EndOf applies the Default calendar.
func EndOf(t time.Time, unit Unit) (time.Time, error) {
	return Default.EndOf(t, unit)
}

// DiffFloat returns b - a expressed in the given unit, as an exact fraction.
//
// For Millisecond through Week the dividend is the elapsed wall-clock time
// in epoch milliseconds. For Month and coarser it is the difference in
// calendar months, ignoring day of month and time of day entirely: January
// 31st to March 1st is one month, not "one month and a bit". The divisors
// are the fixed per-unit constants.
func DiffFloat(a, b time.Time, unit Unit) (float64, error) {
	if ms, ok := millisPerUnit[unit]; ok {
		return float64(EpochMillis(b)-EpochMillis(a)) / float64(ms), nil
	}
	if months, ok := monthsPerUnit[unit]; ok {
		span := (b.Year()-a.Year())*monthsPerYear + int(b.Month()) - int(a.Month())
		return float64(span) / float64(months), nil
	}
	return 0, invalidUnit(unit)
}

// Diff returns b - a expressed in the given unit, rounded to the nearest
// integer with ties going away from zero.
func Diff(a, b time.Time, unit Unit) (int64, error) {
	f, err := DiffFloat(a, b, unit)
	if err != nil {
		return 0, err
	}
	return int64(math.Round(f)), nil
}
