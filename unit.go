package dates

import "strconv"

// Unit is one granularity level of the calendar ladder, ordered from finest
// to coarsest. The zero value Exact means "no truncation" and is accepted
// only by the comparison operations and InRange; arithmetic and StartOf/EndOf
// require a real unit.
type Unit int

const (
	// Exact performs no truncation before comparing.
	Exact Unit = iota
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
	Decade
	Century
)

const (
	daysPerWeek     = 7
	monthsPerYear   = 12
	yearsPerDecade  = 10
	yearsPerCentury = 100
)

// unitNames maps each unit of the closed enumeration to its canonical
// lower-case name, as accepted by ParseUnit.
var unitNames = map[Unit]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
	Decade:      "decade",
	Century:     "century",
}

// unitsByName is the reverse of unitNames, built once at init time and
// read-only afterwards.
var unitsByName = func() map[string]Unit {
	m := make(map[string]Unit, len(unitNames))
	for u, name := range unitNames {
		m[name] = u
	}
	return m
}()

// millisPerUnit holds the fixed Diff divisors for the wall-clock units:
// the difference in epoch milliseconds divided by this constant yields the
// difference in the unit.
var millisPerUnit = map[Unit]int64{
	Millisecond: 1,
	Second:      1000,
	Minute:      60 * 1000,
	Hour:        60 * 60 * 1000,
	Day:         24 * 60 * 60 * 1000,
	Week:        daysPerWeek * 24 * 60 * 60 * 1000,
}

// monthsPerUnit holds the fixed Diff divisors for the calendar-field units:
// the difference in calendar months divided by this constant yields the
// difference in the unit.
var monthsPerUnit = map[Unit]int64{
	Month:   1,
	Year:    monthsPerYear,
	Decade:  monthsPerYear * yearsPerDecade,
	Century: monthsPerYear * yearsPerCentury,
}

// String returns the canonical name of the unit, or a Unit(n) placeholder
// for values outside the enumeration.
func (u Unit) String() string {
	if u == Exact {
		return "exact"
	}
	if name, ok := unitNames[u]; ok {
		return name
	}
	return "Unit(" + strconv.Itoa(int(u)) + ")"
}

// valid reports whether u belongs to the closed enumeration. Exact is not a
// member: it is a comparison mode, not a granularity.
func (u Unit) valid() bool {
	return u >= Millisecond && u <= Century
}

// ParseUnit resolves a canonical unit name ("millisecond" through "century")
// to its Unit. Unknown names fail with *InvalidUnitError.
func ParseUnit(name string) (Unit, error) {
	if u, ok := unitsByName[name]; ok {
		return u, nil
	}
	return Exact, &InvalidUnitError{Name: name}
}
