package dates

import "time"

// InRange reports whether t falls inside [min, max] at the given
// granularity, inclusive on both ends. A zero-value bound leaves that side
// unbounded. Day is the customary granularity for range membership; Exact
// compares raw instants.
func (c Calendar) InRange(t, min, max time.Time, unit Unit) (bool, error) {
	if unit != Exact && !unit.valid() {
		return false, invalidUnit(unit)
	}
	if !min.IsZero() {
		ok, err := c.AfterOrEqualAt(t, min, unit)
		if err != nil || !ok {
			return false, err
		}
	}
	if !max.IsZero() {
		ok, err := c.BeforeOrEqualAt(t, max, unit)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// InRange applies the Default calendar.
func InRange(t, min, max time.Time, unit Unit) (bool, error) {
	return Default.InRange(t, min, max, unit)
}
