package dates

import "time"

// Equal reports wall-clock equality: the civil date and time components of
// the two instants match, timezone identity ignored. Two instants reading
// 10:00 on the same date in different zones are Equal even though they name
// different absolute moments. This is deliberately weaker than
// time.Time.Equal.
func Equal(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	ah, amin, asec := a.Clock()
	bh, bmin, bsec := b.Clock()
	return ay == by && am == bm && ad == bd &&
		ah == bh && amin == bmin && asec == bsec &&
		a.Nanosecond() == b.Nanosecond()
}

// truncPair normalizes both operands to the start of the unit. Exact leaves
// them untouched.
func (c Calendar) truncPair(a, b time.Time, unit Unit) (time.Time, time.Time, error) {
	if unit == Exact {
		return a, b, nil
	}
	sa, err := c.StartOf(a, unit)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	sb, err := c.StartOf(b, unit)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return sa, sb, nil
}

// EqualAt reports whether a and b fall in the same bucket of the given
// granularity; with Exact it is the wall-clock Equal.
func (c Calendar) EqualAt(a, b time.Time, unit Unit) (bool, error) {
	sa, sb, err := c.truncPair(a, b, unit)
	if err != nil {
		return false, err
	}
	return Equal(sa, sb), nil
}

// NotEqualAt is the negation of EqualAt.
func (c Calendar) NotEqualAt(a, b time.Time, unit Unit) (bool, error) {
	eq, err := c.EqualAt(a, b, unit)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// BeforeAt reports whether a's bucket of the given granularity is strictly
// before b's; with Exact it compares the raw instants.
func (c Calendar) BeforeAt(a, b time.Time, unit Unit) (bool, error) {
	sa, sb, err := c.truncPair(a, b, unit)
	if err != nil {
		return false, err
	}
	return sa.Before(sb), nil
}

// BeforeOrEqualAt reports whether a's bucket is before or the same as b's.
func (c Calendar) BeforeOrEqualAt(a, b time.Time, unit Unit) (bool, error) {
	sa, sb, err := c.truncPair(a, b, unit)
	if err != nil {
		return false, err
	}
	return !sa.After(sb), nil
}

// AfterAt reports whether a's bucket is strictly after b's.
func (c Calendar) AfterAt(a, b time.Time, unit Unit) (bool, error) {
	sa, sb, err := c.truncPair(a, b, unit)
	if err != nil {
		return false, err
	}
	return sa.After(sb), nil
}

// AfterOrEqualAt reports whether a's bucket is after or the same as b's.
func (c Calendar) AfterOrEqualAt(a, b time.Time, unit Unit) (bool, error) {
	sa, sb, err := c.truncPair(a, b, unit)
	if err != nil {
		return false, err
	}
	return !sa.Before(sb), nil
}

// EqualAt applies the Default calendar.
func EqualAt(a, b time.Time, unit Unit) (bool, error) {
	return Default.EqualAt(a, b, unit)
}

// NotEqualAt applies the Default calendar.
func NotEqualAt(a, b time.Time, unit Unit) (bool, error) {
	return Default.NotEqualAt(a, b, unit)
}

// BeforeAt applies the Default calendar.
func BeforeAt(a, b time.Time, unit Unit) (bool, error) {
	return Default.BeforeAt(a, b, unit)
}

// BeforeOrEqualAt applies the Default calendar.
func BeforeOrEqualAt(a, b time.Time, unit Unit) (bool, error) {
	return Default.BeforeOrEqualAt(a, b, unit)
}

// AfterAt applies the Default calendar.
func AfterAt(a, b time.Time, unit Unit) (bool, error) {
	return Default.AfterAt(a, b, unit)
}

// AfterOrEqualAt applies the Default calendar.
func AfterOrEqualAt(a, b time.Time, unit Unit) (bool, error) {
	return Default.AfterOrEqualAt(a, b, unit)
}

// Min returns the earliest of the given instants. Ties keep the first one
// seen, so the scan is stable left to right. Calling Min with no arguments
// fails with *EmptyArgumentError.
func Min(instants ...time.Time) (time.Time, error) {
	if len(instants) == 0 {
		return time.Time{}, &EmptyArgumentError{Op: "Min"}
	}
	best := instants[0]
	for _, t := range instants[1:] {
		if t.Before(best) {
			best = t
		}
	}
	return best, nil
}

// Max returns the latest of the given instants, with the same stability and
// empty-argument behavior as Min.
func Max(instants ...time.Time) (time.Time, error) {
	if len(instants) == 0 {
		return time.Time{}, &EmptyArgumentError{Op: "Max"}
	}
	best := instants[0]
	for _, t := range instants[1:] {
		if t.After(best) {
			best = t
		}
	}
	return best, nil
}
