package feed

import "time"

// Clock abstracts time.Now() to allow deterministic testing. It anchors the
// default window when the CLI is given no explicit bounds.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}
