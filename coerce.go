package dates

import "time"

// coerceLayouts are the timestamp layouts ToTime tries for string inputs,
// most specific first. The bare date form resolves to midnight UTC.
var coerceLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ToTime normalizes a heterogeneous input to a time.Time.
//
// Accepted inputs: a time.Time (returned unchanged), a non-nil *time.Time,
// an int or int64 holding epoch milliseconds, or a string in one of the
// RFC 3339 / ISO date layouts. Everything else fails with
// *UnsupportedInputError.
//
// Epoch milliseconds are converted with exact integer arithmetic; float
// inputs are rejected rather than truncated, since a float64 cannot be
// trusted to carry a millisecond timestamp without loss.
func ToTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x != nil {
			return *x, nil
		}
	case int64:
		return time.UnixMilli(x), nil
	case int:
		return time.UnixMilli(int64(x)), nil
	case string:
		for _, layout := range coerceLayouts {
			if t, err := time.Parse(layout, x); err == nil {
				return t, nil
			}
		}
	}
	return time.Time{}, &UnsupportedInputError{Value: v}
}
