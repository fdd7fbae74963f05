// Package dates is a calendar-arithmetic engine built on the standard time
// package: bucket normalization (StartOf/EndOf), unit-truncated comparisons,
// field accessors with JavaScript-style conventions (0-based months, Sunday
// as weekday 0), and differences expressed in a chosen calendar unit.
//
// Every operation is a pure function over immutable time.Time values; the
// package holds no mutable state and is safe for concurrent use. Operations
// that depend on the first day of the week are methods on Calendar; the
// package-level functions use the Sunday-first Default calendar.
//
// The granularity ladder is closed: Millisecond, Second, Minute, Hour, Day,
// Week, Month, Year, Decade, Century. Any value outside it is rejected with
// an *InvalidUnitError rather than silently ignored.
package dates
