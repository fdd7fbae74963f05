package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dates"
)

// reference instant: Thursday June 15th 2023, 13:45:30.123 UTC.
func refInstant() time.Time {
	return time.Date(2023, 6, 15, 13, 45, 30, 123*int(time.Millisecond), time.UTC)
}

// TestAccessors_Get covers every getter against the reference instant.
func TestAccessors_Get(t *testing.T) {
	x := refInstant()

	assert.Equal(t, 123, dates.Milliseconds(x))
	assert.Equal(t, 30, dates.Seconds(x))
	assert.Equal(t, 45, dates.Minutes(x))
	assert.Equal(t, 13, dates.Hours(x))
	assert.Equal(t, 4, dates.DayOfWeek(x), "June 15th 2023 is a Thursday")
	assert.Equal(t, 15, dates.DayOfMonth(x))
	assert.Equal(t, 5, dates.MonthIndex(x), "June is month index 5")
	assert.Equal(t, 2023, dates.YearOf(x))
}

// TestAccessors_Set verifies each setter replaces exactly one field and
// leaves the rest untouched, including the literal value 0.
func TestAccessors_Set(t *testing.T) {
	x := refInstant()

	tests := []struct {
		name string
		got  time.Time
		want time.Time
	}{
		{
			name: "milliseconds to 0",
			got:  dates.WithMilliseconds(x, 0),
			want: time.Date(2023, 6, 15, 13, 45, 30, 0, time.UTC),
		},
		{
			name: "seconds",
			got:  dates.WithSeconds(x, 7),
			want: time.Date(2023, 6, 15, 13, 45, 7, 123*int(time.Millisecond), time.UTC),
		},
		{
			name: "minutes",
			got:  dates.WithMinutes(x, 0),
			want: time.Date(2023, 6, 15, 13, 0, 30, 123*int(time.Millisecond), time.UTC),
		},
		{
			name: "hours",
			got:  dates.WithHours(x, 6),
			want: time.Date(2023, 6, 15, 6, 45, 30, 123*int(time.Millisecond), time.UTC),
		},
		{
			name: "day of month",
			got:  dates.WithDayOfMonth(x, 1),
			want: time.Date(2023, 6, 1, 13, 45, 30, 123*int(time.Millisecond), time.UTC),
		},
		{
			name: "month index 0 is January",
			got:  dates.WithMonthIndex(x, 0),
			want: time.Date(2023, 1, 15, 13, 45, 30, 123*int(time.Millisecond), time.UTC),
		},
		{
			name: "year",
			got:  dates.WithYear(x, 1999),
			want: time.Date(1999, 6, 15, 13, 45, 30, 123*int(time.Millisecond), time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
			// the input instant is never mutated
			assert.Equal(t, refInstant(), x)
		})
	}
}

// TestMonthIndex_ZeroBasedContract pins the 0-based month seam: setting
// month 0 and reading it back reports January as 0.
func TestMonthIndex_ZeroBasedContract(t *testing.T) {
	x := refInstant()
	jan := dates.WithDayOfMonth(dates.WithMonthIndex(x, 0), 15)
	assert.Equal(t, 0, dates.MonthIndex(jan))
	assert.Equal(t, time.January, jan.Month())
}

// TestWithMonthIndex_Overflow documents the provider rule: a day of month
// that does not exist in the target month rolls forward.
func TestWithMonthIndex_Overflow(t *testing.T) {
	jan31 := time.Date(2021, 1, 31, 10, 0, 0, 0, time.UTC)
	got := dates.WithMonthIndex(jan31, 1) // February 31st does not exist
	assert.Equal(t, time.Date(2021, 3, 3, 10, 0, 0, 0, time.UTC), got)
}

// TestDayOfWeek_SundayConvention pins weekday 0 = Sunday, the package-wide
// convention.
func TestDayOfWeek_SundayConvention(t *testing.T) {
	sunday := time.Date(2023, 6, 11, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Sunday, sunday.Weekday())
	assert.Equal(t, 0, dates.DayOfWeek(sunday))
	assert.Equal(t, 0, dates.Weekday(sunday))
}

// TestWithDayOfWeek_ShiftsWithinWeek verifies the day-of-week setter moves
// by whole days while holding the time of day fixed.
func TestWithDayOfWeek_ShiftsWithinWeek(t *testing.T) {
	x := refInstant() // Thursday

	tests := []struct {
		name    string
		target  int
		wantDay int
	}{
		{"back to Sunday", 0, 11},
		{"back to Monday", 1, 12},
		{"same day", 4, 15},
		{"forward to Saturday", 6, 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := dates.WithDayOfWeek(x, tt.target)
			assert.Equal(t, tt.wantDay, got.Day())
			assert.Equal(t, tt.target, dates.DayOfWeek(got))
			// time of day untouched
			assert.Equal(t, 13, got.Hour())
			assert.Equal(t, 45, got.Minute())
			assert.Equal(t, 123, dates.Milliseconds(got))
		})
	}
}

// TestWeekday_ConfigurableStart verifies the offset is relative to the
// calendar's first day of week.
func TestWeekday_ConfigurableStart(t *testing.T) {
	mondayFirst := dates.Calendar{WeekStart: time.Monday}
	sunday := time.Date(2023, 6, 11, 0, 0, 0, 0, time.UTC)
	thursday := refInstant()

	assert.Equal(t, 6, mondayFirst.Weekday(sunday), "Sunday is the last day of a Monday-first week")
	assert.Equal(t, 3, mondayFirst.Weekday(thursday))

	// WithWeekday lands on the requested offset in the same week.
	got := mondayFirst.WithWeekday(thursday, 0)
	assert.Equal(t, time.Monday, got.Weekday())
	assert.Equal(t, 12, got.Day())
}

// TestRegistry_Dispatch drives Get/Set through the field registry and
// checks the typed rejection of unknown fields.
func TestRegistry_Dispatch(t *testing.T) {
	x := refInstant()

	got, err := dates.Get(x, dates.FieldMonth)
	require.NoError(t, err)
	assert.Equal(t, 5, got)

	set, err := dates.Set(x, dates.FieldHour, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, set.Hour())

	_, err = dates.Get(x, dates.Field(99))
	var fieldErr *dates.InvalidFieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, dates.Field(99), fieldErr.Field)

	_, err = dates.Set(x, dates.Field(99), 1)
	require.ErrorAs(t, err, &fieldErr)
}

// TestEpochMillis checks the exact integer epoch computation, including
// pre-epoch instants.
func TestEpochMillis(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want int64
	}{
		{"epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"epoch plus millis", time.Date(1970, 1, 1, 0, 0, 0, 123*int(time.Millisecond), time.UTC), 123},
		{"one day", time.Date(1970, 1, 2, 0, 0, 0, 0, time.UTC), 86_400_000},
		{"pre-epoch", time.Date(1969, 12, 31, 23, 59, 59, 0, time.UTC), -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dates.EpochMillis(tt.in))
		})
	}
}
