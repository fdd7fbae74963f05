package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-dates"
)

// TestToTime_Identity verifies that an already-constructed instant passes
// through unchanged, zone included.
func TestToTime_Identity(t *testing.T) {
	paris := time.FixedZone("UTC+2", 2*60*60)
	in := time.Date(2023, 6, 15, 13, 45, 30, 0, paris)

	out, err := dates.ToTime(in)
	require.NoError(t, err)
	assert.True(t, out.Equal(in))
	assert.Equal(t, in.Location(), out.Location())

	// Pointer form dereferences.
	out, err = dates.ToTime(&in)
	require.NoError(t, err)
	assert.True(t, out.Equal(in))
}

// TestToTime_EpochMillis checks the integer interop path: epoch milliseconds
// in and out must match exactly, with no float involved.
func TestToTime_EpochMillis(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int64
	}{
		{"int64 epoch", int64(1592_000_000_123), 1592_000_000_123},
		{"int epoch", int(86_400_000), 86_400_000},
		{"zero epoch", int64(0), 0},
		{"pre-epoch", int64(-1000), -1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := dates.ToTime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, dates.EpochMillis(out))
		})
	}
}

// TestToTime_Strings covers the accepted layout ladder.
func TestToTime_Strings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"RFC3339", "2020-01-01T00:00:00Z", time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"RFC3339 with offset", "2020-01-01T12:00:00+02:00", time.Date(2020, 1, 1, 12, 0, 0, 0, time.FixedZone("", 2*60*60))},
		{"bare datetime", "2020-01-01T12:30:45", time.Date(2020, 1, 1, 12, 30, 45, 0, time.UTC)},
		{"bare date", "2023-06-15", time.Date(2023, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := dates.ToTime(tt.input)
			require.NoError(t, err)
			assert.True(t, out.Equal(tt.want), "parsed %v, want %v", out, tt.want)
		})
	}
}

// TestToTime_Unsupported verifies the typed rejection of everything the
// coercion layer cannot interpret, floats included.
func TestToTime_Unsupported(t *testing.T) {
	var nilTime *time.Time

	tests := []struct {
		name  string
		input any
	}{
		{"nil", nil},
		{"nil pointer", nilTime},
		{"float64", float64(1592000000123)},
		{"bool", true},
		{"garbage string", "not-a-date"},
		{"struct", struct{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := dates.ToTime(tt.input)
			require.Error(t, err)

			var inputErr *dates.UnsupportedInputError
			assert.ErrorAs(t, err, &inputErr)
		})
	}
}
