// Package feed ingests calendar data (iCalendar events, vCard birthdays)
// into plain schedule entries that the dates engine can window and filter.
package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-dates"
	"github.com/tartampluch/go-dates/internal/config"
)

// Entry is one schedule item extracted from a feed.
type Entry struct {
	// Name is the event summary or the contact's display name.
	Name string

	// Start is the entry's starting instant.
	Start time.Time
}

// DecodeICS reads every VCALENDAR object from the stream and extracts one
// entry per event. Events without a usable DTSTART are skipped with a
// warning to maximize data recovery; a malformed stream fails outright.
func DecodeICS(ctx context.Context, r io.Reader, loc *time.Location) ([]Entry, error) {
	dec := ical.NewDecoder(r)
	var entries []Entry

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		cal, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrICalDecode, err)
		}

		for _, ev := range cal.Events() {
			start, err := ev.DateTimeStart(loc)
			if err != nil || start.IsZero() {
				slog.Warn(config.MsgSkippedEvent,
					config.LogKeyComponent, config.CompFeed,
					config.LogKeyError, err)
				continue
			}

			name := config.FallbackName
			if p := ev.Props.Get(ical.PropSummary); p != nil && p.Value != "" {
				name = p.Value
			}

			entries = append(entries, Entry{Name: name, Start: start})
		}
	}
	return entries, nil
}

// DecodeVCF reads a vCard stream and projects each contact's birthday into
// the given year as a midnight entry in loc. Cards without a parseable BDAY
// are skipped silently, matching the tolerant ingestion of address-book
// exports found in the wild.
func DecodeVCF(ctx context.Context, r io.Reader, year int, loc *time.Location) ([]Entry, error) {
	dec := vcard.NewDecoder(r)
	var entries []Entry

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Log and continue to the next card to maximize data recovery.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompFeed,
				config.LogKeyError, err)
			continue
		}

		bday := card.Get(vcard.FieldBirthday)
		if bday == nil || bday.Value == "" {
			continue
		}

		birthDate, err := parseBirthday(bday.Value)
		if err != nil {
			slog.Debug(config.MsgSkippedDate,
				config.LogKeyComponent, config.CompFeed,
				config.LogKeyValue, bday.Value)
			continue
		}

		// Name strategy: FN (formatted) > N (structured) > fallback.
		name := config.FallbackName
		if fn := card.Get(vcard.FieldFormattedName); fn != nil && fn.Value != "" {
			name = fn.Value
		} else if n := card.Get(vcard.FieldName); n != nil && n.Value != "" {
			name = n.Value
		}

		// Projection into the target year follows the time package's
		// normalization: Feb 29 becomes Mar 1 in non-leap years.
		start := time.Date(year, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
		entries = append(entries, Entry{Name: name, Start: start})
	}
	return entries, nil
}

// parseBirthday handles the vCard date formats encountered in the wild,
// full dates first, then the year-less --MM-DD forms anchored to a leap
// year so Feb 29 survives parsing.
func parseBirthday(value string) (time.Time, error) {
	formatsWithYear := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formatsWithYear {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}

	formatsWithoutYear := []string{config.DateFormatNoYearD, config.DateFormatNoYearB}
	for _, f := range formatsWithoutYear {
		if t, err := time.Parse(f, value); err == nil {
			return time.Date(config.DefaultLeapYear, t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.New(config.ErrDateParse)
}

// Filter keeps the entries whose start falls inside [min, max] at the given
// granularity, preserving input order. Zero-value bounds are open.
func Filter(cal dates.Calendar, entries []Entry, min, max time.Time, unit dates.Unit) ([]Entry, error) {
	var matched []Entry
	for _, e := range entries {
		ok, err := cal.InRange(e.Start, min, max, unit)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, e)
		}
	}

	slog.Debug(config.MsgFilterDone,
		config.LogKeyComponent, config.CompFeed,
		config.LogKeyUnit, unit.String(),
		config.LogKeyEntries, len(entries),
		config.LogKeyMatched, len(matched),
	)
	return matched, nil
}

// Window returns the bucket of the given granularity containing the
// clock's current instant, as an inclusive [start, end] pair.
func Window(clock Clock, cal dates.Calendar, unit dates.Unit) (time.Time, time.Time, error) {
	now := clock.Now()
	start, err := cal.StartOf(now, unit)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := cal.EndOf(now, unit)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
