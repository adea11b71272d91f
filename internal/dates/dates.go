// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package dates implements the calendar-day type used throughout
// homeoffice-tracker, together with the argument syntax for naming days:
// a single date in ISO (2006-01-02) or dotted (02.01.2006) form, or an
// inclusive range of days written as "start::end".
package dates

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Layouts accepted by Parse, tried in order.
const (
	layoutISO    = "2006-01-02"
	layoutDotted = "02.01.2006"
)

// RangeSeparator splits the two endpoints of a day-range argument.
const RangeSeparator = "::"

// Date is a single calendar day. It carries no time of day and no time
// zone; two Dates are equal exactly when they name the same day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the Date for the given year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// FromTime truncates t to its calendar day in t's location.
func FromTime(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Year: year, Month: month, Day: day}
}

// Today returns the current day in local time.
func Today() Date {
	return FromTime(time.Now())
}

// Time returns the Date as a time.Time at midnight UTC. It is the
// canonical conversion used for day arithmetic and ICS formatting.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders the Date in ISO form (YYYY-MM-DD), the format used in
// the data file and all output.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Next returns the following calendar day, rolling over months and
// years as needed.
func (d Date) Next() Date {
	return FromTime(time.Date(d.Year, d.Month, d.Day+1, 0, 0, 0, 0, time.UTC))
}

// Compare orders two Dates chronologically, returning -1, 0 or +1.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Before reports whether d falls before o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d falls after o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d == Date{} }

// Parse reads a single date in either accepted layout. The ISO layout
// is tried first; it is also the layout written back to disk.
func Parse(s string) (Date, error) {
	for _, layout := range []string{layoutISO, layoutDotted} {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or DD.MM.YYYY", s)
}

// ParseArg reads a day argument: either one date or an inclusive range
// "start::end". Whitespace around either endpoint is ignored, so the
// lines produced by run compression ("a :: b") parse back to the same
// days. A range whose start lies after its end is an error.
func ParseArg(arg string) ([]Date, error) {
	parts := strings.Split(arg, RangeSeparator)
	switch len(parts) {
	case 1:
		d, err := Parse(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, err
		}
		return []Date{d}, nil
	case 2:
		start, err := Parse(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid range start: %w", err)
		}
		end, err := Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid range end: %w", err)
		}
		if start.After(end) {
			return nil, fmt.Errorf("invalid range %q: start %s is after end %s", arg, start, end)
		}
		var days []Date
		for d := start; !d.After(end); d = d.Next() {
			days = append(days, d)
		}
		return days, nil
	default:
		return nil, fmt.Errorf("invalid day argument %q: expected a date or start%send", arg, RangeSeparator)
	}
}

// Normalize sorts days ascending and removes duplicates, returning the
// canonical form stored on disk.
func Normalize(days []Date) []Date {
	out := slices.Clone(days)
	slices.SortFunc(out, Date.Compare)
	return slices.Compact(out)
}
