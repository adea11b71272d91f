// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package export renders the recorded day set in the supported output
// formats. The text format is the canonical one: its run-compressed
// lines parse back into the same days through the day-argument syntax.
package export

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"homeoffice-tracker/internal/dates"
)

// Format names an output format of the export command.
type Format string

const (
	FormatText Format = "text"
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatICS  Format = "ics"
)

// DefaultFormat is used when neither the flag nor the config file picks one.
const DefaultFormat = FormatText

const icsProductID = "-//homeoffice-tracker//EN"

// Formats lists the accepted format names for completion and usage text.
func Formats() []string {
	return []string{string(FormatText), string(FormatCSV), string(FormatJSON), string(FormatICS)}
}

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatCSV, FormatJSON, FormatICS:
		return f, nil
	default:
		return "", fmt.Errorf("unknown export format %q (expected one of: %s)", s, strings.Join(Formats(), ", "))
	}
}

// Write renders days to w in the given format.
func Write(w io.Writer, format Format, days []dates.Date) error {
	switch format {
	case FormatText:
		return WriteText(w, days)
	case FormatCSV:
		return WriteCSV(w, days)
	case FormatJSON:
		return WriteJSON(w, days)
	case FormatICS:
		return WriteICS(w, days)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
}

// WriteText writes one run per line: a lone day as "YYYY-MM-DD", a
// stretch of consecutive days as "YYYY-MM-DD :: YYYY-MM-DD".
func WriteText(w io.Writer, days []dates.Date) error {
	bw := bufio.NewWriter(w)
	for _, r := range dates.Compress(days) {
		fmt.Fprintln(bw, r.String())
	}
	return bw.Flush()
}

// WriteCSV writes one row per run with its start, end and day count.
func WriteCSV(w io.Writer, days []dates.Date) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Start,End,Days")
	for _, r := range dates.Compress(days) {
		fmt.Fprintf(bw, "%s,%s,%d\n", r.Start, r.End, r.Len())
	}
	return bw.Flush()
}

// RunInfo is the JSON shape of one run of consecutive days.
type RunInfo struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  int    `json:"days"`
}

// Snapshot is the JSON document shared by the export command and the
// HTTP API: the full day list plus its run-compressed form.
type Snapshot struct {
	Count int       `json:"count"`
	Days  []string  `json:"days"`
	Runs  []RunInfo `json:"runs"`
}

// BuildSnapshot assembles the JSON document for a day set.
func BuildSnapshot(days []dates.Date) Snapshot {
	snap := Snapshot{
		Count: len(days),
		Days:  make([]string, 0, len(days)),
		Runs:  []RunInfo{},
	}
	for _, d := range days {
		snap.Days = append(snap.Days, d.String())
	}
	for _, r := range dates.Compress(days) {
		snap.Runs = append(snap.Runs, RunInfo{
			Start: r.Start.String(),
			End:   r.End.String(),
			Days:  r.Len(),
		})
	}
	return snap
}

// WriteJSON writes the Snapshot document for days.
func WriteJSON(w io.Writer, days []dates.Date) error {
	if err := json.NewEncoder(w).Encode(BuildSnapshot(days)); err != nil {
		return fmt.Errorf("failed to encode JSON export: %w", err)
	}
	return nil
}

// WriteICS writes an iCalendar file with one all-day event per run.
func WriteICS(w io.Writer, days []dates.Date) error {
	return writeCalendar(w, days, false)
}

// WriteSubscriptionICS writes the calendar-subscription variant of the
// ICS export: it adds METHOD:PUBLISH and a suggested refresh interval so
// calendar apps treat the feed as a live subscription.
func WriteSubscriptionICS(w io.Writer, days []dates.Date) error {
	return writeCalendar(w, days, true)
}

func writeCalendar(w io.Writer, days []dates.Date, subscription bool) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "BEGIN:VCALENDAR")
	fmt.Fprintln(bw, "VERSION:2.0")
	fmt.Fprintf(bw, "PRODID:%s\n", icsProductID)
	if subscription {
		fmt.Fprintln(bw, "METHOD:PUBLISH")
	}
	fmt.Fprintln(bw, "X-WR-CALNAME:Home Office Days")
	fmt.Fprintln(bw, "CALSCALE:GREGORIAN")
	if subscription {
		fmt.Fprintln(bw, "X-PUBLISHED-TTL:PT1H") // Suggest refresh every 1 hour
	}

	dtstamp := time.Now().UTC().Format("20060102T150405Z")
	for _, r := range dates.Compress(days) {
		// UID must be stable across exports so calendar apps can update
		// events in place.
		uid := fmt.Sprintf("%s-%s@homeoffice-tracker", r.Start, r.End)

		fmt.Fprintln(bw, "BEGIN:VEVENT")
		fmt.Fprintf(bw, "UID:%s\n", uid)
		fmt.Fprintf(bw, "DTSTAMP:%s\n", dtstamp)
		fmt.Fprintf(bw, "DTSTART;VALUE=DATE:%s\n", r.Start.Time().Format("20060102"))
		// DTEND is exclusive for all-day events.
		fmt.Fprintf(bw, "DTEND;VALUE=DATE:%s\n", r.End.Next().Time().Format("20060102"))
		if n := r.Len(); n > 1 {
			fmt.Fprintf(bw, "SUMMARY:Home office (%d days)\n", n)
		} else {
			fmt.Fprintln(bw, "SUMMARY:Home office")
		}
		fmt.Fprintln(bw, "END:VEVENT")
	}

	fmt.Fprintln(bw, "END:VCALENDAR")
	return bw.Flush()
}
