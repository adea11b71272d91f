// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"homeoffice-tracker/internal/dates"
)

func sampleDays() []dates.Date {
	return []dates.Date{
		dates.New(2025, time.May, 30),
		dates.New(2025, time.May, 31),
		dates.New(2025, time.June, 1),
		dates.New(2025, time.June, 4),
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range Formats() {
		if _, err := ParseFormat(name); err != nil {
			t.Errorf("ParseFormat(%q): %v", name, err)
		}
	}
	if f, err := ParseFormat("ICS"); err != nil || f != FormatICS {
		t.Errorf("ParseFormat(\"ICS\") = %v, %v, want ics", f, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat accepted an unknown format")
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleDays()); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	want := "2025-05-30 :: 2025-06-01\n2025-06-04\n"
	if buf.String() != want {
		t.Errorf("WriteText = %q, want %q", buf.String(), want)
	}
}

func TestWriteTextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleDays()); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	// Every exported line must parse back through the day-argument syntax.
	var back []dates.Date
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		parsed, err := dates.ParseArg(line)
		if err != nil {
			t.Fatalf("ParseArg(%q): %v", line, err)
		}
		back = append(back, parsed...)
	}
	if len(back) != len(sampleDays()) {
		t.Errorf("round trip produced %d days, want %d", len(back), len(sampleDays()))
	}
	for i, d := range sampleDays() {
		if back[i] != d {
			t.Errorf("round trip day %d = %v, want %v", i, back[i], d)
		}
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleDays()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	body := buf.String()

	if !strings.Contains(body, "Start,End,Days") {
		t.Error("Missing CSV header")
	}
	if !strings.Contains(body, "2025-05-30,2025-06-01,3") {
		t.Error("Missing run row in CSV")
	}
	if !strings.Contains(body, "2025-06-04,2025-06-04,1") {
		t.Error("Missing single-day row in CSV")
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleDays()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if snap.Count != 4 {
		t.Errorf("count = %d, want 4", snap.Count)
	}
	if len(snap.Days) != 4 || snap.Days[0] != "2025-05-30" {
		t.Errorf("days = %v", snap.Days)
	}
	if len(snap.Runs) != 2 {
		t.Fatalf("runs = %v, want 2 runs", snap.Runs)
	}
	if snap.Runs[0].Days != 3 || snap.Runs[0].End != "2025-06-01" {
		t.Errorf("first run = %+v", snap.Runs[0])
	}
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, nil); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	body := strings.TrimSpace(buf.String())
	// Empty sets still produce arrays, not nulls.
	if !strings.Contains(body, `"days":[]`) || !strings.Contains(body, `"runs":[]`) {
		t.Errorf("WriteJSON(nil) = %s", body)
	}
}

func TestWriteICS(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteICS(&buf, sampleDays()); err != nil {
		t.Fatalf("WriteICS: %v", err)
	}
	body := buf.String()

	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//homeoffice-tracker//EN",
		"X-WR-CALNAME:Home Office Days",
		"CALSCALE:GREGORIAN",
		"BEGIN:VEVENT",
		"END:VEVENT",
		"END:VCALENDAR",
	}
	for _, field := range requiredFields {
		if !strings.Contains(body, field) {
			t.Errorf("ICS output missing required field: %s", field)
		}
	}

	// One all-day event per run, with exclusive DTEND.
	if got := strings.Count(body, "BEGIN:VEVENT"); got != 2 {
		t.Errorf("Expected 2 events, got %d", got)
	}
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20250530") {
		t.Error("Event should be all-day (DTSTART;VALUE=DATE)")
	}
	if !strings.Contains(body, "DTEND;VALUE=DATE:20250602") {
		t.Error("Run event should end the day after its last day")
	}
	if !strings.Contains(body, "UID:2025-05-30-2025-06-01@homeoffice-tracker") {
		t.Error("Missing stable run UID")
	}
	if !strings.Contains(body, "SUMMARY:Home office (3 days)") {
		t.Error("Missing run summary")
	}

	// The download variant is not a subscription feed.
	if strings.Contains(body, "METHOD:PUBLISH") {
		t.Error("Plain ICS export should not carry METHOD:PUBLISH")
	}
}

func TestWriteSubscriptionICS(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSubscriptionICS(&buf, sampleDays()); err != nil {
		t.Fatalf("WriteSubscriptionICS: %v", err)
	}
	body := buf.String()

	if !strings.Contains(body, "METHOD:PUBLISH") {
		t.Error("Subscription feed missing METHOD:PUBLISH")
	}
	if !strings.Contains(body, "X-PUBLISHED-TTL:PT1H") {
		t.Error("Subscription feed missing refresh interval")
	}
}

func TestWriteDispatch(t *testing.T) {
	for _, name := range Formats() {
		var buf bytes.Buffer
		if err := Write(&buf, Format(name), sampleDays()); err != nil {
			t.Errorf("Write(%s): %v", name, err)
		}
		if buf.Len() == 0 {
			t.Errorf("Write(%s) produced no output", name)
		}
	}
}
