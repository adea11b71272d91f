// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package dates

import (
	"slices"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "iso", input: "2025-03-09", want: New(2025, time.March, 9)},
		{name: "dotted", input: "09.03.2025", want: New(2025, time.March, 9)},
		{name: "iso wins over dotted", input: "2025-01-02", want: New(2025, time.January, 2)},
		{name: "not zero padded", input: "2025-3-9", wantErr: true},
		{name: "slash layout", input: "2025/03/09", wantErr: true},
		{name: "month out of range", input: "2025-13-01", wantErr: true},
		{name: "garbage", input: "yesterday", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseArg(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Date
		wantErr bool
	}{
		{
			name:  "single day",
			input: "2025-06-01",
			want:  []Date{New(2025, time.June, 1)},
		},
		{
			name:  "range",
			input: "2025-06-01::2025-06-03",
			want: []Date{
				New(2025, time.June, 1),
				New(2025, time.June, 2),
				New(2025, time.June, 3),
			},
		},
		{
			name:  "range with spaces",
			input: "2025-06-01 :: 2025-06-03",
			want: []Date{
				New(2025, time.June, 1),
				New(2025, time.June, 2),
				New(2025, time.June, 3),
			},
		},
		{
			name:  "mixed layouts",
			input: "30.06.2025::2025-07-02",
			want: []Date{
				New(2025, time.June, 30),
				New(2025, time.July, 1),
				New(2025, time.July, 2),
			},
		},
		{
			name:  "same day range",
			input: "2025-06-01::2025-06-01",
			want:  []Date{New(2025, time.June, 1)},
		},
		{name: "reversed range", input: "2025-06-03::2025-06-01", wantErr: true},
		{name: "three parts", input: "2025-06-01::2025-06-02::2025-06-03", wantErr: true},
		{name: "bad start", input: "junk::2025-06-03", wantErr: true},
		{name: "bad end", input: "2025-06-01::junk", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseArg(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseArg(%q) = %v, want error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseArg(%q): %v", tt.input, err)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("ParseArg(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNextRollsOver(t *testing.T) {
	tests := []struct {
		in, want Date
	}{
		{New(2025, time.January, 30), New(2025, time.January, 31)},
		{New(2025, time.January, 31), New(2025, time.February, 1)},
		{New(2025, time.December, 31), New(2026, time.January, 1)},
		{New(2024, time.February, 28), New(2024, time.February, 29)},
		{New(2025, time.February, 28), New(2025, time.March, 1)},
	}
	for _, tt := range tests {
		if got := tt.in.Next(); got != tt.want {
			t.Errorf("%v.Next() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalize(t *testing.T) {
	days := []Date{
		New(2025, time.June, 3),
		New(2025, time.June, 1),
		New(2025, time.June, 3),
		New(2024, time.December, 31),
	}
	want := []Date{
		New(2024, time.December, 31),
		New(2025, time.June, 1),
		New(2025, time.June, 3),
	}
	if got := Normalize(days); !slices.Equal(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
	// The input slice is left untouched.
	if days[0] != New(2025, time.June, 3) {
		t.Error("Normalize modified its input")
	}
}

func TestCompress(t *testing.T) {
	days := []Date{
		New(2025, time.May, 30),
		New(2025, time.May, 31),
		New(2025, time.June, 1),
		New(2025, time.June, 4),
		New(2025, time.June, 6),
		New(2025, time.June, 7),
	}
	runs := Compress(days)
	want := []string{
		"2025-05-30 :: 2025-06-01",
		"2025-06-04",
		"2025-06-06 :: 2025-06-07",
	}
	if len(runs) != len(want) {
		t.Fatalf("Compress produced %d runs, want %d: %v", len(runs), len(want), runs)
	}
	for i, r := range runs {
		if r.String() != want[i] {
			t.Errorf("run %d = %q, want %q", i, r.String(), want[i])
		}
	}
	if got := runs[0].Len(); got != 3 {
		t.Errorf("runs[0].Len() = %d, want 3", got)
	}
}

func TestCompressRoundTrip(t *testing.T) {
	days := []Date{
		New(2025, time.May, 30),
		New(2025, time.May, 31),
		New(2025, time.June, 1),
		New(2025, time.June, 4),
	}
	var back []Date
	for _, r := range Compress(days) {
		parsed, err := ParseArg(r.String())
		if err != nil {
			t.Fatalf("ParseArg(%q): %v", r.String(), err)
		}
		back = append(back, parsed...)
	}
	if !slices.Equal(back, days) {
		t.Errorf("round trip = %v, want %v", back, days)
	}
}

func TestCompressEmpty(t *testing.T) {
	if runs := Compress(nil); runs != nil {
		t.Errorf("Compress(nil) = %v, want nil", runs)
	}
}
