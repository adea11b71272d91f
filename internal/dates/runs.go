// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package dates

// Run is a maximal stretch of consecutive days, Start and End inclusive.
// A single day is a Run whose Start equals its End.
type Run struct {
	Start Date
	End   Date
}

// Len returns the number of days covered by the run.
func (r Run) Len() int {
	return int(r.End.Time().Sub(r.Start.Time()).Hours()/24) + 1
}

// String renders the run in the export format: a lone date as
// "YYYY-MM-DD", a longer run as "YYYY-MM-DD :: YYYY-MM-DD". Both forms
// parse back to the original days through ParseArg.
func (r Run) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return r.Start.String() + " " + RangeSeparator + " " + r.End.String()
}

// Days expands the run back into its individual days.
func (r Run) Days() []Date {
	var days []Date
	for d := r.Start; !d.After(r.End); d = d.Next() {
		days = append(days, d)
	}
	return days
}

// Compress folds a sorted, duplicate-free slice of days into maximal
// runs of consecutive days, preserving order.
func Compress(days []Date) []Run {
	var runs []Run
	for _, d := range days {
		if n := len(runs); n > 0 && runs[n-1].End.Next() == d {
			runs[n-1].End = d
			continue
		}
		runs = append(runs, Run{Start: d, End: d})
	}
	return runs
}
