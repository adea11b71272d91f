// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's messages.go file defines the message types used in the Bubble Tea
// Model-View-Update architecture. These messages are sent between components
// to communicate state changes and trigger UI updates.

package ui

// --- Message Types ---
// These types define the events that drive the TUI's state updates.
// In the Bubble Tea framework, messages are sent to the Update method
// which then updates the model state accordingly.

// Day list messages
type daysLoadedMsg struct {
	runs []string // Compressed day runs, one per list row
	days int      // Total number of days behind the runs
	err  error
}

// Mutation result messages
type daysAddedMsg struct {
	added int // Number of days that were not already on record
	err   error
}
type daysRemovedMsg struct {
	removed int // Number of days actually taken off the record
	err     error
}
