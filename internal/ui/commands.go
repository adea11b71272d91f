// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package ui's commands.go file contains Bubble Tea commands that perform
// the store operations behind the TUI. Each command runs off the UI loop
// and reports back through one of the message types in messages.go.

package ui

import (
	"homeoffice-tracker/internal/dates"
	"homeoffice-tracker/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Bubble Tea Commands ---

// loadDaysCmd creates a command that reads the day file and compresses it
// into the run strings shown in the list.
func loadDaysCmd(st *store.Store) tea.Cmd {
	return func() tea.Msg {
		days, err := st.Load()
		if err != nil {
			return daysLoadedMsg{err: err}
		}
		runs := dates.Compress(days)
		lines := make([]string, len(runs))
		for i, r := range runs {
			lines[i] = r.String()
		}
		return daysLoadedMsg{runs: lines, days: len(days)}
	}
}

func addDaysCmd(st *store.Store, days []dates.Date) tea.Cmd {
	return func() tea.Msg {
		added, err := st.Add(days...)
		return daysAddedMsg{added: added, err: err}
	}
}

func removeDaysCmd(st *store.Store, days []dates.Date) tea.Cmd {
	return func() tea.Msg {
		removed, err := st.Remove(days...)
		return daysRemovedMsg{removed: removed, err: err}
	}
}
