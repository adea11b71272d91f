// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// --- Message Handlers ---
// These methods apply the results of store operations to the model state.

func (m *model) handleDaysLoaded(msg daysLoadedMsg) tea.Cmd {
	m.loaded = true
	if msg.err != nil {
		m.setError(fmt.Sprintf("failed to load days: %v", msg.err))
		return nil
	}
	m.runs = msg.runs
	m.dayCount = msg.days
	// Clamp the cursor after a refresh shrinks the list.
	if m.cursor >= len(m.runs) {
		m.cursor = len(m.runs) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	return nil
}

func (m *model) handleDaysAdded(msg daysAddedMsg) tea.Cmd {
	if msg.err != nil {
		m.setError(fmt.Sprintf("failed to add: %v", msg.err))
		return loadDaysCmd(m.store)
	}
	if msg.added == 0 {
		m.status = "Already recorded."
	} else {
		m.status = fmt.Sprintf("Added %d day(s).", msg.added)
	}
	m.statusErr = false
	return loadDaysCmd(m.store)
}

func (m *model) handleDaysRemoved(msg daysRemovedMsg) tea.Cmd {
	if msg.err != nil {
		m.setError(fmt.Sprintf("failed to delete: %v", msg.err))
		return loadDaysCmd(m.store)
	}
	if msg.removed == 0 {
		m.status = "Nothing matched."
	} else {
		m.status = fmt.Sprintf("Deleted %d day(s).", msg.removed)
	}
	m.statusErr = false
	return loadDaysCmd(m.store)
}
