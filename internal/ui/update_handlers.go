// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"strings"

	"homeoffice-tracker/internal/dates"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Update Handlers ---
// These methods handle key presses for specific UI states.

func (m *model) handleListKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return tea.Quit
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.runs)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keymap.Add):
		m.startInput(inputAdd)
	case key.Matches(msg, m.keymap.Remove):
		// Nothing to delete from an empty list.
		if len(m.runs) > 0 {
			m.startInput(inputRemove)
		}
	case key.Matches(msg, m.keymap.Enter):
		m.clearStatus()
		return addDaysCmd(m.store, []dates.Date{dates.Today()})
	}
	return nil
}

func (m *model) handleInputKeys(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Esc):
		m.closeInput()
		return nil
	case key.Matches(msg, m.keymap.Enter):
		return m.submitInput()
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// startInput opens the input box, prefilled with today's date for an add or
// with the selected run for a delete.
func (m *model) startInput(mode int) {
	m.currentState = stateInput
	m.inputMode = mode
	m.clearStatus()
	if mode == inputRemove && m.cursor < len(m.runs) {
		m.input.SetValue(m.runs[m.cursor])
	} else {
		m.input.SetValue(dates.Today().String())
	}
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *model) closeInput() {
	m.currentState = stateList
	m.input.Blur()
	m.input.SetValue("")
}

// submitInput parses the entered day or day range and dispatches the add or
// delete. A blank entry just closes the box. A value that does not parse
// keeps the box open so it can be corrected.
func (m *model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		m.closeInput()
		return nil
	}
	days, err := dates.ParseArg(value)
	if err != nil {
		m.setError(err.Error())
		return nil
	}
	mode := m.inputMode
	m.closeInput()
	m.clearStatus()
	if mode == inputRemove {
		return removeDaysCmd(m.store, days)
	}
	return addDaysCmd(m.store, days)
}

func (m *model) clearStatus() {
	m.status = ""
	m.statusErr = false
}

func (m *model) setError(text string) {
	m.status = text
	m.statusErr = true
}
