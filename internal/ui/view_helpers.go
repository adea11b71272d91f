// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// --- View Helpers ---

// helpLines is the keybinding reference shown in the right-hand pane.
var helpLines = []string{
	"Enter to add the current day",
	"A to add a specific day",
	"D to delete the selected day",
	"Esc or Q to exit",
}

// renderMainView composes the day list, the optional input box and the help
// pane, with a status line underneath. The list column takes roughly four
// fifths of the width, the help pane the rest.
func (m *model) renderMainView() string {
	helpWidth := m.width / 5
	if helpWidth < 26 {
		helpWidth = 26 // Keep the keybinding text readable on narrow terminals.
	}
	if helpWidth > m.width/2 {
		helpWidth = m.width / 2
	}
	listWidth := m.width - helpWidth

	paneHeight := m.height - footerHeight
	listHeight := paneHeight
	if m.currentState == stateInput {
		listHeight -= inputBoxHeight
	}

	listInnerHeight := listHeight - 2
	if listInnerHeight < 1 {
		listInnerHeight = 1
	}
	helpInnerHeight := paneHeight - 2
	if helpInnerHeight < 1 {
		helpInnerHeight = 1
	}

	left := m.renderListPane(listWidth-2, listInnerHeight)
	if m.currentState == stateInput {
		left = lipgloss.JoinVertical(lipgloss.Left, left, m.renderInputPane(listWidth-2))
	}
	right := m.renderHelpPane(helpWidth-2, helpInnerHeight)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderStatusLine())
}

func (m *model) renderListPane(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Home Office Days"))
	b.WriteString("\n")

	switch {
	case !m.loaded:
		b.WriteString(statusLoadingStyle.Render("Loading..."))
	case len(m.runs) == 0:
		b.WriteString(statusLoadingStyle.Render("No days recorded yet."))
	default:
		// Keep the cursor visible when the list outgrows the pane.
		visible := height - 1 // Minus the title row.
		if visible < 1 {
			visible = 1
		}
		start := 0
		if m.cursor >= visible {
			start = m.cursor - visible + 1
		}
		end := start + visible
		if end > len(m.runs) {
			end = len(m.runs)
		}
		for i := start; i < end; i++ {
			if i > start {
				b.WriteString("\n")
			}
			if i == m.cursor {
				b.WriteString(cursorStyle.Render("> ") + selectedStyle.Render(m.runs[i]))
			} else {
				b.WriteString("  " + m.runs[i])
			}
		}
	}
	return paneBorderStyle.Width(width).Height(height).Render(b.String())
}

func (m *model) renderInputPane(width int) string {
	content := titleStyle.Render("Input") + "\n" + m.input.View()
	return paneBorderStyle.Width(width).Render(content)
}

func (m *model) renderHelpPane(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Help"))
	b.WriteString("\n")
	b.WriteString("Keybindings:")
	for _, line := range helpLines {
		b.WriteString("\n- " + line)
	}
	return paneBorderStyle.Width(width).Height(height).Render(b.String())
}

func (m *model) renderStatusLine() string {
	if m.status != "" {
		if m.statusErr {
			return errorStyle.Render(m.status)
		}
		return successStyle.Render(m.status)
	}
	return footerStyle.Render(fmt.Sprintf("%d day(s) on record", m.dayCount))
}
