// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import (
	"homeoffice-tracker/internal/store"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type model struct {
	store  *store.Store
	keymap KeyMap

	runs     []string // compressed day runs, one per list row
	dayCount int
	cursor   int // which run is selected

	currentState state
	inputMode    int // inputAdd or inputRemove, set while currentState == stateInput
	input        textinput.Model

	status    string // transient line under the panes
	statusErr bool   // render the status line in the error style
	loaded    bool

	width  int
	height int
}

// --- Model Implementation ---

func InitialModel(st *store.Store) model {
	return model{
		store:        st,
		keymap:       DefaultKeyMap,
		currentState: stateList,
		input:        newDayInput(),
	}
}

func (m model) Init() tea.Cmd {
	return loadDaysCmd(m.store) // Load the day file on startup
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	// Is it a key press?
	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m, tea.Quit
		}
		switch m.currentState {
		case stateInput:
			cmd = m.handleInputKeys(msg)
		default:
			cmd = m.handleListKeys(msg)
		}

	// Custom messages
	case daysLoadedMsg:
		cmd = m.handleDaysLoaded(msg)
	case daysAddedMsg:
		cmd = m.handleDaysAdded(msg)
	case daysRemovedMsg:
		cmd = m.handleDaysRemoved(msg)
	}

	return m, cmd
}

func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return statusStyle.Render("Loading...")
	}
	return m.renderMainView()
}
