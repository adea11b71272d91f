// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

// state represents the different views or modes of the TUI.
type state int

const (
	stateList state = iota
	stateInput
)

// Constants for the input box modes.
const (
	inputAdd = iota + 1
	inputRemove
)

const (
	footerHeight   = 1 // Height reserved for the status line below the panes.
	inputBoxHeight = 4 // Bordered input pane: two border rows, title, text input.
)
