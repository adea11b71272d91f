// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package ui

import "github.com/charmbracelet/bubbles/textinput"

// --- Form Creation ---

// newDayInput creates the text input used to add or delete a specific day.
// The value accepts a single date or an inclusive "start :: end" range, in
// either YYYY-MM-DD or DD.MM.YYYY form.
func newDayInput() textinput.Model {
	t := textinput.New()
	t.Placeholder = "YYYY-MM-DD"
	t.CharLimit = 60
	t.Width = 40
	return t
}
