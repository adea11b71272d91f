// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"strings"

	"homeoffice-tracker/internal/export"

	"github.com/spf13/cobra"
)

// dayCompletionFunc provides dynamic completion of recorded days so
// remove can offer exactly the dates that exist in the data file.
func dayCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	st, err := openStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	// Ignore load errors during completion; no suggestions is fine.
	days, _ := st.Load()

	suggestions := make([]string, 0, len(days))
	for _, d := range days {
		if s := d.String(); strings.HasPrefix(s, toComplete) {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

// formatCompletionFunc provides completion for export format names.
func formatCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var suggestions []string
	for _, f := range export.Formats() {
		if strings.HasPrefix(f, toComplete) {
			suggestions = append(suggestions, f)
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}
