// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"homeoffice-tracker/cmd/tui"
	"homeoffice-tracker/internal/config"
	"homeoffice-tracker/internal/dates"
	"homeoffice-tracker/internal/logger"
	"homeoffice-tracker/internal/store"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	statusColor     = color.New(color.FgCyan)
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

var dataDirFlag string

var rootCmd = &cobra.Command{
	Use:   "hot",
	Short: "Home Office Tracker CLI",
	Long: `A command-line tool to track the days you worked from home.

Days are kept in a plain text file (one date per line) in the data
directory. Dates are accepted as 2006-01-02 or 02.01.2006, and inclusive
ranges as start::end. Running hot without a subcommand opens the
terminal UI.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.EnsureConfigDir(); err != nil {
			return fmt.Errorf("failed to ensure config directory: %w", err)
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Flags-only invocations behave like a bare hot: open the TUI.
		logger.InitLogger(true)
		tui.RunTUI(dataDirFlag)
	},
}

func RunCLI() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&dataDirFlag, "data-dir", "d", "", "directory holding the day data file")
	listCmd.Flags().IntVar(&listYearFlag, "year", 0, "only list days in the given year")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dataDirCmd)
}

// openStore resolves the data directory from flag, environment and
// config, and returns the store over it.
func openStore() (*store.Store, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	dir, err := config.DataDir(cfg, dataDirFlag)
	if err != nil {
		return nil, err
	}
	return store.New(dir), nil
}

// resolveDays parses day arguments, defaulting to today when none are
// given. Ranges are expanded and the result is sorted and deduplicated.
func resolveDays(args []string) ([]dates.Date, error) {
	if len(args) == 0 {
		return []dates.Date{dates.Today()}, nil
	}
	var days []dates.Date
	for _, arg := range args {
		parsed, err := dates.ParseArg(arg)
		if err != nil {
			return nil, err
		}
		days = append(days, parsed...)
	}
	return dates.Normalize(days), nil
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal UI",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		logger.InitLogger(true)
		tui.RunTUI(dataDirFlag)
	},
}

var addCmd = &cobra.Command{
	Use:   "add [day...]",
	Short: "Record home-office days (defaults to today)",
	Long: `Records one or more home-office days in the data file.

Each argument is a single date (2025-06-01 or 01.06.2025) or an
inclusive range written as start::end. Without arguments, today is
recorded. Recording an already recorded day is not an error.`,
	Example: "  hot add\n  hot add 2025-06-01\n  hot add 30.05.2025::01.06.2025",
	Run: func(cmd *cobra.Command, args []string) {
		days, err := resolveDays(args)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		st, err := openStore()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		added, err := st.Add(days...)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error adding dates: %v\n", err)
			os.Exit(1)
		}

		for _, d := range days {
			successColor.Printf("Date added successfully: %s\n", d)
		}
		logger.Info("days added", "requested", len(days), "new", added, "file", st.Path())
	},
}

var removeCmd = &cobra.Command{
	Use:     "remove [day...]",
	Aliases: []string{"rm"},
	Short:   "Remove recorded home-office days (defaults to today, alias: rm)",
	Long: `Removes one or more days from the data file.

Each argument is a single date or an inclusive range written as
start::end, exactly as for add. Without arguments, today is removed.
Removing a day that was never recorded is not an error.`,
	Example:           "  hot remove\n  hot rm 2025-06-01\n  hot rm 2025-05-30::2025-06-01",
	ValidArgsFunction: dayCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		days, err := resolveDays(args)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		st, err := openStore()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		removed, err := st.Remove(days...)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error removing dates: %v\n", err)
			os.Exit(1)
		}

		for _, d := range days {
			successColor.Printf("Date deleted successfully: %s\n", d)
		}
		logger.Info("days removed", "requested", len(days), "removed", removed, "file", st.Path())
	},
}

var listYearFlag int

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded home-office days",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		days, err := st.Load()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error loading dates: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("Home Office Days:")
		count := 0
		for _, d := range days {
			if listYearFlag != 0 && d.Year != listYearFlag {
				continue
			}
			fmt.Println(d)
			count++
		}
		dimColor.Printf("%d day(s)\n", count)
	},
}

var dataDirCmd = &cobra.Command{
	Use:   "data-dir",
	Short: "Show the directory and file holding the recorded days",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Data directory: %s\n", identifierColor.Sprint(filepath.Dir(st.Path())))
		fmt.Printf("Data file:      %s\n", identifierColor.Sprint(st.Path()))
	},
}
