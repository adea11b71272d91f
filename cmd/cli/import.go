// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"homeoffice-tracker/internal/config"
	"homeoffice-tracker/internal/dates"
	"homeoffice-tracker/internal/legacy"
	"homeoffice-tracker/internal/logger"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import days from a legacy database or an exported text file",
	Long: `Imports recorded days into the data file.

The path may be a database left behind by the previous tracker
(home_office_tracker.db), a directory containing one, or a text file of
days in the export format (one date or start::end range per line).
Already recorded days are skipped; the source is never modified.`,
	Example: "  hot import ~/.local/share/home_office_tracker\n  hot import backup.txt",
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := config.ResolvePath(args[0])
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		info, err := os.Stat(path)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			path = filepath.Join(path, legacy.DBFileName)
		}

		s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Color("cyan")
		s.Suffix = fmt.Sprintf(" Importing from %s...", path)
		s.Start()

		days, err := readImportDays(path)
		s.Stop()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error importing: %v\n", err)
			os.Exit(1)
		}
		if len(days) == 0 {
			statusColor.Println("Nothing to import.")
			return
		}

		st, err := openStore()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		added, err := st.Add(days...)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error saving imported dates: %v\n", err)
			os.Exit(1)
		}

		successColor.Printf("Imported %d day(s) from %s (%d new)\n", len(days), path, added)
		logger.Info("days imported", "source", path, "read", len(days), "new", added)
	},
}

// readImportDays reads days from path, picking the reader by content:
// SQLite databases go through the legacy reader, anything else is
// treated as text in the export format.
func readImportDays(path string) ([]dates.Date, error) {
	isDB, err := legacy.IsSQLite(path)
	if err != nil {
		return nil, err
	}
	if isDB {
		return legacy.ReadDays(path)
	}
	return readTextDays(path)
}

func readTextDays(path string) ([]dates.Date, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var days []dates.Date
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		parsed, err := dates.ParseArg(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		days = append(days, parsed...)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return dates.Normalize(days), nil
}

func init() {
	rootCmd.AddCommand(importCmd)
}
