// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"io"
	"os"
	"strings"

	"homeoffice-tracker/internal/config"
	"homeoffice-tracker/internal/export"
	"homeoffice-tracker/internal/logger"

	"github.com/spf13/cobra"
)

var (
	exportFormatFlag string
	exportOutputFlag string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export recorded days (text, csv, json or ics)",
	Long: `Exports the recorded days to stdout or a file.

The text format compresses consecutive days into ranges: a lone day is
printed as 2025-06-04, a stretch as 2025-05-30 :: 2025-06-01. These
lines are accepted back by add and remove. The ics format produces a
calendar with one all-day event per stretch, and csv one row per
stretch. Without --format, the export_format from the config file is
used, falling back to text.`,
	Example: "  hot export\n  hot export --format ics --output days.ics\n  hot export -f json",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
			os.Exit(1)
		}

		name := exportFormatFlag
		if name == "" {
			name = cfg.ExportFormat
		}
		if name == "" {
			name = string(export.DefaultFormat)
		}
		format, err := export.ParseFormat(name)
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

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

		var out io.Writer = os.Stdout
		var file *os.File
		if exportOutputFlag != "" {
			file, err = os.Create(exportOutputFlag)
			if err != nil {
				errorColor.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
				os.Exit(1)
			}
			out = file
		}

		if err := export.Write(out, format, days); err != nil {
			errorColor.Fprintf(os.Stderr, "Error writing export: %v\n", err)
			os.Exit(1)
		}

		if file != nil {
			if err := file.Close(); err != nil {
				errorColor.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
				os.Exit(1)
			}
			successColor.Printf("Exported %d day(s) to %s\n", len(days), exportOutputFlag)
			logger.Info("days exported", "format", string(format), "count", len(days), "output", exportOutputFlag)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormatFlag, "format", "f", "", "output format: "+strings.Join(export.Formats(), ", "))
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "write to a file instead of stdout")
	_ = exportCmd.RegisterFlagCompletionFunc("format", formatCompletionFunc)

	rootCmd.AddCommand(exportCmd)
}
