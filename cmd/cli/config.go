// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"os"
	"strings"

	"homeoffice-tracker/internal/config"
	"homeoffice-tracker/internal/export"
	"homeoffice-tracker/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// dimColor is used for less important/secondary text in the CLI output
var dimColor = color.New(color.Faint)

// configCmd is the parent command for all configuration-related subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage homeoffice-tracker configuration",
	Long: `Provides subcommands to manage the homeoffice-tracker configuration.
This includes the data directory holding the day file and the default
export format.`,
}

var configSetDataDirCmd = &cobra.Command{
	Use:   "set-data-dir <path>",
	Short: "Set the directory holding the day data file",
	Long: `Sets the directory where the day data file (days.txt) is kept.
Use an absolute path or a path starting with '~/' (e.g., '~/tracker').
If set, this overrides the default location under $XDG_DATA_HOME.
To revert to the default, set the path to an empty string: hot config set-data-dir ""`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dataDirPath := args[0]

		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		if dataDirPath != "" && !strings.HasPrefix(dataDirPath, "/") && !strings.HasPrefix(dataDirPath, "~/") {
			logger.Error("Error: Path must be absolute or start with '~/'")
			os.Exit(1)
		}

		cfg.DataDir = dataDirPath

		err = config.SaveConfig(cfg)
		if err != nil {
			logger.Errorf("Error saving configuration: %v", err)
			os.Exit(1)
		}

		if dataDirPath == "" {
			successColor.Println("Data directory reset to the default location.")
		} else {
			successColor.Printf("Data directory set to: %s\n", dataDirPath)
		}
		dimColor.Println("Existing day files are not moved; use hot import to merge them.")
	},
}

var configGetDataDirCmd = &cobra.Command{
	Use:   "get-data-dir",
	Short: "Show the currently configured data directory",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		if cfg.DataDir != "" {
			fmt.Printf("Configured data directory: %s\n", identifierColor.Sprint(cfg.DataDir))
			resolvedPath, resolveErr := config.ResolvePath(cfg.DataDir)
			if resolveErr == nil {
				fmt.Printf("Resolved path:             %s\n", resolvedPath)
			} else {
				fmt.Printf("Warning: Could not resolve configured path: %v\n", resolveErr)
			}
		} else {
			fmt.Println("Data directory not explicitly configured.")
		}

		effective, effErr := config.DataDir(cfg, "")
		if effErr != nil {
			logger.Errorf("Error determining effective data directory: %v", effErr)
			return
		}

		source := "(default)"
		if os.Getenv(config.EnvDataDir) != "" {
			source = "(from " + config.EnvDataDir + ")"
		} else if cfg.DataDir != "" {
			source = "(from config)"
		}
		successColor.Printf("Effective directory being used: %s %s\n", effective, source)
	},
}

var configSetExportFormatCmd = &cobra.Command{
	Use:   "set-export-format <format>",
	Short: "Set the default format for the export command",
	Long: `Sets the format hot export uses when no --format flag is given.
Valid values are ` + strings.Join(export.Formats(), ", ") + `.

Examples:
  hot config set-export-format ics     # Calendar file by default
  hot config set-export-format text    # Back to the text format`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: formatCompletionFunc,
	Run: func(cmd *cobra.Command, args []string) {
		format, err := export.ParseFormat(args[0])
		if err != nil {
			logger.Errorf("Error: %v", err)
			os.Exit(1)
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		cfg.ExportFormat = string(format)

		err = config.SaveConfig(cfg)
		if err != nil {
			logger.Errorf("Error saving configuration: %v", err)
			os.Exit(1)
		}

		successColor.Printf("Default export format set to: %s\n", format)
		dimColor.Println("A --format flag on hot export still takes precedence.")
	},
}

var configGetExportFormatCmd = &cobra.Command{
	Use:   "get-export-format",
	Short: "Show the currently configured default export format",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			logger.Errorf("Error loading configuration: %v", err)
			os.Exit(1)
		}

		current := cfg.ExportFormat
		if current == "" {
			current = string(export.DefaultFormat)
			fmt.Printf("Current export format: %s (default)\n", identifierColor.Sprint(current))
			return
		}
		fmt.Printf("Current export format: %s\n", identifierColor.Sprint(current))
	},
}

func init() {
	configCmd.AddCommand(configSetDataDirCmd)
	configCmd.AddCommand(configGetDataDirCmd)

	configCmd.AddCommand(configSetExportFormatCmd)
	configCmd.AddCommand(configGetExportFormatCmd)

	rootCmd.AddCommand(configCmd)
}
