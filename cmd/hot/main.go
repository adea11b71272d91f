package main

import (
	"os"

	"homeoffice-tracker/cmd/cli"
	"homeoffice-tracker/cmd/tui"
	"homeoffice-tracker/internal/logger"
)

func main() {
	// If no arguments (or just the program name) are provided, run the TUI.
	// Otherwise, run the CLI (which will handle the arguments).
	if len(os.Args) <= 1 {
		logger.InitLogger(true)
		tui.RunTUI("")
	} else {
		logger.InitLogger(false)
		cli.RunCLI()
	}
}
