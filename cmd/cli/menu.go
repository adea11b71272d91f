// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"homeoffice-tracker/internal/dates"
	"homeoffice-tracker/internal/export"
	"homeoffice-tracker/internal/store"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var menuCmd = &cobra.Command{
	Use:     "menu",
	Aliases: []string{"cli"},
	Short:   "Run the single-keypress menu (alias: cli)",
	Long: `Shows a numbered menu and reads a single keypress to pick an action:
add today, add a specific day, list, delete or export. Pressing Enter
picks the default (add today).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := openStore()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := runMenu(st); err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func runMenu(st *store.Store) error {
	fmt.Println("Home Office Tracker")
	fmt.Println("1. Add (t)oday's home office day (default)")
	fmt.Println("2. (A)dd a specific home office day")
	fmt.Println("3. (L)ist all home office days")
	fmt.Println("4. (D)elete a home office day")
	fmt.Println("5. (E)xport all home office days")
	fmt.Print("Choose an option (default is 1): ")

	choice, err := readMenuChoice()
	if err != nil {
		return err
	}
	fmt.Println()

	switch byte(unicode.ToLower(rune(choice))) {
	case '\r', '\n', '1', 't':
		return menuAddDay(st, dates.Today())
	case '2', 'a':
		return menuAddSpecific(st)
	case '3', 'l':
		return menuList(st)
	case '4', 'd':
		return menuDelete(st)
	case '5', 'e':
		return menuExport(st)
	default:
		fmt.Println("Invalid option.")
		return nil
	}
}

// readMenuChoice reads one keypress in raw mode so a bare digit picks an
// option without Enter. Without a terminal it falls back to line input.
func readMenuChoice() (byte, error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		reader := bufio.NewReader(os.Stdin)
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, fmt.Errorf("failed to read option: %w", err)
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return '\n', nil
		}
		return line[0], nil
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, 1)
	if _, err := os.Stdin.Read(buf); err != nil {
		return 0, fmt.Errorf("failed to read option: %w", err)
	}
	return buf[0], nil
}

func menuAddDay(st *store.Store, d dates.Date) error {
	if _, err := st.Add(d); err != nil {
		return err
	}
	successColor.Printf("Date added successfully: %s\n", d)
	return nil
}

func menuAddSpecific(st *store.Store) error {
	today := dates.Today()
	fmt.Printf("Enter a date (YYYY-MM-DD) or press Enter to use today [%s]: ", today)

	input, err := readMenuLine()
	if err != nil {
		return err
	}
	if input == "" {
		return menuAddDay(st, today)
	}

	d, err := dates.Parse(input)
	if err != nil {
		fmt.Println("Invalid date format. Please use YYYY-MM-DD.")
		return nil
	}
	return menuAddDay(st, d)
}

func menuList(st *store.Store) error {
	days, err := st.Load()
	if err != nil {
		return err
	}
	fmt.Println("Home Office Days:")
	for _, d := range days {
		fmt.Println(d)
	}
	return nil
}

func menuDelete(st *store.Store) error {
	fmt.Print("Enter a date to delete (YYYY-MM-DD): ")

	input, err := readMenuLine()
	if err != nil {
		return err
	}
	d, err := dates.Parse(input)
	if err != nil {
		fmt.Println("Invalid date format. Please use YYYY-MM-DD.")
		return nil
	}

	if _, err := st.Remove(d); err != nil {
		return err
	}
	successColor.Println("Date deleted successfully.")
	return nil
}

func menuExport(st *store.Store) error {
	days, err := st.Load()
	if err != nil {
		return err
	}
	return export.WriteText(os.Stdout, days)
}

func readMenuLine() (string, error) {
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func init() {
	rootCmd.AddCommand(menuCmd)
}
