// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"bufio"
	"fmt"
	"os"

	"homeoffice-tracker/internal/api"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var hashPasswordOverwriteFlag bool

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Create the auth.secret file protecting the served endpoints",
	Long: `Creates the credentials file used by hot serve.

The password is hashed with Argon2id; the plain text is never stored.
The file lives in the config directory unless HOT_AUTH_FILE points
elsewhere, and is written read-only (0400).`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print("Enter username: ")
		var username string
		if _, err := fmt.Scanln(&username); err != nil {
			errorColor.Fprintf(os.Stderr, "Error reading username: %v\n", err)
			os.Exit(1)
		}
		if username == "" {
			errorColor.Fprintln(os.Stderr, "Username cannot be empty")
			os.Exit(1)
		}

		password := readPasswordWithMask("Enter password:   ")
		passwordConfirm := readPasswordWithMask("Confirm password: ")

		if password == "" {
			errorColor.Fprintln(os.Stderr, "Password cannot be empty")
			os.Exit(1)
		}
		if password != passwordConfirm {
			errorColor.Fprintln(os.Stderr, "Passwords do not match")
			os.Exit(1)
		}

		path, err := api.AuthFilePath()
		if err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := api.SaveCredentials(path, username, password, hashPasswordOverwriteFlag); err != nil {
			errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		successColor.Printf("Auth file created: %s (mode: 0400 read-only)\n", path)
		fmt.Printf("Username: %s\n", identifierColor.Sprint(username))
	},
}

// readPasswordWithMask reads password input and displays asterisks
func readPasswordWithMask(prompt string) string {
	fmt.Print(prompt)

	fd := int(os.Stdin.Fd())

	oldState, err := term.GetState(fd)
	if err != nil {
		// Fallback to hidden input if we can't save terminal state
		password, _ := term.ReadPassword(fd)
		fmt.Println()
		return string(password)
	}
	defer term.Restore(fd, oldState)

	if _, err := term.MakeRaw(fd); err != nil {
		password, _ := term.ReadPassword(fd)
		fmt.Println()
		return string(password)
	}

	var password []byte
	reader := bufio.NewReader(os.Stdin)

	for {
		char, _, err := reader.ReadRune()
		if err != nil {
			break
		}

		switch char {
		case '\n', '\r': // Enter key
			fmt.Println()
			return string(password)
		case 127, 8: // Backspace or Delete
			if len(password) > 0 {
				password = password[:len(password)-1]
				// Clear the asterisk: backspace, space, backspace
				fmt.Print("\b \b")
			}
		case 3: // Ctrl+C
			fmt.Println()
			os.Exit(1)
		default:
			// Only accept printable characters
			if char >= 32 && char <= 126 {
				password = append(password, byte(char))
				fmt.Print("*")
			}
		}
	}

	fmt.Println()
	return string(password)
}

func init() {
	hashPasswordCmd.Flags().BoolVar(&hashPasswordOverwriteFlag, "overwrite", false, "replace an existing auth file")

	rootCmd.AddCommand(hashPasswordCmd)
}
