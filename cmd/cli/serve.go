// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"fmt"
	"net/http"
	"os"

	"homeoffice-tracker/internal/api"
	"homeoffice-tracker/internal/config"
	"homeoffice-tracker/internal/logger"
	"homeoffice-tracker/internal/web"

	"github.com/spf13/cobra"
)

var serveAddrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server exposing the recorded days",
	Long: `Starts an HTTP server with a read-only view of the recorded days:

  GET /           a small page listing the recorded days
  GET /api/days   the day set as JSON (same shape as hot export -f json)
  GET /feed.ics   an iCalendar subscription feed for calendar apps
  GET /healthz    liveness probe

When an auth.secret file exists in the config directory (created with
hot hash-password), everything except /healthz requires HTTP basic auth.`,
	Example: "  hot serve\n  hot serve --addr 127.0.0.1:9090",
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

// runServer starts the HTTP server over the day store.
func runServer() {
	st, err := openStore()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	creds, err := api.LoadCredentials()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading credentials: %v\n", err)
		os.Exit(1)
	}
	if creds == nil {
		statusColor.Println("No auth.secret found, serving without authentication.")
		statusColor.Println("Run 'hot hash-password' to protect the day endpoints.")
		logger.Warn("serving without authentication")
	} else {
		fmt.Printf("Basic auth enabled (user: %s)\n", identifierColor.Sprint(creds.User))
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		errorColor.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	addr := serveAddrFlag
	if addr == "" {
		addr = cfg.ListenAddr
	}
	if addr == "" {
		addr = ":8080"
	}

	router := api.NewRouter(st, creds)

	// Static page last so it does not shadow the API routes.
	staticFileServer := http.FileServer(web.GetFileSystem())
	router.PathPrefix("/").Handler(creds.RequireAuth(staticFileServer.ServeHTTP))

	fmt.Printf("Starting server on %s\n", addr)
	logger.Info("http server starting", "addr", addr, "file", st.Path())
	if err := http.ListenAndServe(addr, router); err != nil {
		errorColor.Fprintf(os.Stderr, "Server error: %v\n", err)
		logger.Errorf("http server failed: %v", err)
		os.Exit(1)
	}
}

func init() {
	serveCmd.Flags().StringVar(&serveAddrFlag, "addr", "", "listen address (default from config, then :8080)")

	rootCmd.AddCommand(serveCmd)
}
