// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package api implements the HTTP endpoints served by the serve command:
// a read-only JSON view of the recorded days and an iCalendar
// subscription feed for calendar apps.
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"homeoffice-tracker/internal/export"
	"homeoffice-tracker/internal/store"
)

// writeJSONResponse writes a JSON response with CORS headers
func writeJSONResponse(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	json.NewEncoder(w).Encode(data)
}

// NewRouter assembles the full route table over the given store. With
// non-nil credentials the day endpoints require basic auth; the health
// endpoint always stays open for probes.
func NewRouter(st *store.Store, creds *Credentials) *mux.Router {
	router := mux.NewRouter()
	RegisterDayRoutes(router, st, creds)
	return router
}

func RegisterDayRoutes(router *mux.Router, st *store.Store, creds *Credentials) {
	router.HandleFunc("/api/days", creds.RequireAuth(listDaysHandler(st))).Methods("GET")
	router.HandleFunc("/feed.ics", creds.RequireAuth(feedHandler(st))).Methods("GET")
	router.HandleFunc("/healthz", healthHandler).Methods("GET")
}

// listDaysHandler serves GET /api/days: the recorded day set with its
// run-compressed form, in the same document shape as the JSON export.
func listDaysHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := st.Load()
		if err != nil {
			http.Error(w, fmt.Sprintf("Error loading days: %v", err), http.StatusInternalServerError)
			return
		}
		writeJSONResponse(w, export.BuildSnapshot(days))
	}
}

// feedHandler serves GET /feed.ics: an iCalendar subscription feed with
// one all-day event per run of recorded days. The content is served
// inline so calendar apps can subscribe to the URL directly.
func feedHandler(st *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := st.Load()
		if err != nil {
			http.Error(w, fmt.Sprintf("Error loading days: %v", err), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		if err := export.WriteSubscriptionICS(w, days); err != nil {
			http.Error(w, fmt.Sprintf("Error writing calendar: %v", err), http.StatusInternalServerError)
			return
		}
	}
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSONResponse(w, map[string]string{"status": "ok"})
}
