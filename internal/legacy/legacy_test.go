// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package legacy

import (
	"database/sql"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"homeoffice-tracker/internal/dates"
)

// createLegacyDB builds a database with the predecessor tool's schema.
func createLegacyDB(t *testing.T, days ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), DBFileName)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec("CREATE TABLE home_office_days (date TEXT PRIMARY KEY)"); err != nil {
		t.Fatalf("create table: %v", err)
	}
	for _, d := range days {
		if _, err := db.Exec("INSERT INTO home_office_days (date) VALUES (?)", d); err != nil {
			t.Fatalf("insert %s: %v", d, err)
		}
	}
	return path
}

func TestReadDays(t *testing.T) {
	path := createLegacyDB(t, "2025-06-03", "2025-06-01", "2024-12-31")

	got, err := ReadDays(path)
	if err != nil {
		t.Fatalf("ReadDays: %v", err)
	}
	want := []dates.Date{
		dates.New(2024, time.December, 31),
		dates.New(2025, time.June, 1),
		dates.New(2025, time.June, 3),
	}
	if !slices.Equal(got, want) {
		t.Errorf("ReadDays = %v, want %v", got, want)
	}
}

func TestReadDaysEmpty(t *testing.T) {
	path := createLegacyDB(t)

	got, err := ReadDays(path)
	if err != nil {
		t.Fatalf("ReadDays: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadDays = %v, want empty", got)
	}
}

func TestReadDaysRejectsBadDate(t *testing.T) {
	path := createLegacyDB(t, "not-a-date")
	if _, err := ReadDays(path); err == nil {
		t.Error("ReadDays accepted an unreadable date")
	}
}

func TestIsSQLite(t *testing.T) {
	dbPath := createLegacyDB(t, "2025-06-01")

	ok, err := IsSQLite(dbPath)
	if err != nil {
		t.Fatalf("IsSQLite: %v", err)
	}
	if !ok {
		t.Error("IsSQLite = false for a database file")
	}

	textPath := filepath.Join(t.TempDir(), "days.txt")
	if err := os.WriteFile(textPath, []byte("2025-06-01\n"), 0640); err != nil {
		t.Fatal(err)
	}
	ok, err = IsSQLite(textPath)
	if err != nil {
		t.Fatalf("IsSQLite: %v", err)
	}
	if ok {
		t.Error("IsSQLite = true for a text file")
	}

	shortPath := filepath.Join(t.TempDir(), "tiny")
	if err := os.WriteFile(shortPath, []byte("hi"), 0640); err != nil {
		t.Fatal(err)
	}
	ok, err = IsSQLite(shortPath)
	if err != nil {
		t.Fatalf("IsSQLite on short file: %v", err)
	}
	if ok {
		t.Error("IsSQLite = true for a short file")
	}
}
