// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package legacy reads recorded days out of the SQLite database kept by
// the predecessor tool, so its data can be imported into the flat file.
package legacy

import (
	"bytes"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "modernc.org/sqlite"

	"homeoffice-tracker/internal/dates"
)

// DBFileName is the database file the predecessor tool kept in its data
// directory.
const DBFileName = "home_office_tracker.db"

// sqliteMagic is the 16-byte header every SQLite 3 database starts with.
var sqliteMagic = []byte("SQLite format 3\x00")

// IsSQLite reports whether the file at path is a SQLite database, by its
// header. Shorter files are simply not databases, not errors.
func IsSQLite(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	header := make([]byte, len(sqliteMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bytes.Equal(header, sqliteMagic), nil
}

// ReadDays loads every recorded day from the legacy database. The
// database is opened read-only; importing never modifies the source.
func ReadDays(path string) ([]dates.Date, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open legacy database %s: %w", path, err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT date FROM home_office_days ORDER BY date")
	if err != nil {
		return nil, fmt.Errorf("failed to query legacy database %s: %w", path, err)
	}
	defer rows.Close()

	var days []dates.Date
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan legacy row: %w", err)
		}
		d, err := dates.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("legacy database %s holds an unreadable date: %w", path, err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read legacy database %s: %w", path, err)
	}
	return dates.Normalize(days), nil
}
