// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package store persists the set of recorded home-office days as a flat
// text file, one ISO date per line, kept sorted and duplicate-free.
package store

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"homeoffice-tracker/internal/dates"
)

// FileName is the data file kept inside the data directory.
const FileName = "days.txt"

// Store reads and writes the day set at a fixed path. It performs no
// locking; the tracker is a single-user tool.
type Store struct {
	path string
}

// New returns a Store backed by dataDir/days.txt.
func New(dataDir string) *Store {
	return &Store{path: filepath.Join(dataDir, FileName)}
}

// Path returns the location of the data file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the recorded days. A missing data file is not an error and
// yields an empty set. Lines are normalized on the way in so a
// hand-edited file still produces a sorted, duplicate-free result.
func (s *Store) Load() ([]dates.Date, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open data file: %w", err)
	}
	defer f.Close()

	var days []dates.Date
	scanner := bufio.NewScanner(f)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		d, err := dates.Parse(text)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", s.path, line, err)
		}
		days = append(days, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}
	return dates.Normalize(days), nil
}

// Save writes the given days, replacing the file contents. The set is
// normalized first, and the write goes through a temporary file renamed
// into place so a crash never leaves a half-written data file.
func (s *Store) Save(days []dates.Date) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	var b strings.Builder
	for _, d := range dates.Normalize(days) {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.String()), 0640); err != nil {
		return fmt.Errorf("failed to write data file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}

// Add records the given days, ignoring any already present, and reports
// how many were newly added. Adding a recorded day is not an error.
func (s *Store) Add(days ...dates.Date) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}
	var fresh []dates.Date
	for _, d := range dates.Normalize(days) {
		if _, found := slices.BinarySearchFunc(existing, d, dates.Date.Compare); !found {
			fresh = append(fresh, d)
		}
	}
	if len(fresh) == 0 {
		return 0, nil
	}
	if err := s.Save(append(existing, fresh...)); err != nil {
		return 0, err
	}
	return len(fresh), nil
}

// Remove deletes the given days, ignoring any not present, and reports
// how many were actually removed.
func (s *Store) Remove(days ...dates.Date) (int, error) {
	existing, err := s.Load()
	if err != nil {
		return 0, err
	}
	before := len(existing)
	existing = slices.DeleteFunc(existing, func(d dates.Date) bool {
		return slices.Contains(days, d)
	})
	removed := before - len(existing)
	if removed == 0 {
		return 0, nil
	}
	if err := s.Save(existing); err != nil {
		return 0, err
	}
	return removed, nil
}
