// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package config

import (
	"path/filepath"
	"testing"
)

func TestDataDirPriority(t *testing.T) {
	cfg := Config{DataDir: "/from/config"}

	t.Run("override wins", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/from/env")
		dir, err := DataDir(cfg, "/from/flag")
		if err != nil {
			t.Fatalf("DataDir: %v", err)
		}
		if dir != "/from/flag" {
			t.Errorf("DataDir = %q, want /from/flag", dir)
		}
	})

	t.Run("env beats config", func(t *testing.T) {
		t.Setenv(EnvDataDir, "/from/env")
		dir, err := DataDir(cfg, "")
		if err != nil {
			t.Fatalf("DataDir: %v", err)
		}
		if dir != "/from/env" {
			t.Errorf("DataDir = %q, want /from/env", dir)
		}
	})

	t.Run("config beats default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		dir, err := DataDir(cfg, "")
		if err != nil {
			t.Fatalf("DataDir: %v", err)
		}
		if dir != "/from/config" {
			t.Errorf("DataDir = %q, want /from/config", dir)
		}
	})

	t.Run("xdg default", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "/xdg/data")
		dir, err := DataDir(Config{}, "")
		if err != nil {
			t.Fatalf("DataDir: %v", err)
		}
		want := filepath.Join("/xdg/data", "homeoffice-tracker")
		if dir != want {
			t.Errorf("DataDir = %q, want %q", dir, want)
		}
	})

	t.Run("home fallback", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")
		t.Setenv("XDG_DATA_HOME", "")
		t.Setenv("HOME", "/home/tester")
		dir, err := DataDir(Config{}, "")
		if err != nil {
			t.Fatalf("DataDir: %v", err)
		}
		want := filepath.Join("/home/tester", ".local", "share", "homeoffice-tracker")
		if dir != want {
			t.Errorf("DataDir = %q, want %q", dir, want)
		}
	})
}

func TestDataDirExpandsTilde(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	dir, err := DataDir(Config{DataDir: "~/tracker"}, "")
	if err != nil {
		t.Fatalf("DataDir: %v", err)
	}
	want := filepath.Join("/home/tester", "tracker")
	if dir != want {
		t.Errorf("DataDir = %q, want %q", dir, want)
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	got, err := ResolvePath("~/notes")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if want := filepath.Join("/home/tester", "notes"); got != want {
		t.Errorf("ResolvePath = %q, want %q", got, want)
	}

	got, err = ResolvePath("/absolute/path")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if got != "/absolute/path" {
		t.Errorf("ResolvePath = %q, want unchanged", got)
	}
}
