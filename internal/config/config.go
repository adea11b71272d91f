// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration including reading and
// writing the configuration file and resolving the data directory that
// holds the recorded days.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvDataDir overrides the data directory when set, taking precedence
// over the config file but not over the --data-dir flag.
const EnvDataDir = "HOT_DATA_DIR"

const appDirName = "homeoffice-tracker"

// Config represents the top-level application configuration
type Config struct {
	// DataDir is a custom directory for the day data file (optional)
	DataDir string `yaml:"data_dir,omitempty"`

	// ExportFormat is the default format for the export command (optional)
	ExportFormat string `yaml:"export_format,omitempty"`

	// ListenAddr is the default address for the serve command (optional)
	ListenAddr string `yaml:"listen_addr,omitempty"`
}

func DefaultConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, appDirName), nil
}

func DefaultConfigPath() (string, error) {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

func EnsureConfigDir() error {
	configDir, err := DefaultConfigDir()
	if err != nil {
		return err
	}
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}

// DataDir resolves the directory holding the day data file. Priority is
// the explicit override (the --data-dir flag), then HOT_DATA_DIR, then
// the config file's data_dir, then the platform data directory
// ($XDG_DATA_HOME, falling back to ~/.local/share).
func DataDir(cfg Config, override string) (string, error) {
	for _, dir := range []string{override, os.Getenv(EnvDataDir), cfg.DataDir} {
		if dir != "" {
			return ResolvePath(dir)
		}
	}

	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".local", "share", appDirName), nil
}
