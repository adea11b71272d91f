// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package api

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/crypto/argon2"

	"homeoffice-tracker/internal/config"
	"homeoffice-tracker/internal/logger"
)

// EnvAuthFile overrides the location of the credentials file.
const EnvAuthFile = "HOT_AUTH_FILE"

// AuthFileName is the credentials file kept in the config directory.
const AuthFileName = "auth.secret"

// Argon2id parameters (OWASP recommended)
const (
	argon2Time    = 1
	argon2Memory  = 64 * 1024 // 64 MB
	argon2Threads = 4
	argon2KeyLen  = 32
	saltLen       = 16
)

// Credentials holds the basic-auth user and Argon2id password hash that
// protect the served endpoints. A nil *Credentials means auth is off.
type Credentials struct {
	User string
	hash []byte
}

// AuthFilePath returns the credentials file location: $HOT_AUTH_FILE if
// set, otherwise auth.secret in the config directory.
func AuthFilePath() (string, error) {
	if path := os.Getenv(EnvAuthFile); path != "" {
		return path, nil
	}
	configDir, err := config.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AuthFileName), nil
}

// LoadCredentials reads the credentials file. A missing file is not an
// error; it returns nil Credentials, which disables auth.
func LoadCredentials() (*Credentials, error) {
	path, err := AuthFilePath()
	if err != nil {
		return nil, err
	}
	return LoadCredentialsFrom(path)
}

// LoadCredentialsFrom reads a credentials file in "username:hash" form.
func LoadCredentialsFrom(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read auth file: %w", err)
	}

	line := strings.TrimSpace(string(data))
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return nil, fmt.Errorf("invalid auth file format in %s (expected: username:hash)", path)
	}
	return &Credentials{User: parts[0], hash: []byte(parts[1])}, nil
}

// HashPassword creates an Argon2id hash of the password, encoded as
// $argon2id$v=19$m=65536,t=1,p=4$salt$hash.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey([]byte(password), salt, argon2Time, argon2Memory, argon2Threads, argon2KeyLen)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argon2Memory, argon2Time, argon2Threads, b64Salt, b64Hash), nil
}

// VerifyPassword verifies a password against an Argon2id hash.
func VerifyPassword(password, hash string) (bool, error) {
	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("invalid hash format")
	}
	if parts[1] != "argon2id" {
		return false, fmt.Errorf("not an argon2id hash")
	}

	var memory, time, threads uint32
	_, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads)
	if err != nil {
		return false, fmt.Errorf("failed to parse hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("failed to decode salt: %w", err)
	}
	decodedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("failed to decode hash: %w", err)
	}

	computedHash := argon2.IDKey([]byte(password), salt, time, memory, uint8(threads), uint32(len(decodedHash)))

	return subtle.ConstantTimeCompare(decodedHash, computedHash) == 1, nil
}

// RequireAuth enforces Basic Auth with Argon2id verification. With nil
// Credentials the handler is passed through unprotected.
func (c *Credentials) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if c == nil {
			next(w, r)
			return
		}

		user, pass, ok := r.BasicAuth()

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(c.User)) == 1

		passMatch := false
		if ok && userMatch {
			var err error
			passMatch, err = VerifyPassword(pass, string(c.hash))
			if err != nil {
				logger.Errorf("Error verifying password: %v", err)
				passMatch = false
			}
		}

		if !ok || !userMatch || !passMatch {
			w.Header().Set("WWW-Authenticate", `Basic realm="homeoffice-tracker"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			logger.Warnf("Failed auth attempt from %s (user: %s)", r.RemoteAddr, user)
			return
		}

		next(w, r)
	}
}

// SaveCredentials hashes the password and writes the credentials file
// read-only (0400). An existing file is only replaced with overwrite.
func SaveCredentials(path, username, password string, overwrite bool) error {
	if strings.Contains(username, ":") {
		return fmt.Errorf("username must not contain ':'")
	}

	if _, err := os.Stat(path); err == nil {
		if !overwrite {
			return fmt.Errorf("auth file already exists: %s (use --overwrite to replace it)", path)
		}
		// The file is written 0400, so it has to go before rewriting.
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("failed to remove existing auth file: %w", err)
		}
	}

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create auth file directory: %w", err)
	}
	content := fmt.Sprintf("%s:%s\n", username, hash)
	if err := os.WriteFile(path, []byte(content), 0400); err != nil {
		return fmt.Errorf("failed to write auth file: %w", err)
	}
	return nil
}
