// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Easy Travel Authors

package client

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const sessionFileName = "session"

// FileSession stores the token in a file readable only by the owner.
type FileSession struct {
	path string
}

func NewFileSession(path string) *FileSession {
	return &FileSession{path: path}
}

// DefaultSessionPath returns <user config dir>/easy-travel/session.
func DefaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "easy-travel", sessionFileName), nil
}

func (s *FileSession) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

func (s *FileSession) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

func (s *FileSession) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
