// Package state persists the few values the console keeps between runs:
// the login flag and the theme preference. Neither expires.
package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const fileName = "state.json"

// Theme names.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// State is the on-disk document.
type State struct {
	Authenticated bool   `json:"isAuthenticated"`
	Theme         string `json:"theme,omitempty"`
}

// Store reads and writes State under a directory.
type Store struct {
	path string
}

// Open returns a store backed by dir/state.json. The file is created on the
// first write.
func Open(dir string) *Store {
	return &Store{path: filepath.Join(dir, fileName)}
}

// Path returns the backing file.
func (s *Store) Path() string { return s.path }

// Load returns the stored state; a missing file is the zero state.
func (s *Store) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("state.Load: %w", err)
	}
	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return State{}, fmt.Errorf("state.Load: parse %s: %w", s.path, err)
	}
	return st, nil
}

// Save writes the state atomically with owner-only permissions.
func (s *Store) Save(st State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("state.Save: create dir: %w", err)
	}
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("state.Save: marshal: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("state.Save: write: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp) //nolint:errcheck
		return fmt.Errorf("state.Save: rename: %w", err)
	}
	return nil
}

// Authenticated reports whether a login succeeded and has not been cleared.
// An unreadable file counts as logged out.
func (s *Store) Authenticated() bool {
	st, err := s.Load()
	return err == nil && st.Authenticated
}

// SetAuthenticated records or clears the login flag.
func (s *Store) SetAuthenticated(v bool) error {
	st, err := s.Load()
	if err != nil {
		st = State{}
	}
	st.Authenticated = v
	return s.Save(st)
}

// Theme returns the saved theme, dark if none.
func (s *Store) Theme() string {
	st, err := s.Load()
	if err != nil || !ValidTheme(st.Theme) {
		return ThemeDark
	}
	return st.Theme
}

// SetTheme saves the theme preference.
func (s *Store) SetTheme(name string) error {
	if !ValidTheme(name) {
		return fmt.Errorf("state.SetTheme: unknown theme %q (want %s or %s)", name, ThemeDark, ThemeLight)
	}
	st, err := s.Load()
	if err != nil {
		st = State{}
	}
	st.Theme = name
	return s.Save(st)
}

// ValidTheme returns true for a known theme name.
func ValidTheme(name string) bool {
	return name == ThemeDark || name == ThemeLight
}
