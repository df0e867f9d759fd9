// Package settings persists the light/dark presentation preference and
// carries the per-session context the shells hand to their components.
package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// DefaultTheme is used whenever no valid preference is stored.
const DefaultTheme = ThemeDark

func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

type file struct {
	Theme Theme `json:"theme"`
}

// Store reads and writes the preference file at a fixed path.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load returns the stored theme, or DefaultTheme if the file is missing,
// unreadable, malformed or holds an unknown value.
func (s *Store) Load() Theme {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", s.path).Msg("cannot read settings, using default theme")
		}
		return DefaultTheme
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil || !f.Theme.Valid() {
		log.Warn().Str("path", s.path).Msg("invalid settings file, using default theme")
		return DefaultTheme
	}

	return f.Theme
}

// Save writes theme to the preference file.
func (s *Store) Save(theme Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("unknown theme %q", theme)
	}

	data, err := json.Marshal(file{Theme: theme})
	if err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create settings directory: %w", err)
		}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Toggle flips the stored theme and returns the new one.
func (s *Store) Toggle() (Theme, error) {
	next := s.Load().Other()
	if err := s.Save(next); err != nil {
		return "", err
	}
	return next, nil
}

// AppContext is the session state passed explicitly to shell components.
type AppContext struct {
	Theme  Theme     `json:"theme"`
	UserID uuid.UUID `json:"user_id"`
}

// SignedIn reports whether a user has logged in for this session.
func (c AppContext) SignedIn() bool {
	return c.UserID != uuid.Nil
}

// WithUser returns a copy of c for the given user.
func (c AppContext) WithUser(id uuid.UUID) AppContext {
	c.UserID = id
	return c
}
