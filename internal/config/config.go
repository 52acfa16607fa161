// Package config holds the persisted application settings.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"friendtracker/internal/domain"
)

const DefaultContactsFolder = "~/Documents/FriendTracker"

// DefaultRelationshipTypes seeds the relationship vocabulary for new
// installs. The list is user-editable afterwards.
var DefaultRelationshipTypes = []string{"friend", "family", "colleague", "acquaintance"}

// Settings is the persisted application state
type Settings struct {
	ContactsFolder       string   `json:"contactsFolder"`
	DefaultSortColumn    string   `json:"defaultSortColumn"`
	DefaultSortDirection string   `json:"defaultSortDirection"`
	RelationshipTypes    []string `json:"relationshipTypes"`
}

// Default returns a fresh settings value
func Default() Settings {
	return Settings{
		ContactsFolder:       DefaultContactsFolder,
		DefaultSortColumn:    string(domain.SortByName),
		DefaultSortDirection: string(domain.Ascending),
		RelationshipTypes:    slices.Clone(DefaultRelationshipTypes),
	}
}

// Path returns the settings file location, honoring XDG_CONFIG_HOME
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "friendtracker", "settings.json")
}

// Load reads settings from disk, applying defaults for anything missing
// and FRIENDTRACKER_* environment overrides on top. A missing file is
// not an error; defaults are returned.
func Load() (Settings, error) {
	s := Default()

	data, err := os.ReadFile(Path())
	if err == nil {
		if err := json.Unmarshal(data, &s); err != nil {
			return Default(), fmt.Errorf("parse settings: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return s, fmt.Errorf("read settings: %w", err)
	}

	if s.ContactsFolder == "" {
		s.ContactsFolder = DefaultContactsFolder
	}
	if len(s.RelationshipTypes) == 0 {
		s.RelationshipTypes = slices.Clone(DefaultRelationshipTypes)
	}

	if env := os.Getenv("FRIENDTRACKER_FOLDER"); env != "" {
		s.ContactsFolder = env
	}
	if env := os.Getenv("FRIENDTRACKER_SORT"); env != "" {
		s.DefaultSortColumn = env
	}

	return s, nil
}

// Save writes settings to disk, creating the config directory if needed
func Save(s Settings) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

// SortConfig translates the persisted sort preference into a typed
// config, falling back to name ascending for unknown values.
func (s Settings) SortConfig() domain.SortConfig {
	cfg := domain.SortConfig{Column: domain.SortByName, Direction: domain.Ascending}

	if slices.Contains(domain.SortColumns, domain.SortColumn(s.DefaultSortColumn)) {
		cfg.Column = domain.SortColumn(s.DefaultSortColumn)
	}
	if s.DefaultSortDirection == string(domain.Descending) {
		cfg.Direction = domain.Descending
	}
	return cfg
}

// AddRelationshipType adds a value to the vocabulary. Values are stored
// lowercase; duplicates and blanks are ignored.
func (s *Settings) AddRelationshipType(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	if value == "" || slices.Contains(s.RelationshipTypes, value) {
		return false
	}
	s.RelationshipTypes = append(s.RelationshipTypes, value)
	return true
}

// RemoveRelationshipType removes a value from the vocabulary. Contacts
// already using the value keep it; it just stops being offered.
func (s *Settings) RemoveRelationshipType(value string) bool {
	value = strings.ToLower(strings.TrimSpace(value))
	i := slices.Index(s.RelationshipTypes, value)
	if i < 0 {
		return false
	}
	s.RelationshipTypes = slices.Delete(s.RelationshipTypes, i, i+1)
	return true
}
