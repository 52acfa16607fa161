package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"friendtracker/internal/domain"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FRIENDTRACKER_FOLDER", "")
	t.Setenv("FRIENDTRACKER_SORT", "")

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ContactsFolder != DefaultContactsFolder {
		t.Errorf("ContactsFolder = %q, want default", s.ContactsFolder)
	}
	if !slices.Equal(s.RelationshipTypes, DefaultRelationshipTypes) {
		t.Errorf("RelationshipTypes = %v, want defaults", s.RelationshipTypes)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FRIENDTRACKER_FOLDER", "")
	t.Setenv("FRIENDTRACKER_SORT", "")

	s := Default()
	s.ContactsFolder = "/tmp/people"
	s.DefaultSortColumn = string(domain.SortByAge)
	s.DefaultSortDirection = string(domain.Descending)
	s.AddRelationshipType("neighbor")

	if err := Save(s); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.ContactsFolder != "/tmp/people" {
		t.Errorf("ContactsFolder = %q", got.ContactsFolder)
	}
	if !slices.Contains(got.RelationshipTypes, "neighbor") {
		t.Errorf("RelationshipTypes = %v, missing neighbor", got.RelationshipTypes)
	}

	cfg := got.SortConfig()
	if cfg.Column != domain.SortByAge || cfg.Direction != domain.Descending {
		t.Errorf("SortConfig() = %+v", cfg)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("FRIENDTRACKER_FOLDER", "/srv/contacts")
	t.Setenv("FRIENDTRACKER_SORT", string(domain.SortByBirthday))

	s, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if s.ContactsFolder != "/srv/contacts" {
		t.Errorf("ContactsFolder = %q, want env override", s.ContactsFolder)
	}
	if s.SortConfig().Column != domain.SortByBirthday {
		t.Errorf("SortConfig().Column = %v, want birthday", s.SortConfig().Column)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("FRIENDTRACKER_FOLDER", "")
	t.Setenv("FRIENDTRACKER_SORT", "")

	path := filepath.Join(dir, "friendtracker", "settings.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for malformed settings")
	}
}

func TestSortConfigUnknownColumnFallsBack(t *testing.T) {
	s := Default()
	s.DefaultSortColumn = "shoe size"

	cfg := s.SortConfig()
	if cfg.Column != domain.SortByName || cfg.Direction != domain.Ascending {
		t.Errorf("SortConfig() = %+v, want name ascending", cfg)
	}
}

func TestRelationshipVocabulary(t *testing.T) {
	s := Default()

	if !s.AddRelationshipType("  Neighbor ") {
		t.Error("AddRelationshipType should accept a new value")
	}
	if !slices.Contains(s.RelationshipTypes, "neighbor") {
		t.Errorf("vocabulary = %v, want lowercase neighbor", s.RelationshipTypes)
	}
	if s.AddRelationshipType("NEIGHBOR") {
		t.Error("AddRelationshipType should reject duplicates case-insensitively")
	}
	if s.AddRelationshipType("   ") {
		t.Error("AddRelationshipType should reject blanks")
	}

	if !s.RemoveRelationshipType("neighbor") {
		t.Error("RemoveRelationshipType should remove an existing value")
	}
	if s.RemoveRelationshipType("neighbor") {
		t.Error("RemoveRelationshipType should report missing values")
	}
}
