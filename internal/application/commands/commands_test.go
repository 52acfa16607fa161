package commands

import (
	"strings"

	"friendtracker/internal/application"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

// memStore is an in-memory ports.ContactStore for command tests.
type memStore struct {
	records map[string]*domain.Record
	bodies  map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		records: make(map[string]*domain.Record),
		bodies:  make(map[string]string),
	}
}

func (s *memStore) Root() string { return "contacts" }

func (s *memStore) List() ([]ports.Document, error) {
	var docs []ports.Document
	for path, rec := range s.records {
		docs = append(docs, ports.Document{Path: path, Record: rec})
	}
	return docs, nil
}

func (s *memStore) Read(path string) (*domain.Record, string, error) {
	rec, ok := s.records[path]
	if !ok {
		return nil, "", application.ErrContactNotFound
	}
	clone := *rec
	clone.Interactions = append([]domain.Interaction(nil), rec.Interactions...)
	return &clone, s.bodies[path], nil
}

func (s *memStore) Create(name string, rec *domain.Record) (string, error) {
	path := "contacts/" + name + ".md"
	if _, taken := s.records[path]; taken {
		path = "contacts/" + name + " (2).md"
	}
	s.records[path] = rec
	return path, nil
}

func (s *memStore) UpdateHeader(path string, rec *domain.Record) error {
	if _, ok := s.records[path]; !ok {
		return application.ErrContactNotFound
	}
	s.records[path] = rec
	return nil
}

func (s *memStore) UpdateBody(path, body string) error {
	if _, ok := s.records[path]; !ok {
		return application.ErrContactNotFound
	}
	s.bodies[path] = body
	return nil
}

func (s *memStore) Trash(path string) error {
	if _, ok := s.records[path]; !ok {
		return application.ErrContactNotFound
	}
	delete(s.records, path)
	return nil
}

func (s *memStore) Rename(oldPath, newPath string) error {
	rec, ok := s.records[oldPath]
	if !ok {
		return application.ErrContactNotFound
	}
	delete(s.records, oldPath)
	s.records[newPath] = rec
	return nil
}
