package application

import (
	"errors"
	"io/fs"
	"testing"
	"time"

	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// fakeStore implements ports.ContactStore over in-memory documents.
type fakeStore struct {
	docs    []ports.Document
	listErr error
}

func (s *fakeStore) Root() string { return "contacts" }

func (s *fakeStore) List() ([]ports.Document, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.docs, nil
}

func (s *fakeStore) Read(path string) (*domain.Record, string, error) {
	for _, d := range s.docs {
		if d.Path == path {
			return d.Record, "", nil
		}
	}
	return nil, "", ErrContactNotFound
}

func (s *fakeStore) Create(name string, rec *domain.Record) (string, error) {
	path := "contacts/" + name + ".md"
	s.docs = append(s.docs, ports.Document{Path: path, Record: rec})
	return path, nil
}

func (s *fakeStore) UpdateHeader(path string, rec *domain.Record) error {
	for i := range s.docs {
		if s.docs[i].Path == path {
			s.docs[i].Record = rec
			return nil
		}
	}
	return ErrContactNotFound
}

func (s *fakeStore) UpdateBody(path, body string) error { return nil }

func (s *fakeStore) Trash(path string) error {
	for i := range s.docs {
		if s.docs[i].Path == path {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return ErrContactNotFound
}

func (s *fakeStore) Rename(oldPath, newPath string) error {
	for i := range s.docs {
		if s.docs[i].Path == oldPath {
			s.docs[i].Path = newPath
			return nil
		}
	}
	return ErrContactNotFound
}

func testAggregator(store ports.ContactStore, now time.Time) *Aggregator {
	return &Aggregator{Store: store, Clock: fixedClock{now}}
}

func TestAggregator_Enrichment(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local)
	store := &fakeStore{docs: []ports.Document{
		{Path: "contacts/Ada.md", Record: &domain.Record{
			Name:         "Ada",
			Birthday:     "1990-03-04",
			Relationship: "friend",
			Interactions: []domain.Interaction{
				{Date: "2024-03-01", Text: "lunch"},
			},
		}},
	}}

	contacts, err := testAggregator(store, now).Contacts()
	if err != nil {
		t.Fatalf("Contacts() error: %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}

	c := contacts[0]
	if c.Age == nil || *c.Age != 34 {
		t.Errorf("age = %v, want 34", c.Age)
	}
	if c.DaysUntilBirthday == nil || *c.DaysUntilBirthday != 0 {
		t.Errorf("daysUntilBirthday = %v, want 0", c.DaysUntilBirthday)
	}
	if c.FormattedBirthday != "March 4" {
		t.Errorf("formattedBirthday = %q, want March 4", c.FormattedBirthday)
	}
	if c.LastInteraction != "3 days" {
		t.Errorf("lastInteraction = %q, want 3 days", c.LastInteraction)
	}
	if c.Path != "contacts/Ada.md" {
		t.Errorf("path = %q", c.Path)
	}
}

func TestAggregator_SkipsUnusableDocuments(t *testing.T) {
	now := time.Date(2024, 3, 4, 12, 0, 0, 0, time.Local)
	store := &fakeStore{docs: []ports.Document{
		{Path: "contacts/noheader.md", Record: nil},
		{Path: "contacts/unnamed.md", Record: &domain.Record{Birthday: "1990-01-01"}},
		{Path: "contacts/Bob.md", Record: &domain.Record{Name: "Bob"}},
	}}

	contacts, err := testAggregator(store, now).Contacts()
	if err != nil {
		t.Fatalf("Contacts() error: %v", err)
	}
	if len(contacts) != 1 || contacts[0].Name != "Bob" {
		t.Errorf("expected only Bob, got %v", contacts)
	}

	// A contact with no birthday carries nil derived fields, not zero.
	if contacts[0].Age != nil || contacts[0].DaysUntilBirthday != nil {
		t.Errorf("derived fields should be nil without a birthday")
	}
	if contacts[0].LastInteraction != "" {
		t.Errorf("lastInteraction should be empty without interactions")
	}
}

func TestAggregator_MissingFolder(t *testing.T) {
	store := &fakeStore{listErr: fs.ErrNotExist}

	contacts, err := testAggregator(store, time.Now()).Contacts()
	if !errors.Is(err, ErrFolderNotFound) {
		t.Fatalf("expected ErrFolderNotFound, got %v", err)
	}
	if len(contacts) != 0 {
		t.Errorf("expected empty list, got %v", contacts)
	}
}

func TestAggregator_Idempotent(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, time.Local)
	store := &fakeStore{docs: []ports.Document{
		{Path: "contacts/Ada.md", Record: &domain.Record{Name: "Ada", Birthday: "1990-03-04"}},
		{Path: "contacts/Bob.md", Record: &domain.Record{Name: "Bob", Birthday: "1985-07-20"}},
	}}
	agg := testAggregator(store, now)

	first, err := agg.Contacts()
	if err != nil {
		t.Fatal(err)
	}
	second, err := agg.Contacts()
	if err != nil {
		t.Fatal(err)
	}

	cfg := domain.SortConfig{Column: domain.SortByName, Direction: domain.Ascending}
	domain.SortContacts(first, cfg)
	domain.SortContacts(second, cfg)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		a, b := first[i], second[i]
		if a.Name != b.Name || a.Path != b.Path || a.FormattedBirthday != b.FormattedBirthday {
			t.Errorf("contact %d differs between refreshes: %+v vs %+v", i, a, b)
		}
		if (a.Age == nil) != (b.Age == nil) || (a.Age != nil && *a.Age != *b.Age) {
			t.Errorf("contact %d age differs between refreshes", i)
		}
		if (a.DaysUntilBirthday == nil) != (b.DaysUntilBirthday == nil) ||
			(a.DaysUntilBirthday != nil && *a.DaysUntilBirthday != *b.DaysUntilBirthday) {
			t.Errorf("contact %d countdown differs between refreshes", i)
		}
	}
}

func TestDaysAgoAcrossSpringForward(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}

	// 2024-03-10 is a 23-hour day in this zone; the span must still
	// count as two whole days.
	now := time.Date(2024, time.March, 11, 9, 0, 0, 0, loc)
	label, days := daysAgo(now, "2024-03-09")
	if *days != 2 {
		t.Errorf("days = %d, want 2", *days)
	}
	if label != "2 days" {
		t.Errorf("label = %q, want %q", label, "2 days")
	}
}

func TestRelationshipTypes(t *testing.T) {
	contacts := []domain.Contact{
		{Name: "A", Relationship: "friend"},
		{Name: "B", Relationship: "family"},
		{Name: "C", Relationship: "friend"},
		{Name: "D"},
	}

	types := RelationshipTypes(contacts)
	if len(types) != 2 || types[0] != "friend" || types[1] != "family" {
		t.Errorf("types = %v, want [friend family]", types)
	}
}
