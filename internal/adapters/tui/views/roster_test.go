package views

import (
	"io/fs"
	"slices"
	"testing"

	"friendtracker/internal/application"
	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

type stubStore struct {
	docs []ports.Document
}

func (s *stubStore) Root() string                  { return "contacts" }
func (s *stubStore) List() ([]ports.Document, error) { return s.docs, nil }
func (s *stubStore) Read(path string) (*domain.Record, string, error) {
	return nil, "", fs.ErrNotExist
}
func (s *stubStore) Create(name string, rec *domain.Record) (string, error) {
	return "", fs.ErrInvalid
}
func (s *stubStore) UpdateHeader(path string, rec *domain.Record) error { return nil }
func (s *stubStore) UpdateBody(path, body string) error                 { return nil }
func (s *stubStore) Trash(path string) error                            { return nil }
func (s *stubStore) Rename(oldPath, newPath string) error               { return nil }

func newTestRoster() *RosterModel {
	agg := application.NewAggregator(&stubStore{})
	return NewRosterModel(agg, domain.SortConfig{
		Column:    domain.SortByName,
		Direction: domain.Ascending,
	}, nil)
}

func intPtr(v int) *int { return &v }

func TestCellFormatting(t *testing.T) {
	tests := []struct {
		name    string
		contact domain.Contact
		cell    func(domain.Contact) string
		want    string
	}{
		{"age present", domain.Contact{Age: intPtr(34)}, ageCell, "34"},
		{"age missing", domain.Contact{}, ageCell, missingCell},
		{"birthday present", domain.Contact{FormattedBirthday: "March 4"}, birthdayCell, "March 4"},
		{"birthday missing", domain.Contact{}, birthdayCell, missingCell},
		{"countdown today", domain.Contact{DaysUntilBirthday: intPtr(0)}, countdownCell, "today!"},
		{"countdown days", domain.Contact{DaysUntilBirthday: intPtr(12)}, countdownCell, "12d"},
		{"countdown missing", domain.Contact{}, countdownCell, missingCell},
		{"relationship missing", domain.Contact{}, relationshipCell, missingCell},
		{"last seen present", domain.Contact{LastInteraction: "3 days"}, lastSeenCell, "3 days"},
		{"last seen missing", domain.Contact{}, lastSeenCell, missingCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell(tt.contact); got != tt.want {
				t.Errorf("cell = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRosterRefreshLatch(t *testing.T) {
	m := newTestRoster()

	if cmd := m.Refresh(); cmd == nil {
		t.Fatal("first Refresh should start a load")
	}
	// Triggers during a load are dropped outright.
	if cmd := m.Refresh(); cmd != nil {
		t.Error("Refresh during load should be dropped")
	}
	if cmd := m.Refresh(); cmd != nil {
		t.Error("repeated triggers must not stack")
	}

	// Completion releases the latch without scheduling a rerun.
	model, cmd := m.Update(contactsLoadedMsg{})
	m = model.(*RosterModel)
	if cmd != nil {
		t.Error("no rerun expected without further triggers")
	}
	if m.loading {
		t.Error("latch should release after the load")
	}

	// The next trigger starts a fresh load.
	if cmd := m.Refresh(); cmd == nil {
		t.Error("Refresh after completion should start a load")
	}
}

func TestRosterFilterCycleIncludesVocabulary(t *testing.T) {
	agg := application.NewAggregator(&stubStore{})
	m := NewRosterModel(agg, domain.SortConfig{
		Column:    domain.SortByName,
		Direction: domain.Ascending,
	}, []string{"friend", "family"})

	// The configured vocabulary is offered even before any contact uses
	// it; values found in use extend the cycle.
	model, _ := m.Update(contactsLoadedMsg{
		contacts:          []domain.Contact{{Name: "Pat", Relationship: "penpal"}},
		relationshipTypes: []string{"penpal"},
	})
	m = model.(*RosterModel)

	want := []string{"friend", "family", "penpal"}
	if !slices.Equal(m.relationshipTypes, want) {
		t.Fatalf("relationshipTypes = %v, want %v", m.relationshipTypes, want)
	}
}

func TestRosterCycleRelationship(t *testing.T) {
	m := newTestRoster()
	m.relationshipTypes = []string{"family", "friend"}

	want := []string{"family", "friend", domain.RelationshipAll, "family"}
	for _, expected := range want {
		m.cycleRelationship()
		if m.filter.Relationship != expected {
			t.Fatalf("filter = %q, want %q", m.filter.Relationship, expected)
		}
	}
}

func TestRosterCursorClampsOnShrink(t *testing.T) {
	m := newTestRoster()
	m.all = []domain.Contact{{Name: "Ada"}, {Name: "Bea"}, {Name: "Cy"}}
	m.applySortFilter()
	m.cursor = 2

	m.filter.Search = "ada"
	m.applySortFilter()

	if len(m.visible) != 1 {
		t.Fatalf("visible = %d, want 1", len(m.visible))
	}
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want 0", m.cursor)
	}
}

func TestPadRight(t *testing.T) {
	if got := padRight("ab", 5); got != "ab   " {
		t.Errorf("padRight short = %q", got)
	}
	if got := padRight("abcdef", 4); got != "abc…" {
		t.Errorf("padRight truncation = %q", got)
	}
}
