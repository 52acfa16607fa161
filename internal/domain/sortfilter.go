package domain

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortColumn identifies a sortable roster column.
type SortColumn string

const (
	SortByName              SortColumn = "name"
	SortByAge               SortColumn = "age"
	SortByBirthday          SortColumn = "birthday"
	SortByDaysUntilBirthday SortColumn = "daysUntilBirthday"
	SortByRelationship      SortColumn = "relationship"
	SortByLastInteraction   SortColumn = "lastInteraction"
)

// SortColumns lists all sortable columns in display order.
var SortColumns = []SortColumn{
	SortByName,
	SortByAge,
	SortByBirthday,
	SortByDaysUntilBirthday,
	SortByRelationship,
	SortByLastInteraction,
}

// SortDirection is the order applied to the active sort column.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// SortConfig is the roster's current sort state.
type SortConfig struct {
	Column    SortColumn
	Direction SortDirection
}

// Toggle applies a header activation: selecting the active column flips
// its direction, selecting another column starts it ascending.
func (s *SortConfig) Toggle(column SortColumn) {
	if s.Column == column {
		if s.Direction == Ascending {
			s.Direction = Descending
		} else {
			s.Direction = Ascending
		}
		return
	}
	s.Column = column
	s.Direction = Ascending
}

// RelationshipAll is the sentinel relationship filter matching every contact.
const RelationshipAll = ""

// Filter restricts the roster. Search matches the contact name as a
// case-insensitive substring; Relationship matches exactly against the
// stored lowercase value. The two compose with AND.
type Filter struct {
	Search       string
	Relationship string
}

// SortContacts orders the list in place. The sort is stable, so contacts
// comparing equal keep their aggregation order. Absent values (nil age,
// nil countdown, no interactions) compare after every present value in
// ascending order; reversing the direction reverses the whole order,
// absent values included.
func SortContacts(contacts []Contact, cfg SortConfig) {
	dir := 1
	if cfg.Direction == Descending {
		dir = -1
	}
	col := collate.New(language.Und, collate.IgnoreCase)
	slices.SortStableFunc(contacts, func(a, b Contact) int {
		return compareColumn(col, cfg.Column, a, b) * dir
	})
}

func compareColumn(col *collate.Collator, column SortColumn, a, b Contact) int {
	switch column {
	case SortByAge:
		return compareNullable(a.Age, b.Age)
	case SortByDaysUntilBirthday:
		return compareNullable(a.DaysUntilBirthday, b.DaysUntilBirthday)
	case SortByLastInteraction:
		return compareNullable(a.LastInteractionDays, b.LastInteractionDays)
	case SortByBirthday:
		// Upcoming calendar date: month then day, year ignored.
		return compareNullable(monthDayKey(a.Birthday), monthDayKey(b.Birthday))
	case SortByRelationship:
		// An empty relationship is absent data, not the smallest string.
		switch {
		case a.Relationship == "" && b.Relationship == "":
			return 0
		case a.Relationship == "":
			return 1
		case b.Relationship == "":
			return -1
		}
		return col.CompareString(a.Relationship, b.Relationship)
	default:
		return col.CompareString(a.Name, b.Name)
	}
}

// compareNullable orders present values numerically and places nil after
// every present value.
func compareNullable(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}

func monthDayKey(birthday string) *int {
	birth, ok := ParseBirthday(birthday)
	if !ok {
		return nil
	}
	key := int(birth.Month())*100 + birth.Day()
	return &key
}

// FilterContacts returns the contacts matching the filter, preserving
// relative order. It runs after sorting and never reorders.
func FilterContacts(contacts []Contact, f Filter) []Contact {
	search := strings.ToLower(f.Search)
	out := make([]Contact, 0, len(contacts))
	for _, c := range contacts {
		if search != "" && !strings.Contains(strings.ToLower(c.Name), search) {
			continue
		}
		if f.Relationship != RelationshipAll && c.Relationship != f.Relationship {
			continue
		}
		out = append(out, c)
	}
	return out
}
