package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Record is the raw frontmatter of a contact document, the authoritative
// store for all contact fields. Known fields are typed; anything else the
// user added lands in Extras and is written back verbatim.
type Record struct {
	Name         string        `yaml:"name,omitempty"`
	Birthday     string        `yaml:"birthday,omitempty"`
	Email        string        `yaml:"email,omitempty"`
	Phone        string        `yaml:"phone,omitempty"`
	Address      string        `yaml:"address,omitempty"`
	Relationship string        `yaml:"relationship,omitempty"`
	Notes        string        `yaml:"notes,omitempty"`
	Created      string        `yaml:"created,omitempty"`
	Updated      string        `yaml:"updated,omitempty"`
	Interactions []Interaction  `yaml:"interactions,omitempty"`
	Extras       map[string]any `yaml:",inline"`
}

// Interaction is a dated free-text log entry attached to a contact.
type Interaction struct {
	Date string `yaml:"date"`
	Text string `yaml:"text"`
}

// Contact is a record enriched with computed display attributes. It lives
// only in memory; the roster rebuilds the whole list on every refresh.
type Contact struct {
	Name              string
	Birthday          string
	Email             string
	Phone             string
	Relationship      string
	Age               *int   // nil when birthday is empty or unparseable
	FormattedBirthday string // "March 4"
	DaysUntilBirthday *int   // nil when birthday is empty or unparseable

	// LastInteraction is a "<N> days" summary of the most recent logged
	// interaction, empty when none. LastInteractionDays carries the raw
	// count for sorting.
	LastInteraction     string
	LastInteractionDays *int

	// Path identifies the backing document. It is borrowed from the
	// store and never mutated here.
	Path string
}

// SetField assigns a value to a known field by its frontmatter key, or to
// Extras for anything unrecognized.
func (r *Record) SetField(key, value string) {
	switch key {
	case "name":
		r.Name = value
	case "birthday":
		r.Birthday = value
	case "email":
		r.Email = value
	case "phone":
		r.Phone = value
	case "address":
		r.Address = value
	case "relationship":
		r.Relationship = strings.ToLower(value)
	case "notes":
		r.Notes = value
	default:
		if r.Extras == nil {
			r.Extras = make(map[string]any)
		}
		r.Extras[key] = value
	}
}

// Field returns the value of a known field or extra by frontmatter key.
func (r *Record) Field(key string) string {
	switch key {
	case "name":
		return r.Name
	case "birthday":
		return r.Birthday
	case "email":
		return r.Email
	case "phone":
		return r.Phone
	case "address":
		return r.Address
	case "relationship":
		return r.Relationship
	case "notes":
		return r.Notes
	default:
		if v, ok := r.Extras[key]; ok {
			return fmt.Sprint(v)
		}
		return ""
	}
}

// NormalizeInteractions sorts the interaction log newest-first. Every
// mutation re-normalizes before the record is persisted; files edited
// outside the app carry no such guarantee until their next write.
func (r *Record) NormalizeInteractions() {
	slices.SortStableFunc(r.Interactions, func(a, b Interaction) int {
		return strings.Compare(b.Date, a.Date)
	})
}

// LatestInteraction returns the most recent interaction by date, or nil
// when the log is empty. It scans rather than trusting order, since
// externally edited files may be unsorted.
func (r *Record) LatestInteraction() *Interaction {
	var latest *Interaction
	for i := range r.Interactions {
		if latest == nil || r.Interactions[i].Date > latest.Date {
			latest = &r.Interactions[i]
		}
	}
	return latest
}
