package application

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"math"
	"time"

	"friendtracker/internal/domain"
	"friendtracker/internal/ports"
)

// Aggregator turns the raw contact documents into the enriched roster
// list. It is read-only and holds no cache: every call re-reads the store.
type Aggregator struct {
	Store ports.ContactStore
	Clock domain.Clock
}

// NewAggregator creates an aggregator over the given store using the real
// clock.
func NewAggregator(store ports.ContactStore) *Aggregator {
	return &Aggregator{Store: store, Clock: domain.RealClock{}}
}

// Contacts builds the current enriched contact list. Documents without a
// usable name are skipped silently; a missing collection folder yields an
// empty list and ErrFolderNotFound so the caller can raise a one-shot
// notice. Order follows store enumeration and is not guaranteed stable.
func (a *Aggregator) Contacts() ([]domain.Contact, error) {
	docs, err := a.Store.List()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrFolderNotFound
		}
		return nil, err
	}

	now := a.Clock.Now()
	contacts := make([]domain.Contact, 0, len(docs))
	for _, doc := range docs {
		if doc.Record == nil || doc.Record.Name == "" {
			slog.Debug("skipping contact document",
				"component", "aggregator", "path", doc.Path)
			continue
		}
		contacts = append(contacts, enrich(now, doc))
	}
	return contacts, nil
}

func enrich(now time.Time, doc ports.Document) domain.Contact {
	rec := doc.Record
	c := domain.Contact{
		Name:              rec.Name,
		Birthday:          rec.Birthday,
		Email:             rec.Email,
		Phone:             rec.Phone,
		Relationship:      rec.Relationship,
		Age:               domain.Age(now, rec.Birthday),
		FormattedBirthday: domain.FormattedBirthday(rec.Birthday),
		DaysUntilBirthday: domain.DaysUntilBirthday(now, rec.Birthday),
		Path:              doc.Path,
	}

	if latest := rec.LatestInteraction(); latest != nil {
		c.LastInteraction, c.LastInteractionDays = daysAgo(now, latest.Date)
	}
	return c
}

// daysAgo renders "<N> days" since the given date up to today's local
// midnight. Both endpoints are midnight-anchored and the difference
// rounded, so a 23-hour DST day still counts as one day. Unparseable
// dates count as zero days rather than erroring.
func daysAgo(now time.Time, date string) (string, *int) {
	days := 0
	if when, ok := domain.ParseBirthday(date); ok {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		then := time.Date(when.Year(), when.Month(), when.Day(), 0, 0, 0, 0, now.Location())
		days = int(math.Round(today.Sub(then).Hours() / 24))
	}
	return fmt.Sprintf("%d days", days), &days
}

// RelationshipTypes returns the distinct relationship values in use in
// the given list, in first-seen order, for populating the filter choices
// alongside the configured vocabulary.
func RelationshipTypes(contacts []domain.Contact) []string {
	seen := make(map[string]bool)
	var types []string
	for _, c := range contacts {
		if c.Relationship == "" || seen[c.Relationship] {
			continue
		}
		seen[c.Relationship] = true
		types = append(types, c.Relationship)
	}
	return types
}
