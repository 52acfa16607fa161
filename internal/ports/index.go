package ports

import "friendtracker/internal/domain"

// ContactIndex provides keyword search across contact fields, interaction
// text, and note bodies. It is a derived cache over the contact folder;
// the roster never reads from it, only the search surfaces do.
type ContactIndex interface {
	// Lifecycle
	Open(folder string) error
	Close() error

	// NeedsRebuild reports whether the index is stale or belongs to a
	// different folder and must be synced before searching.
	NeedsRebuild() bool

	// Sync rebuilds the index from the contact folder.
	Sync() (*domain.IndexStats, error)

	// Search returns matches for a case-insensitive keyword.
	Search(query string) ([]domain.SearchResult, error)
}
