package sqlite

import (
	"friendtracker/internal/domain"
)

// Sync performs a complete rebuild of the index from the contact folder
func (idx *Index) Sync() (*domain.IndexStats, error) {
	stats := &domain.IndexStats{}

	docs, err := idx.store.List()
	if err != nil {
		return nil, err
	}

	tx, err := idx.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Clear inside the transaction so a failed rebuild rolls back to the
	// previous index instead of leaving it emptied.
	if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
		return nil, err
	}
	if _, err := tx.Exec(`DELETE FROM interactions`); err != nil {
		return nil, err
	}

	insertContact, err := tx.Prepare(`
		INSERT OR REPLACE INTO contacts (path, name, relationship, email, phone, notes, body)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer insertContact.Close()

	insertInteraction, err := tx.Prepare(`
		INSERT INTO interactions (path, date, text) VALUES (?, ?, ?)
	`)
	if err != nil {
		return nil, err
	}
	defer insertInteraction.Close()

	for _, doc := range docs {
		stats.FilesScanned++
		if doc.Record == nil || doc.Record.Name == "" {
			stats.FilesSkipped++
			continue
		}

		// Re-read for the body; the listing only carries headers.
		rec, body, err := idx.store.Read(doc.Path)
		if err != nil || rec == nil {
			stats.FilesSkipped++
			continue
		}

		_, err = insertContact.Exec(doc.Path, rec.Name, rec.Relationship,
			rec.Email, rec.Phone, rec.Notes, body)
		if err != nil {
			stats.FilesSkipped++
			continue
		}
		stats.ContactsIndexed++

		for _, in := range rec.Interactions {
			if _, err := insertInteraction.Exec(doc.Path, in.Date, in.Text); err == nil {
				stats.InteractionsIndexed++
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	if err := idx.updateMeta(); err != nil {
		return nil, err
	}
	return stats, nil
}
