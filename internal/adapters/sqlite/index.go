package sqlite

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"friendtracker/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const schemaVersion = "1"

// Index implements ports.ContactIndex using SQLite. It is a derived
// cache over the contact folder used only by the search surfaces; the
// roster always reads the documents directly.
type Index struct {
	db     *sql.DB
	store  ports.ContactStore
	folder string
	dbPath string
}

// Ensure Index implements ContactIndex
var _ ports.ContactIndex = (*Index)(nil)

// NewIndex creates a new SQLite index backed by the given store
func NewIndex(store ports.ContactStore) *Index {
	return &Index{store: store}
}

// Open initializes the index for the given contact folder
func (idx *Index) Open(folder string) error {
	// Expand ~ in path
	if len(folder) > 0 && folder[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		folder = filepath.Join(home, folder[1:])
	}

	idx.folder = folder
	idx.dbPath = databasePath(folder)

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(idx.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create index directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite3", idx.dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	idx.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA cache_size = -64000;
		PRAGMA temp_store = MEMORY;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS contacts (
			path TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			relationship TEXT,
			email TEXT,
			phone TEXT,
			notes TEXT,
			body TEXT
		);
		CREATE TABLE IF NOT EXISTS interactions (
			path TEXT NOT NULL,
			date TEXT NOT NULL,
			text TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_contacts_name ON contacts(name);
		CREATE INDEX IF NOT EXISTS idx_interactions_path ON interactions(path);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (idx *Index) Close() error {
	if idx.db != nil {
		return idx.db.Close()
	}
	return nil
}

// NeedsRebuild returns true if the index is stale or belongs to a
// different contact folder
func (idx *Index) NeedsRebuild() bool {
	var version, folderHash string

	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'schema_version'").Scan(&version)
	idx.db.QueryRow("SELECT value FROM meta WHERE key = 'folder_hash'").Scan(&folderHash)

	return version != schemaVersion || folderHash != hashFolder(idx.folder)
}

// databasePath returns the path for the SQLite database
func databasePath(folder string) string {
	// XDG data directory
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	// Hash folder path for unique DB name
	hash := hashFolder(folder)

	return filepath.Join(dataHome, "friendtracker", hash+".db")
}

// hashFolder returns a short hash of the contact folder path
func hashFolder(folder string) string {
	h := sha256.Sum256([]byte(folder))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

// updateMeta updates the schema version and folder hash
func (idx *Index) updateMeta() error {
	_, err := idx.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('folder_hash', ?);
	`, schemaVersion, hashFolder(idx.folder))
	return err
}
