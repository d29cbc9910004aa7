package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/planboard/pkg/types"
)

// sqliteFileName is the database file created inside the data directory.
const sqliteFileName = "planboard.db"

// SQLiteStore keeps every collection as one row of the collections table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database in dataDir and applies the schema.
func OpenSQLite(dataDir string) (*SQLiteStore, error) {
	dbPath := filepath.Join(dataDir, sqliteFileName)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite allows a single writer; one connection avoids SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	for _, pragma := range sqlitePragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(createCollections); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Read returns the stored document, or types.ErrNoDocument if the collection
// has never been written.
func (s *SQLiteStore) Read(collection string) ([]byte, error) {
	var doc string
	err := s.db.QueryRow(selectDocument, collection).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNoDocument(collection)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", collection, err)
	}
	return []byte(doc), nil
}

// Write replaces the collection row in a single upsert.
func (s *SQLiteStore) Write(collection string, data []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := s.db.Exec(upsertDocument, collection, string(data), now); err != nil {
		return fmt.Errorf("writing %s: %w", collection, err)
	}
	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func errNoDocument(collection string) error {
	return fmt.Errorf("%s: %w", collection, types.ErrNoDocument)
}
