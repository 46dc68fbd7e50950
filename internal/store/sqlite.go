package store

import (
	"database/sql"
	"errors"
	"fmt"

	"mygrow-go/internal/journal"
	"mygrow-go/internal/store/migrations"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteStore implements the DocumentStore interface using a single SQLite
// database with one row per (user, document) pair. An embedded alternative
// to the filesystem layout for hosts where many small JSON files are
// undesirable.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite-backed document store at the
// given path and brings its schema up to date. path can be ":memory:" for
// an in-memory database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := OpenConnection(path)
	if err != nil {
		return nil, err
	}

	if err := migrations.MigrateUp(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating document store: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// OpenConnection opens and configures a SQLite database connection with
// appropriate PRAGMAs. Exported for tests that need a raw connection.
func OpenConnection(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Wait up to 5s for locks rather than failing immediately.
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return db, nil
}

// ReadDocument returns the current contents of a named document.
func (s *SQLiteStore) ReadDocument(user, name string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM documents WHERE user_id = ? AND name = ?",
		user, name,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, journal.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("reading document %s/%s: %w", user, name, err)
	}
	return data, nil
}

// WriteDocument replaces a named document's contents. The single-statement
// upsert is atomic at the document granularity.
func (s *SQLiteStore) WriteDocument(user, name string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO documents (user_id, name, data, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (user_id, name)
		 DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		user, name, data,
	)
	if err != nil {
		return fmt.Errorf("writing document %s/%s: %w", user, name, err)
	}
	return nil
}

// ValidateSetup verifies that the schema is present and up to date.
func (s *SQLiteStore) ValidateSetup() error {
	return migrations.CheckDBMigrationStatus(s.db)
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Compile-time check that SQLiteStore implements journal.DocumentStore
var _ journal.DocumentStore = (*SQLiteStore)(nil)
