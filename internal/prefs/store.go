// Package prefs implements the SQLite-backed preferences store that the
// Anki application reads its profiles from. The store maps case-insensitive
// profile names to pickled record blobs; records are always rewritten whole
// with insert-or-replace semantics.
package prefs

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/sebbacon/anki-sprite/pkg/types"
)

// PrefsFileName is the preferences database file under the Anki base
// directory.
const PrefsFileName = "prefs21.db"

// schemaSQL matches the DDL the Anki application itself uses for the
// profiles table.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS profiles
(name text primary key collate nocase, data blob not null)
`

// Store is a handle on an open preferences database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the preferences database under baseDir, creating the directory,
// the database file, and the profiles table as needed. Unlike a fresh
// install it never resets an existing database: pre-existing records must
// survive a run.
func Open(baseDir string) (*Store, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating base dir: %w", err)
	}

	path := filepath.Join(baseDir, PrefsFileName)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening prefs db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating profiles table: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Path returns the location of the database file.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the named profile record. Returns
// types.ErrProfileNotFound if no row exists. Name comparison is
// case-insensitive per the table collation.
func (s *Store) Load(name string) (Record, error) {
	var data []byte
	err := s.db.QueryRow(
		"SELECT data FROM profiles WHERE name = ?", name).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, types.ErrProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile %q: %w", name, err)
	}

	rec, err := DecodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("loading profile %q: %w", name, err)
	}
	return rec, nil
}

// Save encodes and upserts the named profile record. Last writer wins; there
// is no optimistic concurrency.
func (s *Store) Save(name string, rec Record) error {
	data, err := EncodeRecord(rec)
	if err != nil {
		return fmt.Errorf("saving profile %q: %w", name, err)
	}
	if _, err := s.db.Exec(
		"INSERT OR REPLACE INTO profiles (name, data) VALUES (?, ?)",
		name, data); err != nil {
		return fmt.Errorf("saving profile %q: %w", name, err)
	}
	return nil
}

// Names returns the profile record names currently in the store, in
// insertion-independent sorted order.
func (s *Store) Names() ([]string, error) {
	rows, err := s.db.Query("SELECT name FROM profiles ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning profile name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// Close releases the database handle. Close is idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}
