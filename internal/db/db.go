package db

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schemaSQL string

// Replacement is one recorded substitution
type Replacement struct {
	ID        int
	SessionID string
	Input     string
	From      byte
	To        byte
	Output    string
	Replaced  int
	CreatedAt time.Time
}

// Store keeps the replacement history in a sqlite database
type Store struct {
	db  *sql.DB
	log logrus.FieldLogger
}

// Open opens (creating if needed) the history database at path
func Open(path string, log logrus.FieldLogger) (*Store, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating directory: %w", err)
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	s := &Store{db: conn, log: log.WithField("db", path)}

	if err := s.createTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error creating tables: %w", err)
	}

	if err := s.checkAndUpdateSchema(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error checking and updating schema: %w", err)
	}

	s.log.Debug("Database initialized successfully")
	return s, nil
}

func (s *Store) createTables() error {
	if _, err := s.db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("error executing schema: %w", err)
	}
	return nil
}

func (s *Store) checkAndUpdateSchema() error {
	currentVersion, err := s.schemaVersion()
	if err != nil {
		return fmt.Errorf("error checking schema version: %w", err)
	}

	schemaVersions := []struct {
		version int
		schema  string
	}{
		{1, schemaSQL},
	}

	for _, sv := range schemaVersions {
		if sv.version <= currentVersion {
			continue
		}

		if _, err := s.db.Exec(sv.schema); err != nil {
			return fmt.Errorf("error applying schema version %d: %w", sv.version, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", sv.version); err != nil {
			return fmt.Errorf("error updating schema version: %w", err)
		}

		s.log.Debugf("Applied schema version %d", sv.version)
	}

	return nil
}

// schemaVersion returns the highest applied schema version
func (s *Store) schemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	return v, err
}

func (s *Store) AddReplacement(r Replacement) error {
	query := `INSERT INTO replacements (session_id, input, from_char, to_char, output, replaced)
              VALUES (?, ?, ?, ?, ?, ?);`
	_, err := s.db.Exec(query, r.SessionID, r.Input, string([]byte{r.From}), string([]byte{r.To}), r.Output, r.Replaced)
	if err != nil {
		s.log.Errorf("Error adding replacement: %v", err)
		return err
	}
	return nil
}

// GetReplacements returns the most recent replacements first. A limit of
// zero or less returns all of them.
func (s *Store) GetReplacements(limit int) ([]Replacement, error) {
	query := `SELECT id, session_id, input, from_char, to_char, output, replaced, created_at
              FROM replacements
              ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	return s.queryReplacements(query, args...)
}

// GetSessionReplacements returns the replacements of one session in the
// order they were made.
func (s *Store) GetSessionReplacements(sessionID string) ([]Replacement, error) {
	query := `SELECT id, session_id, input, from_char, to_char, output, replaced, created_at
              FROM replacements
              WHERE session_id = ?
              ORDER BY id ASC`
	return s.queryReplacements(query, sessionID)
}

func (s *Store) queryReplacements(query string, args ...interface{}) ([]Replacement, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		s.log.Errorf("Error querying replacements: %v", err)
		return nil, err
	}
	defer rows.Close()

	var replacements []Replacement
	for rows.Next() {
		var r Replacement
		var from, to string
		err := rows.Scan(&r.ID, &r.SessionID, &r.Input, &from, &to, &r.Output, &r.Replaced, &r.CreatedAt)
		if err != nil {
			s.log.Errorf("Error scanning replacement row: %v", err)
			return nil, err
		}
		r.From = firstByte(from)
		r.To = firstByte(to)
		replacements = append(replacements, r)
	}

	if err := rows.Err(); err != nil {
		s.log.Errorf("Error after scanning rows: %v", err)
		return nil, err
	}

	return replacements, nil
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}

// FlushDB removes every recorded replacement and resets the id counter
func (s *Store) FlushDB() error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM replacements;"); err != nil {
		return fmt.Errorf("error clearing table replacements: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM sqlite_sequence WHERE name = 'replacements';"); err != nil {
		return fmt.Errorf("error resetting auto-increment for table replacements: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	s.log.Info("History flushed")
	return nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	if err := s.db.Close(); err != nil {
		s.log.Errorf("Error closing database: %v", err)
		return err
	}
	s.log.Debug("Database closed successfully")
	return nil
}
