package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/vitalog/internal/constants"
)

// SQLiteAdapter stores the document in a single-row key-value table inside a
// SQLite database. Selected when the configured storage path ends in ".db".
type SQLiteAdapter struct {
	path string
	db   *sql.DB
}

func NewSQLiteAdapter(path string) (*SQLiteAdapter, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS document (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create document table: %w", err)
	}

	return &SQLiteAdapter{path: path, db: db}, nil
}

func (s *SQLiteAdapter) Read() ([]byte, error) {
	var value []byte
	err := s.db.QueryRow(`SELECT value FROM document WHERE key = ?`, constants.DocumentKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return value, nil
}

func (s *SQLiteAdapter) Write(data []byte) error {
	_, err := s.db.Exec(`INSERT INTO document (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`, constants.DocumentKey, data)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (s *SQLiteAdapter) Close() error {
	return s.db.Close()
}

func (s *SQLiteAdapter) Path() string {
	return s.path
}
