package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/lib/pq"

	"github.com/julianstephens/vitalog/internal/constants"
)

// PostgresAdapter stores the document in a single-row key-value table in
// PostgreSQL. Selected for postgres:// storage values; the connection string
// must come from the OS keyring or the environment, never embedded
// credentials on the command line.
type PostgresAdapter struct {
	connStr string
	db      *sql.DB
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password inline.
func HasEmbeddedCredentials(connStr string) bool {
	u, err := url.Parse(connStr)
	if err != nil || u.User == nil {
		return false
	}
	_, hasPassword := u.User.Password()
	return hasPassword
}

func NewPostgresAdapter(connStr string) (*PostgresAdapter, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS vitalog_document (
		key TEXT PRIMARY KEY,
		value BYTEA NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create document table: %w", err)
	}

	return &PostgresAdapter{connStr: connStr, db: db}, nil
}

func (p *PostgresAdapter) Read() ([]byte, error) {
	var value []byte
	err := p.db.QueryRow(`SELECT value FROM vitalog_document WHERE key = $1`, constants.DocumentKey).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return value, nil
}

func (p *PostgresAdapter) Write(data []byte) error {
	_, err := p.db.Exec(`INSERT INTO vitalog_document (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, constants.DocumentKey, data)
	if err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

func (p *PostgresAdapter) Close() error {
	return p.db.Close()
}

func (p *PostgresAdapter) Path() string {
	return p.connStr
}
