package doc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/ncruces/go-sqlite3/driver" // SQLite driver for database/sql
	_ "github.com/ncruces/go-sqlite3/embed"  // Embed SQLite for cross-platform compatibility
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	uri        TEXT PRIMARY KEY,
	text       TEXT NOT NULL,
	revision   INTEGER NOT NULL DEFAULT 1,
	updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Store persists document text per URI in a local sqlite database. It is the
// source of truth behind the standalone host; committed text is written
// through to it after every successful mutation.
type Store struct {
	db      *sql.DB
	timeout time.Duration
}

// OpenStore opens (and if needed initializes) the document store at path.
func OpenStore(path string, timeout time.Duration) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.Exec(createDocumentsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize database schema: %w", err)
	}

	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Store{db: db, timeout: timeout}, nil
}

// Load returns the saved text and revision for uri. It returns ErrNotFound
// when the URI has never been saved.
func (s *Store) Load(ctx context.Context, uri string) (string, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var text string
	var revision int64
	err := s.db.QueryRowContext(ctx,
		`SELECT text, revision FROM documents WHERE uri = ?`, uri,
	).Scan(&text, &revision)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, ErrNotFound
	}
	if err != nil {
		return "", 0, fmt.Errorf("failed to load document %s: %w", uri, err)
	}
	return text, revision, nil
}

// Save upserts the text for uri, bumping its revision.
func (s *Store) Save(ctx context.Context, uri, text string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents (uri, text, revision, updated_at)
		VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		ON CONFLICT(uri) DO UPDATE SET
			text = excluded.text,
			revision = documents.revision + 1,
			updated_at = CURRENT_TIMESTAMP`,
		uri, text)
	if err != nil {
		return fmt.Errorf("failed to save document %s: %w", uri, err)
	}
	return nil
}

// Delete removes the saved document for uri, if any.
func (s *Store) Delete(ctx context.Context, uri string) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM documents WHERE uri = ?`, uri); err != nil {
		return fmt.Errorf("failed to delete document %s: %w", uri, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
