// Package sqlite provides a read-only record source backed by a SQLite
// file, the local stand-in for the agency's fetch layer.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	*sql.DB
}

// New opens a SQLite database at the given path.
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the record tables. The source only reads; the
// schema exists so seed tooling and tests share one definition.
func (db *DB) RunMigrations() error {
	schema := `
CREATE TABLE IF NOT EXISTS records (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    type TEXT NOT NULL CHECK(type IN ('case', 'assessment', 'report', 'document')),
    client TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    status TEXT NOT NULL CHECK(status IN ('active', 'closed', 'pending', 'archived')),
    tags TEXT NOT NULL DEFAULT '',
    priority TEXT,
    completeness INTEGER,
    owner TEXT,
    last_accessed TIMESTAMP,
    compliance TEXT,
    favorite INTEGER NOT NULL DEFAULT 0
);

-- Ordered references to other records; the target may not exist, dangling
-- links are tolerated upstream.
CREATE TABLE IF NOT EXISTS record_links (
    record_id TEXT NOT NULL REFERENCES records(id) ON DELETE CASCADE,
    related_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (record_id, related_id)
);
CREATE INDEX IF NOT EXISTS idx_record_links_record ON record_links(record_id);
`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
