// Package sqlite provides SQLite-based storage for seospider: the crawl
// job lifecycle, the relational page sink, and the crawl status oracle.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// DB represents a SQLite database connection.
type DB struct {
	db   *sql.DB
	path string
}

// NewDB creates a new DB instance with the given path.
// Use ":memory:" for an in-memory database.
func NewDB(path string) *DB {
	return &DB{path: path}
}

// Open opens the database connection and creates the schema if needed.
func (db *DB) Open() error {
	conn, err := sql.Open("sqlite3", db.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer at a time, so limit to one connection.
	conn.SetMaxOpenConns(1)

	// Verify connection
	if err := conn.Ping(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	// Set busy timeout to wait 5 seconds before failing on lock contention.
	// This prevents immediate "database is locked" errors.
	if _, err := conn.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Enable WAL mode for file-based databases for better write performance.
	// Note: WAL mode is not supported for in-memory databases.
	if db.path != ":memory:" {
		if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
			conn.Close()
			return fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	// Enable foreign key constraints
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	db.db = conn

	// Create schema
	if err := db.createSchema(); err != nil {
		conn.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	if db.db != nil {
		return db.db.Close()
	}
	return nil
}

// QueryRowContext executes a query that returns a single row.
func (db *DB) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	return db.db.QueryRowContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (db *DB) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.db.QueryContext(ctx, query, args...)
}

// ExecContext executes a statement that doesn't return rows.
func (db *DB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.db.ExecContext(ctx, query, args...)
}

// createSchema creates the database tables if they don't exist.
//
// page_links carries a uniqueness constraint per (crawl, source,
// destination): the crawler emits one insert per anchor occurrence and
// relies on duplicate-key detection to skip repeats.
func (db *DB) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS crawls (
			id TEXT PRIMARY KEY,
			domain TEXT NOT NULL,
			owner_id TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL DEFAULT 'running',
			created_at TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS pages (
			id TEXT PRIMARY KEY,
			crawl_id TEXT NOT NULL REFERENCES crawls(id) ON DELETE CASCADE,
			url TEXT NOT NULL,
			status_code INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL DEFAULT '',
			meta_description TEXT NOT NULL DEFAULT '',
			canonical TEXT NOT NULL DEFAULT '',
			schema_types TEXT NOT NULL DEFAULT '',
			text_length INTEGER NOT NULL DEFAULT 0,
			full_text TEXT NOT NULL DEFAULT '',
			content_hash TEXT NOT NULL DEFAULT '',
			h1_count INTEGER NOT NULL DEFAULT 0,
			h2_count INTEGER NOT NULL DEFAULT 0,
			h3_count INTEGER NOT NULL DEFAULT 0,
			h4_count INTEGER NOT NULL DEFAULT 0,
			h5_count INTEGER NOT NULL DEFAULT 0,
			h6_count INTEGER NOT NULL DEFAULT 0,
			internal_links INTEGER NOT NULL DEFAULT 0,
			external_links INTEGER NOT NULL DEFAULT 0,
			nofollow_links INTEGER NOT NULL DEFAULT 0,
			target_keyword TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_pages_crawl_id ON pages(crawl_id);

		CREATE TABLE IF NOT EXISTS page_links (
			crawl_id TEXT NOT NULL REFERENCES crawls(id) ON DELETE CASCADE,
			from_url TEXT NOT NULL,
			to_url TEXT NOT NULL,
			is_nofollow INTEGER NOT NULL DEFAULT 0,
			link_count INTEGER NOT NULL DEFAULT 1,
			UNIQUE(crawl_id, from_url, to_url)
		);

		CREATE TABLE IF NOT EXISTS page_images (
			page_id TEXT NOT NULL REFERENCES pages(id) ON DELETE CASCADE,
			crawl_id TEXT NOT NULL,
			src TEXT NOT NULL,
			alt TEXT NOT NULL DEFAULT '',
			format TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_page_images_page_id ON page_images(page_id);
	`

	_, err := db.db.Exec(schema)
	return err
}
