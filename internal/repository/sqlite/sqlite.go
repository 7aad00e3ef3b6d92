// Package sqlite implements the repository interfaces using SQLite as the storage backend.
//
// WHY SQLITE NEXT TO THE MEMORY STORE?
// The memory store is the default, but SQLite gives the same contract with real
// SQL underneath: AUTOINCREMENT ids, ordered SELECTs, context-aware queries.
// The default DSN is ":memory:", so even this backend forgets everything on
// restart unless an operator points DB_PATH at a file.
//
// WHY modernc.org/sqlite INSTEAD OF github.com/mattn/go-sqlite3?
// mattn/go-sqlite3 uses CGo, which means you need a C compiler installed and
// cross-compilation becomes painful. modernc.org/sqlite is pure Go.
//
// DATABASE/SQL OVERVIEW:
//  1. sql.Open(driverName, dataSourceName) → creates a pool
//  2. db.QueryContext / db.ExecContext     → runs queries
//  3. rows.Scan(&field1, &field2)          → reads results into Go variables
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/sakif/filmstudio/internal/repository"

	// Registers the "sqlite" driver with database/sql.
	_ "modernc.org/sqlite"
)

var _ repository.Store = (*DB)(nil)

// DB wraps a sql.DB connection pool and provides repository methods.
type DB struct {
	conn *sql.DB
}

// New opens the database at dsn, creates the tables and seeds the showcase
// projects if the projects table is empty.
// Typical DSNs:
// dsn examples:
//   - ":memory:"            → volatile, gone when the process exits (default)
//   - "data/studio.db"      → file-based
//
// ONE CONNECTION ONLY:
// Every new connection to ":memory:" opens a brand-new, empty database. If the
// pool were allowed to open a second connection, half the queries would see no
// tables at all. Pinning the pool to one connection also serialises writes,
// which keeps AUTOINCREMENT ids strictly increasing under concurrent requests.
func New(dsn string) (*DB, error) {
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: opening database: %w", err)
	}
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(0)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: pinging database: %w", err)
	}

	// WAL lets readers proceed while a write is in flight on file databases.
	// On ":memory:" SQLite silently keeps its "memory" journal mode.
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: setting WAL mode: %w", err)
	}

	db := &DB{conn: conn}

	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: running migrations: %w", err)
	}

	if err := db.seed(context.Background()); err != nil {
		conn.Close()
		return nil, fmt.Errorf("sqlite: %w", err)
	}

	return db, nil
}

// Close closes the database connection pool.
func (db *DB) Close() error {
	return db.conn.Close()
}

// migrate creates the three tables.
//
// AUTOINCREMENT (not just INTEGER PRIMARY KEY) guarantees SQLite never hands
// out an id twice, even if the highest row were somehow removed. Plain rowid
// tables may reuse max(rowid)+1.
func (db *DB) migrate() error {
	_, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			password TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_users_username ON users(username);
	`)
	if err != nil {
		return fmt.Errorf("creating users table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS projects (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			title         TEXT NOT NULL,
			type          TEXT NOT NULL,
			description   TEXT NOT NULL,
			thumbnail_url TEXT NOT NULL,
			video_url     TEXT NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating projects table: %w", err)
	}

	_, err = db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS contact_messages (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			name       TEXT NOT NULL,
			email      TEXT NOT NULL,
			subject    TEXT NOT NULL,
			message    TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
	`)
	if err != nil {
		return fmt.Errorf("creating contact_messages table: %w", err)
	}

	return nil
}

// seed inserts the showcase projects into an empty projects table. A file
// database that already holds projects is left alone, so restarting against
// the same file does not duplicate the seeds.
func (db *DB) seed(ctx context.Context) error {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM projects`).Scan(&count); err != nil {
		return fmt.Errorf("counting projects: %w", err)
	}
	if count > 0 {
		return nil
	}
	return repository.Seed(ctx, db)
}
