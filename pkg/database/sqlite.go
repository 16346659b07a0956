package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DBIface interface for database abstraction
type DBIface interface {
	Query(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRow(ctx context.Context, query string, args ...any) *sql.Row
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
	Begin(ctx context.Context) (*sql.Tx, error)
	Ping(ctx context.Context) error
	Close() error
}

// DB wrapper struct
type DB struct {
	conn *sql.DB
}

// Query implements DBIface
func (db *DB) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	return db.conn.QueryContext(ctx, query, args...)
}

// QueryRow implements DBIface
func (db *DB) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return db.conn.QueryRowContext(ctx, query, args...)
}

// Exec implements DBIface
func (db *DB) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return db.conn.ExecContext(ctx, query, args...)
}

// Begin implements DBIface
func (db *DB) Begin(ctx context.Context) (*sql.Tx, error) {
	return db.conn.BeginTx(ctx, nil)
}

// Ping implements DBIface
func (db *DB) Ping(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// Close implements DBIface
func (db *DB) Close() error {
	return db.conn.Close()
}

const schema = `
	CREATE TABLE IF NOT EXISTS movies (
		movie_id     INTEGER PRIMARY KEY AUTOINCREMENT,
		title        TEXT NOT NULL,
		genre        TEXT,
		duration     INTEGER,
		release_date TEXT
	);

	CREATE TABLE IF NOT EXISTS rooms (
		room_id      INTEGER PRIMARY KEY AUTOINCREMENT,
		room_number  INTEGER NOT NULL,
		max_capacity INTEGER
	);

	CREATE TABLE IF NOT EXISTS showtimes (
		showtime_id INTEGER PRIMARY KEY AUTOINCREMENT,
		movie_id    INTEGER NOT NULL REFERENCES movies(movie_id),
		room_id     INTEGER NOT NULL REFERENCES rooms(room_id),
		show_date   TEXT NOT NULL,
		show_time   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS movie_room_association (
		movie_id INTEGER NOT NULL REFERENCES movies(movie_id),
		room_id  INTEGER NOT NULL REFERENCES rooms(room_id),
		PRIMARY KEY (movie_id, room_id)
	);
`

// InitDB opens (or creates) the store file and ensures the schema exists
func InitDB(path string) (DBIface, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single-connection, single-writer store
	conn.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}

	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	// Idempotent: re-running on an existing file is a no-op
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{conn: conn}, nil
}
