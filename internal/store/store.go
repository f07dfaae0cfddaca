package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// queryTimeout bounds every statement the store executes, so a pathological
// scan cannot hang a caller indefinitely. Expiry surfaces as an ordinary
// store error; nothing is retried.
const queryTimeout = 3 * time.Minute

// Construction failure categories. Open wraps every failure in exactly one
// of these so callers can tell an unreachable engine from a failed schema
// bootstrap.
var (
	// ErrUnreachable means the backing engine could not be reached or
	// probed at all.
	ErrUnreachable = errors.New("storage engine unreachable")

	// ErrSchemaBootstrap means the engine was reachable but creating the
	// quadruples table or its indexes failed.
	ErrSchemaBootstrap = errors.New("schema bootstrap failed")
)

// Store is the relational backing layer for the quadruple store.
// It owns the quadruples table exclusively; every mutation runs as a
// single transaction against it.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// quadruples table and its seven indexes exist.
//
// The bootstrap runs once per store instance: probe for the table, create
// the schema if it is absent, then the store is ready. Any failure closes
// the handle and returns no store; there is no partially-usable state.
//
// The database is configured with:
//   - WAL mode for concurrent reads during writes
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY on concurrent mutations.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	provisioned, err := tableExists(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	if !provisioned {
		if _, err := db.Exec(schemaSQL); err != nil {
			db.Close()
			return nil, fmt.Errorf("%w: %v", ErrSchemaBootstrap, err)
		}
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// applyPragmas sets required SQLite configuration.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}

// tableExists probes for the quadruples table.
func tableExists(db *sql.DB) (bool, error) {
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM sqlite_master
		WHERE type = 'table' AND name = 'quadruples'
	`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("probe quadruples table: %w", err)
	}
	return count > 0, nil
}

// opContext derives the bounded execution context every statement runs
// under.
func opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

// verifyPragma checks that a pragma is set to the expected value.
// Used for testing.
func (s *Store) verifyPragma(name, expected string) error {
	var value string
	query := fmt.Sprintf("PRAGMA %s", name)
	if err := s.db.QueryRow(query).Scan(&value); err != nil {
		return fmt.Errorf("query %s: %w", name, err)
	}
	if value != expected {
		return fmt.Errorf("%s = %q, expected %q", name, value, expected)
	}
	return nil
}
