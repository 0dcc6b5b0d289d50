// Package robotdb persists navigation goals and detected objects for a
// mobile robot in a single-file SQLite database.
//
// The package favours caller availability over error visibility: every
// public operation logs engine failures and collapses them to a sentinel
// result (nil, an empty slice, or a false boolean) instead of returning an
// error. Callers that need to tell "not found" from "store failure" must
// watch the log.
package robotdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Database is the data access object for one robot database file. It holds
// no open handle: every operation opens its own connection, runs one
// statement, and closes the connection before returning, so a Database value
// is safe to share and costs nothing while idle.
type Database struct {
	path   string
	logger *slog.Logger
}

// New returns a Database bound to the SQLite file at path. The file and its
// parent directory are created on first use. A nil logger falls back to
// slog.Default.
func New(path string, logger *slog.Logger) *Database {
	if logger == nil {
		logger = slog.Default()
	}
	return &Database{path: path, logger: logger}
}

// Path returns the database file path this Database operates on.
func (d *Database) Path() string {
	return d.path
}

// openConn opens a connection to the database file, creating the parent
// directory and the file itself as needed.
func openConn(ctx context.Context, path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create db directory: %v", ErrStorageUnavailable, err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite: %v", ErrStorageUnavailable, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, path, err)
	}

	return db, nil
}

// withConn runs fn against a freshly opened connection and releases the
// connection on every exit path.
func (d *Database) withConn(ctx context.Context, fn func(*sql.DB) error) error {
	db, err := openConn(ctx, d.path)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(db)
}
