// Package database opens the SQLite keyword database.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/fbkeywords/reservedwords/internal/config"
)

// DriverName is the database/sql driver used for the keyword database.
const DriverName = "sqlite"

// DSN returns the connection string for cfg. Pragmas are applied by the
// driver to every new connection.
func DSN(cfg config.DatabaseConfig) string {
	q := url.Values{}
	q.Add("_pragma", fmt.Sprintf("busy_timeout(%d)", cfg.BusyTimeout.Milliseconds()))
	if cfg.JournalMode != "" {
		q.Add("_pragma", fmt.Sprintf("journal_mode(%s)", cfg.JournalMode))
	}
	return "file:" + cfg.Path + "?" + q.Encode()
}

// Open opens the database described by cfg and verifies that it can be
// reached. The pool holds a single connection; the keyword commands are the
// only writer.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open(DriverName, DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", cfg.Path, err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database %s: %w", cfg.Path, err)
	}
	return db, nil
}
