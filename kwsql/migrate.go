package kwsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

const insertVersionQuery = "INSERT INTO DBVERSION (VERSION, MIGRATION_DATE) VALUES (?, CURRENT_TIMESTAMP)"

// Migrator brings a database to the latest schema version.
type Migrator struct {
	steps  []Step
	logger *slog.Logger
}

// MigratorOption configures a Migrator.
type MigratorOption func(*Migrator)

// WithMigratorLogger sets the logger that receives migration progress.
func WithMigratorLogger(logger *slog.Logger) MigratorOption {
	return func(m *Migrator) {
		m.logger = logger
	}
}

// WithSteps replaces the migration steps. Versions must start at 1 and
// increase by one.
func WithSteps(steps []Step) MigratorOption {
	return func(m *Migrator) {
		m.steps = steps
	}
}

// NewMigrator returns a Migrator for the keyword schema.
func NewMigrator(opts ...MigratorOption) *Migrator {
	m := &Migrator{
		steps:  Steps,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Latest returns the version reached after all steps are applied.
func (m *Migrator) Latest() int {
	if len(m.steps) == 0 {
		return 0
	}
	return m.steps[len(m.steps)-1].Version
}

// EnsureLatest applies, in order, every step whose version is greater than
// the current schema version of db. A database without a DBVERSION table is
// at version 0.
//
// Each step is recorded in DBVERSION in the transaction that completes it,
// so a failed step leaves the database at the previous version. A database
// whose version is newer than any known step is left untouched; this is
// logged as a warning and is not an error.
//
// All failures are returned as *MigrationError.
func (m *Migrator) EnsureLatest(ctx context.Context, db *sql.DB) error {
	if err := validateSteps(m.steps); err != nil {
		return &MigrationError{Err: err}
	}

	// Intermediate commits must stay on the same connection.
	conn, err := db.Conn(ctx)
	if err != nil {
		return &MigrationError{Err: fmt.Errorf("connecting: %w", err)}
	}
	defer conn.Close()

	current, err := currentVersion(ctx, conn)
	if err != nil {
		return &MigrationError{Err: err}
	}
	m.logger.Info("Found database version", "version", current)

	latest := m.Latest()
	switch {
	case current == latest:
		return nil
	case current > latest:
		m.logger.Warn("Unknown or unexpected database version", "version", current, "latest", latest)
		return nil
	}

	for _, step := range m.steps {
		if step.Version <= current {
			continue
		}
		if err := m.apply(ctx, conn, step); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) apply(ctx context.Context, conn *sql.Conn, step Step) error {
	m.logger.Info("Migrating to version", "version", step.Version)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return &MigrationError{Step: step.Version, Err: fmt.Errorf("beginning transaction: %w", err)}
	}
	fail := func(err error) error {
		rollback(tx, m.logger, "step", step.Version)
		return &MigrationError{Step: step.Version, Err: err}
	}

	for _, stmt := range step.Statements {
		if isCommit(stmt) {
			if err := tx.Commit(); err != nil {
				return fail(fmt.Errorf("committing: %w", err))
			}
			next, err := conn.BeginTx(ctx, nil)
			if err != nil {
				return &MigrationError{Step: step.Version, Err: fmt.Errorf("beginning transaction: %w", err)}
			}
			tx = next
			continue
		}
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fail(fmt.Errorf("executing %q: %w", summarize(stmt), err))
		}
	}

	if _, err := tx.ExecContext(ctx, insertVersionQuery, step.Version); err != nil {
		return fail(fmt.Errorf("recording version: %w", err))
	}
	if err := tx.Commit(); err != nil {
		return fail(fmt.Errorf("committing: %w", err))
	}

	m.logger.Info("Migration to version completed", "version", step.Version)
	return nil
}

// CurrentVersion returns the schema version recorded in db, or 0 when db has
// no DBVERSION table.
func CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	return currentVersion(ctx, db)
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func currentVersion(ctx context.Context, q queryRower) (int, error) {
	var tables int
	err := q.QueryRowContext(ctx,
		"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND upper(name) = 'DBVERSION'").Scan(&tables)
	if err != nil {
		return 0, fmt.Errorf("looking up DBVERSION: %w", err)
	}
	if tables == 0 {
		return 0, nil
	}

	var version sql.NullInt64
	if err := q.QueryRowContext(ctx, "SELECT max(VERSION) FROM DBVERSION").Scan(&version); err != nil {
		return 0, fmt.Errorf("reading database version: %w", err)
	}
	if !version.Valid {
		return 0, errors.New("no versions in DBVERSION")
	}
	return int(version.Int64), nil
}

func validateSteps(steps []Step) error {
	for i, s := range steps {
		if s.Version != i+1 {
			return fmt.Errorf("migration step %d has version %d, want %d", i, s.Version, i+1)
		}
	}
	return nil
}

func isCommit(stmt string) bool {
	return strings.EqualFold(strings.TrimSpace(stmt), "commit")
}

// summarize returns the first line of a statement for error messages.
func summarize(stmt string) string {
	first, _, more := strings.Cut(strings.TrimSpace(stmt), "\n")
	if more {
		return first + " ..."
	}
	return first
}

// rollback rolls tx back. A failed rollback is logged and otherwise ignored
// so that the error that caused it is the one reported.
func rollback(tx *sql.Tx, logger *slog.Logger, attrs ...any) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.Error("Rollback failed", append(attrs, "error", err)...)
	}
}
