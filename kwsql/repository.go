package kwsql

import (
	"context"
	"database/sql"
	"fmt"
	"iter"
	"log/slog"

	"github.com/fbkeywords/reservedwords/kwspec"
)

// Option configures a Repository.
type Option func(*repoConfig)

type repoConfig struct {
	logger     *slog.Logger
	mergeQuery string
}

// WithLogger sets the logger of the repository.
func WithLogger(logger *slog.Logger) Option {
	return func(c *repoConfig) {
		c.logger = logger
	}
}

// WithMergeStatement replaces the statement executed for every merged
// keyword. It must take the word, version and reserved flag as parameters,
// declared as CAST(? AS VARCHAR(50)), CAST(? AS <version type>) and
// CAST(? AS BOOLEAN). A statement of a different shape makes Merge fail with
// a *StatementShapeError before anything is executed.
func WithMergeStatement(query string) Option {
	return func(c *repoConfig) {
		c.mergeQuery = query
	}
}

// Repository reads and writes the keywords of one keyword table.
type Repository[V kwspec.Version] struct {
	db         *sql.DB
	table      table
	logger     *slog.Logger
	mergeQuery string
}

// NewSQLKeywords returns a repository for the SQL_KEYWORD table.
func NewSQLKeywords(db *sql.DB, opts ...Option) *Repository[kwspec.SQLVersion] {
	return newRepository[kwspec.SQLVersion](db, sqlKeywordTable, opts)
}

// NewFirebirdKeywords returns a repository for the FB_KEYWORD table.
func NewFirebirdKeywords(db *sql.DB, opts ...Option) *Repository[kwspec.FirebirdVersion] {
	return newRepository[kwspec.FirebirdVersion](db, fbKeywordTable, opts)
}

func newRepository[V kwspec.Version](db *sql.DB, t table, opts []Option) *Repository[V] {
	cfg := &repoConfig{
		logger:     slog.New(slog.DiscardHandler),
		mergeQuery: t.mergeQuery(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Repository[V]{
		db:         db,
		table:      t,
		logger:     cfg.logger.With("table", t.name),
		mergeQuery: cfg.mergeQuery,
	}
}

// Table returns the name of the table.
func (r *Repository[V]) Table() string {
	return r.table.name
}

// MergeResult summarizes a merge.
type MergeResult struct {
	// Read is the number of keywords consumed from the input.
	Read int
	// Changed is the number of rows inserted or updated. Keywords already
	// stored with the same flag are not counted.
	Changed int64
}

// Merge inserts every keyword that is not stored yet and updates the
// reserved flag of stored keywords whose flag differs. All keywords are
// written in one transaction using one prepared statement; if reading the
// input or writing any keyword fails, nothing is written.
//
// The input sequence is consumed to its end unless an error stops the merge.
func (r *Repository[V]) Merge(ctx context.Context, keywords iter.Seq2[kwspec.Keyword[V], error]) (MergeResult, error) {
	if err := r.table.checkMergeShape(r.mergeQuery); err != nil {
		return MergeResult{}, r.fail("merge", err)
	}

	var res MergeResult
	err := r.inTx(ctx, func(stmts *stmtCache) error {
		for kw, err := range keywords {
			if err != nil {
				return err
			}
			if err := kwspec.CheckWord(kw.Word); err != nil {
				return err
			}
			n, err := stmts.exec(ctx, r.mergeQuery, kw.Word, kw.Version, kw.Reserved)
			if err != nil {
				return fmt.Errorf("merging keyword %v: %w", kw, err)
			}
			res.Read++
			res.Changed += n
		}
		return nil
	})
	if err != nil {
		return MergeResult{}, r.fail("merge", err)
	}

	r.logger.Debug("Merged keywords", "read", res.Read, "changed", res.Changed)
	return res, nil
}

// DeleteWords deletes the listed words of version in one transaction and
// returns the number of deleted rows. Words that are not stored are
// ignored.
func (r *Repository[V]) DeleteWords(ctx context.Context, words iter.Seq2[string, error], version V) (int64, error) {
	query := r.table.deleteQuery()

	var deleted int64
	err := r.inTx(ctx, func(stmts *stmtCache) error {
		for word, err := range words {
			if err != nil {
				return err
			}
			n, err := stmts.exec(ctx, query, word, version)
			if err != nil {
				return fmt.Errorf("deleting keyword %s: %w", word, err)
			}
			deleted += n
		}
		return nil
	})
	if err != nil {
		return 0, r.fail("delete", err)
	}

	r.logger.Debug("Deleted keywords", "version", version.String(), "deleted", deleted)
	return deleted, nil
}

// DeleteAll deletes every keyword of version and returns the number of
// deleted rows.
func (r *Repository[V]) DeleteAll(ctx context.Context, version V) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.table.clearQuery(), version)
	if err != nil {
		return 0, r.fail("clear", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, r.fail("clear", err)
	}

	r.logger.Debug("Cleared keywords", "version", version.String(), "deleted", n)
	return n, nil
}

// Keywords returns the keywords of version ordered by word.
func (r *Repository[V]) Keywords(ctx context.Context, version V) ([]kwspec.Keyword[V], error) {
	rows, err := r.db.QueryContext(ctx, r.table.selectQuery(), version)
	if err != nil {
		return nil, r.fail("list", err)
	}
	defer rows.Close()

	var out []kwspec.Keyword[V]
	for rows.Next() {
		var (
			kw       kwspec.Keyword[V]
			reserved sql.NullBool
		)
		if err := rows.Scan(&kw.Word, &kw.Version, &reserved); err != nil {
			return nil, r.fail("list", err)
		}
		kw.Reserved = reserved.Bool
		out = append(out, kw)
	}
	if err := rows.Err(); err != nil {
		return nil, r.fail("list", err)
	}
	return out, nil
}

// inTx runs fn in a transaction with a statement cache. The transaction is
// committed if fn succeeds and rolled back otherwise.
func (r *Repository[V]) inTx(ctx context.Context, fn func(*stmtCache) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	stmts := newStmtCache(tx)

	if err := fn(stmts); err != nil {
		stmts.close()
		rollback(tx, r.logger)
		return err
	}
	stmts.close()

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

func (r *Repository[V]) fail(op string, err error) error {
	return &KeywordProcessingError{Op: op, Table: r.table.name, Err: err}
}
