package kwsql

import (
	"context"
	"database/sql"
)

// stmtCache wraps a *sql.Tx and caches prepared statements so that a batch
// of keyword statements is parsed once per transaction.
type stmtCache struct {
	tx    *sql.Tx
	cache map[string]*sql.Stmt
}

func newStmtCache(tx *sql.Tx) *stmtCache {
	return &stmtCache{tx: tx, cache: make(map[string]*sql.Stmt)}
}

func (c *stmtCache) stmt(ctx context.Context, query string) (*sql.Stmt, error) {
	if s, ok := c.cache[query]; ok {
		return s, nil
	}
	s, err := c.tx.PrepareContext(ctx, query)
	if err != nil {
		return nil, err
	}
	c.cache[query] = s
	return s, nil
}

// exec runs query with args and returns the number of affected rows.
func (c *stmtCache) exec(ctx context.Context, query string, args ...any) (int64, error) {
	s, err := c.stmt(ctx, query)
	if err != nil {
		return 0, err
	}
	res, err := s.ExecContext(ctx, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (c *stmtCache) close() {
	for _, s := range c.cache {
		s.Close()
	}
}
