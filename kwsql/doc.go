// Package kwsql stores keywords in a SQL database. It owns the schema of the
// SQL_KEYWORD, FB_KEYWORD and DBVERSION tables, brings a database up to the
// latest schema version with [Migrator], and merges or deletes keywords
// through a [Repository] bound to one of the keyword tables.
//
// Every repository operation runs in its own transaction: a merge or delete
// either applies every element of its input sequence or none of them.
//
// The schema is written for SQLite. Column descriptions are placed inside
// the CREATE TABLE bodies, so they are kept in sqlite_master.
//
// This package imports only [database/sql] and does not depend on any
// SQLite driver. The consumer must import a driver (e.g. modernc.org/sqlite)
// and pass a *sql.DB.
package kwsql
