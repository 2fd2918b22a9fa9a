package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const pgUniqueViolationCode = "23505"

// Database is a thin dialect-aware wrapper over *sql.DB.
type Database struct {
	db      *sql.DB
	dialect Dialect
	debug   bool
	lg      *zap.Logger
}

func newDatabase(db *sql.DB, dialect Dialect, debug bool) *Database {
	return &Database{
		db:      db,
		dialect: dialect,
		debug:   debug,
		lg:      zap.L().Named("store"),
	}
}

func (d *Database) Dialect() Dialect {
	return d.dialect
}

func (d *Database) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	d.logQuery(query, args)
	return d.db.ExecContext(ctx, query, args...)
}

func (d *Database) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	d.logQuery(query, args)
	return d.db.QueryRowContext(ctx, query, args...)
}

func (d *Database) PingContext(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *Database) Close() error {
	return d.db.Close()
}

// Migrate creates the schema if it does not exist yet.
func (d *Database) Migrate(ctx context.Context) error {
	stmts, ok := schema[d.dialect]
	if !ok {
		return fmt.Errorf("no schema for dialect %q", d.dialect)
	}

	for _, stmt := range stmts {
		if _, err := d.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("exec migration: %v", err)
		}
	}
	return nil
}

// IsUniqueViolation reports whether err is a primary key or unique constraint violation.
func (d *Database) IsUniqueViolation(err error) bool {
	switch d.dialect {
	case DialectPostgres:
		var pgErr *pgconn.PgError
		return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode

	case DialectSQLite:
		var sqliteErr sqlite3.Error
		return errors.As(err, &sqliteErr) &&
			(sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
				sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique)
	}
	return false
}

func (d *Database) logQuery(query string, args []any) {
	if d.debug {
		d.lg.Debug("query", zap.String("sql", query), zap.Any("args", args))
	}
}
