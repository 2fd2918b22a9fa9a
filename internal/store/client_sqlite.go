package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteBusyTimeoutMs = 5000

// SQLite decodes %HH escapes in URI filenames, so '%' must be escaped along with the delimiters.
var sqlitePathEscaper = strings.NewReplacer("%", "%25", "?", "%3f", "#", "%23")

//go:generate options-gen -out-filename=client_sqlite_options.gen.go -from-struct=SQLiteOptions
type SQLiteOptions struct {
	path    string `option:"mandatory" validate:"required"`
	verbose bool
}

func NewSQLiteDatabase(opts SQLiteOptions) (*Database, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %v", err)
	}

	q := url.Values{}
	q.Set("_busy_timeout", fmt.Sprint(sqliteBusyTimeoutMs))
	q.Set("_journal_mode", "WAL")

	db, err := sql.Open("sqlite3", "file:"+sqlitePathEscaper.Replace(opts.path)+"?"+q.Encode())
	if err != nil {
		return nil, fmt.Errorf("init db driver: %v", err)
	}
	// SQLite serializes writers anyway.
	db.SetMaxOpenConns(1)

	return newDatabase(db, DialectSQLite, opts.verbose), nil
}
