package store

var schema = map[Dialect][]string{
	DialectPostgres: {
		`CREATE TABLE IF NOT EXISTS messages (
			id           TEXT PRIMARY KEY,
			text         TEXT NOT NULL,
			author       TEXT NOT NULL,
			published_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS messages_author_published_at_idx ON messages (author, published_at)`,
	},
	DialectSQLite: {
		`CREATE TABLE IF NOT EXISTS messages (
			id           TEXT PRIMARY KEY,
			text         TEXT NOT NULL,
			author       TEXT NOT NULL,
			published_at TIMESTAMP NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS messages_author_published_at_idx ON messages (author, published_at)`,
	},
}
