package storage

// Schema DDL for the SQLite backend. Each collection is one row so that a
// save replaces the whole document in a single statement.
const (
	createCollections = `CREATE TABLE IF NOT EXISTS collections (
    name TEXT PRIMARY KEY,
    document TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	selectDocument = `SELECT document FROM collections WHERE name = ?`

	upsertDocument = `INSERT INTO collections (name, document, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`
)

// sqlitePragmas configure the database on open.
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}
