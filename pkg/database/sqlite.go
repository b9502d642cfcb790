package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

type Config struct {
	Path string
}

const schema = `
CREATE TABLE IF NOT EXISTS products (
	sku   TEXT PRIMARY KEY,
	name  TEXT NOT NULL,
	price REAL NOT NULL,
	stock INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS bills (
	id    INTEGER PRIMARY KEY AUTOINCREMENT,
	date  TEXT NOT NULL,
	total REAL NOT NULL,
	items TEXT NOT NULL
);
`

func init() {
	// modernc.org/sqlite registers as "sqlite", which sqlx does not know
	// about; named queries need the bind type registered.
	sqlx.BindDriver("sqlite", sqlx.QUESTION)
}

// NewSQLite opens (creating if needed) the store file and ensures the
// schema exists.
func NewSQLite(cfg *Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// The store is single-writer; one connection avoids SQLITE_BUSY
	// between the pool's connections.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return db, nil
}
