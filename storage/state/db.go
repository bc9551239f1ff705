// Package state persists the local client state: the session token, small
// settings such as the active organization, and the credit transaction
// journal. It is a cache and audit trail, never an authority — everything in
// it can be rebuilt from the backend except the journal's local timestamps.
package state

import (
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/trezcool/goose"

	"github.com/feedaq/academy-go/core"
	appfs "github.com/feedaq/academy-go/fs"
)

type DB struct {
	db *sqlx.DB
}

// Open opens (creating if needed) the state database under conf.StateDir and
// runs pending migrations.
func Open(conf *core.Config) (*DB, error) {
	if err := os.MkdirAll(conf.StateDir, 0o700); err != nil {
		return nil, errors.Wrap(err, "creating state dir")
	}
	return open(filepath.Join(conf.StateDir, "state.db"))
}

// OpenInMemory opens a throwaway state database (tests).
func OpenInMemory() (*DB, error) {
	return open(":memory:")
}

func open(dsn string) (*DB, error) {
	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening state database")
	}

	if err = goose.SetDialect("sqlite3"); err != nil {
		return nil, errors.Wrap(err, "setting migration dialect")
	}
	if err = goose.Up(db.DB, appfs.FS, "migrations"); err != nil {
		return nil, errors.Wrap(err, "migrating state database")
	}
	return &DB{db: db}, nil
}

func (s *DB) Close() error {
	return s.db.Close()
}
