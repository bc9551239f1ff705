package state

import (
	"database/sql"

	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core/workspace"
)

const currentOrgKey = "current_org"

var _ workspace.OrgStore = (*DB)(nil)

// CurrentOrg returns the persisted active organization id, "" when unset.
func (s *DB) CurrentOrg() (string, error) {
	return s.getSetting(currentOrgKey)
}

func (s *DB) SetCurrentOrg(orgID string) error {
	return s.setSetting(currentOrgKey, orgID)
}

func (s *DB) getSetting(key string) (string, error) {
	var value string
	err := s.db.Get(&value, `SELECT value FROM settings WHERE key = ?`, key)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, errors.Wrapf(err, "getting setting %q", key)
}

func (s *DB) setSetting(key, value string) error {
	const q = `
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	_, err := s.db.Exec(q, key, value)
	return errors.Wrapf(err, "setting %q", key)
}
