package state

import (
	"database/sql"
	"time"

	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core/user"
)

var _ user.SessionStore = (*DB)(nil)

// SaveSession stores the raw token; the session is re-derived from its claims
// on load so a stale copy can never outlive the token's own expiry.
func (s *DB) SaveSession(sess user.Session) error {
	const q = `
		INSERT INTO session (id, token, saved_at) VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET token = excluded.token, saved_at = excluded.saved_at`
	_, err := s.db.Exec(q, sess.Token, time.Now().UTC())
	return errors.Wrap(err, "saving session")
}

// LoadSession returns the persisted session, or a zero Session when none is
// stored. A token that no longer decodes is dropped.
func (s *DB) LoadSession() (user.Session, error) {
	var token string
	err := s.db.Get(&token, `SELECT token FROM session WHERE id = 1`)
	if err == sql.ErrNoRows {
		return user.Session{}, nil
	}
	if err != nil {
		return user.Session{}, errors.Wrap(err, "loading session")
	}

	sess, err := user.NewSession(token)
	if err != nil {
		_ = s.ClearSession()
		return user.Session{}, nil
	}
	return sess, nil
}

func (s *DB) ClearSession() error {
	_, err := s.db.Exec(`DELETE FROM session WHERE id = 1`)
	return errors.Wrap(err, "clearing session")
}
