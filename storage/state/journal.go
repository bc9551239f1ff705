package state

import (
	"time"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/feedaq/academy-go/core/credit"
)

var _ credit.Journal = (*DB)(nil)

func (s *DB) SaveTransaction(txn credit.Transaction) error {
	const q = `
		INSERT INTO credit_txns (txn_id, user_id, kind, amount, reason, state, created_at, resolved_at)
		VALUES (:txn_id, :user_id, :kind, :amount, :reason, :state, :created_at, :resolved_at)`
	_, err := s.db.NamedExec(q, txn)
	return errors.Wrap(err, "saving transaction")
}

func (s *DB) ResolveTransaction(id, state string, resolvedAt time.Time) error {
	res, err := s.db.Exec(
		`UPDATE credit_txns SET state = ?, resolved_at = ? WHERE txn_id = ?`,
		state, null.TimeFrom(resolvedAt), id,
	)
	if err != nil {
		return errors.Wrap(err, "resolving transaction")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.Errorf("transaction %s not found", id)
	}
	return nil
}

func (s *DB) QueryTransactions(userID int) ([]credit.Transaction, error) {
	var txns []credit.Transaction
	err := s.db.Select(&txns,
		`SELECT * FROM credit_txns WHERE user_id = ? ORDER BY created_at DESC`, userID)
	return txns, errors.Wrap(err, "querying transactions")
}
