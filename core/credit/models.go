package credit

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Transaction states. Every balance change starts PENDING and only settles on
// a server acknowledgment; the local balance never moves on its own.
const (
	StatePending   = "PENDING"
	StateConfirmed = "CONFIRMED"
	StateRejected  = "REJECTED"
)

// Transaction kinds
const (
	KindDeduct = "DEDUCT"
	KindTopUp  = "TOP_UP"
)

// Transaction is one journaled balance change.
type Transaction struct {
	ID         string    `json:"txnId" db:"txn_id"` // client-generated uuid
	UserID     int       `json:"userId" db:"user_id"`
	Kind       string    `json:"kind" db:"kind"`
	Amount     int       `json:"amount" db:"amount"`
	Reason     string    `json:"reason" db:"reason"`
	State      string    `json:"state" db:"state"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	ResolvedAt null.Time `json:"resolved_at" db:"resolved_at"`
}

// Balance is the server-reported ledger snapshot.
type Balance struct {
	UserID  int `json:"userId"`
	Credits int `json:"credits"`
}
