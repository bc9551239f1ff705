package credit

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/feedaq/academy-go/core"
)

var (
	ErrInsufficientCredits = errors.New("insufficient credits")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrBalanceNotLoaded    = errors.New("balance not loaded, call Refresh first")
)

type (
	Repository interface {
		GetBalance(ctx context.Context, userID int) (Balance, error)
		// Deduct and TopUp return the server's post-transaction balance; a
		// business rejection surfaces as *core.APIError.
		Deduct(ctx context.Context, txn Transaction) (Balance, error)
		TopUp(ctx context.Context, txn Transaction) (Balance, error)
	}

	// Journal persists the transaction trail locally (storage/state).
	Journal interface {
		SaveTransaction(txn Transaction) error
		ResolveTransaction(id, state string, resolvedAt time.Time) error
		QueryTransactions(userID int) ([]Transaction, error)
	}

	// Service is the credit ledger. The server is authoritative: the cached
	// balance only ever holds values the server reported, and a pending
	// deduction that the server rejects leaves the balance untouched.
	Service struct {
		repo    Repository
		journal Journal
		logger  core.Logger

		mu      sync.Mutex
		userID  int
		balance int
		fetched bool
	}
)

func NewService(repo Repository, journal Journal, logger core.Logger) *Service {
	return &Service{repo: repo, journal: journal, logger: logger}
}

// Refresh fetches the server balance and caches it.
func (svc *Service) Refresh(ctx context.Context, userID int) (int, error) {
	bal, err := svc.repo.GetBalance(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "fetching credit balance")
	}
	svc.mu.Lock()
	svc.userID = userID
	svc.balance = bal.Credits
	svc.fetched = true
	svc.mu.Unlock()
	return bal.Credits, nil
}

// Credits returns the last server-reported balance.
func (svc *Service) Credits() int {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	return svc.balance
}

// CheckAndDeduct debits `amount` for `reason`. It pre-checks the cached
// balance and makes no network call when the amount cannot be covered. The
// actual deduction is journaled PENDING, confirmed or rejected on the server's
// answer, and the cached balance always becomes the server's figure.
func (svc *Service) CheckAndDeduct(ctx context.Context, amount int, reason string) (bool, error) {
	if amount <= 0 {
		return false, ErrInvalidAmount
	}

	svc.mu.Lock()
	if !svc.fetched {
		svc.mu.Unlock()
		return false, ErrBalanceNotLoaded
	}
	if amount > svc.balance {
		svc.mu.Unlock()
		return false, ErrInsufficientCredits
	}
	userID := svc.userID
	svc.mu.Unlock()

	txn := Transaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      KindDeduct,
		Amount:    amount,
		Reason:    reason,
		State:     StatePending,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.journal.SaveTransaction(txn); err != nil {
		return false, errors.Wrap(err, "journaling transaction")
	}

	bal, err := svc.repo.Deduct(ctx, txn)
	if err != nil {
		svc.resolve(txn.ID, StateRejected)
		return false, errors.Wrap(err, "deducting credits")
	}

	svc.resolve(txn.ID, StateConfirmed)
	svc.mu.Lock()
	svc.balance = bal.Credits
	svc.mu.Unlock()
	return true, nil
}

// TopUp credits the account through the same journaled protocol.
func (svc *Service) TopUp(ctx context.Context, amount int, reason string) (int, error) {
	if amount <= 0 {
		return svc.Credits(), ErrInvalidAmount
	}

	svc.mu.Lock()
	if !svc.fetched {
		svc.mu.Unlock()
		return 0, ErrBalanceNotLoaded
	}
	userID := svc.userID
	svc.mu.Unlock()

	txn := Transaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Kind:      KindTopUp,
		Amount:    amount,
		Reason:    reason,
		State:     StatePending,
		CreatedAt: time.Now().UTC(),
	}
	if err := svc.journal.SaveTransaction(txn); err != nil {
		return svc.Credits(), errors.Wrap(err, "journaling transaction")
	}

	bal, err := svc.repo.TopUp(ctx, txn)
	if err != nil {
		svc.resolve(txn.ID, StateRejected)
		return svc.Credits(), errors.Wrap(err, "topping up credits")
	}

	svc.resolve(txn.ID, StateConfirmed)
	svc.mu.Lock()
	svc.balance = bal.Credits
	svc.mu.Unlock()
	return bal.Credits, nil
}

// History returns the locally journaled transaction trail.
func (svc *Service) History(userID int) ([]Transaction, error) {
	txns, err := svc.journal.QueryTransactions(userID)
	return txns, errors.Wrap(err, "querying transaction journal")
}

func (svc *Service) resolve(id, state string) {
	if err := svc.journal.ResolveTransaction(id, state, time.Now().UTC()); err != nil {
		svc.logger.Warn("failed to resolve journaled transaction", err)
	}
}
