package rest

import (
	"context"

	"github.com/feedaq/academy-go/core/credit"
)

type CreditRepository struct {
	client *Client
}

var _ credit.Repository = (*CreditRepository)(nil)

func NewCreditRepository(client *Client) *CreditRepository {
	return &CreditRepository{client: client}
}

func (repo *CreditRepository) GetBalance(ctx context.Context, userID int) (credit.Balance, error) {
	var bal credit.Balance
	body := map[string]int{"userId": userID}
	err := repo.client.post(ctx, "getCreditBalance", "/credits/getBalance", body, &bal)
	return bal, err
}

// Deduct forwards the journaled transaction; the txn id doubles as an
// idempotency key so a retried call cannot debit twice.
func (repo *CreditRepository) Deduct(ctx context.Context, txn credit.Transaction) (credit.Balance, error) {
	var bal credit.Balance
	err := repo.client.post(ctx, "deductCredits", "/credits/deduct", txn, &bal)
	return bal, err
}

func (repo *CreditRepository) TopUp(ctx context.Context, txn credit.Transaction) (credit.Balance, error) {
	var bal credit.Balance
	err := repo.client.post(ctx, "topUpCredits", "/credits/topUp", txn, &bal)
	return bal, err
}
