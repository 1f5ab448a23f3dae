package credits

import "context"

type Repository interface {
	GetBalance(ctx context.Context, userID int) (*Balance, error)
	AddTransaction(ctx context.Context, userID, amount int, txType, reference string) (*Transaction, error)
	GetTransactions(ctx context.Context, userID, limit, offset int) ([]Transaction, error)
}
