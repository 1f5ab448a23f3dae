package credits

import (
	"context"
	"database/sql"
	"errors"

	"ptstudio/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrInsufficientCredits = errors.New("insufficient credits")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetBalance(ctx context.Context, userID int) (*Balance, error) {
	b := &Balance{}
	err := r.db.GetContext(ctx, b, `
		SELECT id, user_id, balance, created_at, updated_at
		FROM credit_balances
		WHERE user_id = $1
	`, userID)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	err = r.db.GetContext(ctx, b, `
		INSERT INTO credit_balances (user_id)
		VALUES ($1)
		ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, user_id, balance, created_at, updated_at
	`, userID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *repository) AddTransaction(ctx context.Context, userID, amount int, txType, reference string) (*Transaction, error) {
	var t *Transaction
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var err error
		t, err = ApplyTx(ctx, tx, userID, amount, txType, reference)
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ApplyTx changes a balance inside the caller's transaction. The balance row
// is locked until the transaction ends, and a result below zero is rejected
// with ErrInsufficientCredits.
func ApplyTx(ctx context.Context, tx *sqlx.Tx, userID, amount int, txType, reference string) (*Transaction, error) {
	var b Balance
	err := tx.GetContext(ctx, &b, `
		SELECT id, user_id, balance, created_at, updated_at
		FROM credit_balances
		WHERE user_id = $1
		FOR UPDATE
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.GetContext(ctx, &b, `
			INSERT INTO credit_balances (user_id)
			VALUES ($1)
			RETURNING id, user_id, balance, created_at, updated_at
		`, userID)
	}
	if err != nil {
		return nil, err
	}

	newBalance := b.Balance + amount
	if newBalance < 0 {
		return nil, ErrInsufficientCredits
	}

	if amount != 0 {
		_, err = tx.ExecContext(ctx, `
			UPDATE credit_balances
			SET balance = $1, updated_at = NOW()
			WHERE id = $2
		`, newBalance, b.ID)
		if err != nil {
			return nil, err
		}
	}

	var t Transaction
	err = tx.GetContext(ctx, &t, `
		INSERT INTO credit_transactions (user_id, amount, type, balance_after, reference)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, amount, type, balance_after, reference, created_at
	`, userID, amount, txType, newBalance, reference)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) GetTransactions(ctx context.Context, userID, limit, offset int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}

	txs := []Transaction{}
	err := r.db.SelectContext(ctx, &txs, `
		SELECT id, user_id, amount, type, balance_after, reference, created_at
		FROM credit_transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	return txs, nil
}
