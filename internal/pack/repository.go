package pack

import (
	"context"
	"database/sql"
	"errors"

	"ptstudio/internal/credits"
	"ptstudio/internal/db"

	"github.com/jmoiron/sqlx"
)

var ErrPackNotFound = errors.New("credit pack not found")

const packColumns = `id, name, credits, bonus_credits, price_cents, currency, active, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, p Pack) (*Pack, error) {
	var out Pack
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO credit_packs (name, credits, bonus_credits, price_cents, currency, active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+packColumns,
		p.Name, p.Credits, p.BonusCredits, p.PriceCents, p.Currency, p.Active)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) Update(ctx context.Context, p Pack) (*Pack, error) {
	var out Pack
	err := r.db.GetContext(ctx, &out, `
		UPDATE credit_packs
		SET name = $1, bonus_credits = $2, price_cents = $3, active = $4
		WHERE id = $5
		RETURNING `+packColumns,
		p.Name, p.BonusCredits, p.PriceCents, p.Active, p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Pack, error) {
	var p Pack
	err := r.db.GetContext(ctx, &p, `SELECT `+packColumns+` FROM credit_packs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPackNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Pack, error) {
	packs := []Pack{}
	err := r.db.SelectContext(ctx, &packs, `
		SELECT `+packColumns+`
		FROM credit_packs
		WHERE active OR NOT $1
		ORDER BY price_cents ASC, id ASC
	`, activeOnly)
	if err != nil {
		return nil, err
	}
	return packs, nil
}

func (r *repository) Purchase(ctx context.Context, userID int, p Pack, reference string) (*Payment, *credits.Transaction, error) {
	var payment Payment
	var creditTx *credits.Transaction

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &payment, `
			INSERT INTO payments (user_id, pack_id, amount_cents, currency, status, provider, reference)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, user_id, pack_id, amount_cents, currency, status, provider, reference, created_at
		`, userID, p.ID, p.PriceCents, p.Currency, PaymentSucceeded, ProviderManual, reference)
		if err != nil {
			return err
		}

		creditTx, err = credits.ApplyTx(ctx, tx, userID, p.TotalCredits(), credits.TypePurchase, reference)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return &payment, creditTx, nil
}

func (r *repository) ListPayments(ctx context.Context, userID int) ([]Payment, error) {
	payments := []Payment{}
	err := r.db.SelectContext(ctx, &payments, `
		SELECT id, user_id, pack_id, amount_cents, currency, status, provider, reference, created_at
		FROM payments
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return payments, nil
}
