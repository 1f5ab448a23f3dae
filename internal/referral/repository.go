package referral

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"ptstudio/internal/credits"
	"ptstudio/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrInvalidCode       = errors.New("referral code not found")
	ErrNoPendingReferral = errors.New("no pending referral")
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindReferrerByCode(ctx context.Context, code string) (int, error) {
	var id int
	err := r.db.GetContext(ctx, &id, `SELECT id FROM profiles WHERE referral_code = $1`, code)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrInvalidCode
	}
	return id, err
}

func (r *repository) GetCode(ctx context.Context, userID int) (string, error) {
	var code string
	err := r.db.GetContext(ctx, &code, `SELECT referral_code FROM profiles WHERE id = $1`, userID)
	return code, err
}

func (r *repository) Create(ctx context.Context, referrerID, referredID int, code string) (*Referral, error) {
	var ref Referral
	err := r.db.GetContext(ctx, &ref, `
		INSERT INTO referrals (referrer_id, referred_id, code)
		VALUES ($1, $2, $3)
		RETURNING id, referrer_id, referred_id, code, status, rewarded_at, created_at
	`, referrerID, referredID, code)
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (r *repository) ListByReferrer(ctx context.Context, referrerID int) ([]Referral, error) {
	refs := []Referral{}
	err := r.db.SelectContext(ctx, &refs, `
		SELECT id, referrer_id, referred_id, code, status, rewarded_at, created_at
		FROM referrals
		WHERE referrer_id = $1
		ORDER BY created_at DESC
	`, referrerID)
	if err != nil {
		return nil, err
	}
	return refs, nil
}

func (r *repository) Reward(ctx context.Context, referredID, bonus int) (*Referral, error) {
	var ref Referral
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &ref, `
			SELECT id, referrer_id, referred_id, code, status, rewarded_at, created_at
			FROM referrals
			WHERE referred_id = $1 AND status = 'pending'
			FOR UPDATE
		`, referredID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoPendingReferral
		}
		if err != nil {
			return err
		}

		if _, err := credits.ApplyTx(ctx, tx, ref.ReferrerID, bonus, credits.TypeReferralBonus, "referral:"+strconv.Itoa(ref.ID)); err != nil {
			return err
		}

		return tx.GetContext(ctx, &ref, `
			UPDATE referrals SET status = 'rewarded', rewarded_at = NOW()
			WHERE id = $1
			RETURNING id, referrer_id, referred_id, code, status, rewarded_at, created_at
		`, ref.ID)
	})
	if err != nil {
		return nil, err
	}
	return &ref, nil
}
