package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"ptstudio/internal/api"
	"ptstudio/internal/db"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailExists  = errors.New("email already exists")
)

const profileColumns = `id, email, password_hash, full_name, phone, role, avatar_url, referral_code, created_at, updated_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Create inserts the profile together with its empty credit balance.
func (r *repository) Create(ctx context.Context, p Profile) (*Profile, error) {
	var out Profile
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &out, `
			INSERT INTO profiles (email, password_hash, full_name, phone, role, referral_code)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING `+profileColumns,
			p.Email, p.PasswordHash, p.FullName, p.Phone, p.Role, p.ReferralCode)
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && strings.Contains(pqErr.Constraint, "email") {
			return ErrEmailExists
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO credit_balances (user_id, balance) VALUES ($1, 0)
			ON CONFLICT (user_id) DO NOTHING
		`, out.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) findOne(ctx context.Context, where string, arg interface{}) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `SELECT `+profileColumns+` FROM profiles WHERE `+where, arg)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	return r.findOne(ctx, `lower(email) = lower($1)`, email)
}

func (r *repository) FindByID(ctx context.Context, id int) (*Profile, error) {
	return r.findOne(ctx, `id = $1`, id)
}

func (r *repository) UpdateProfile(ctx context.Context, id int, fullName, phone *string) (*Profile, error) {
	var p Profile
	err := r.db.GetContext(ctx, &p, `
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
		    phone = COALESCE($3, phone),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING `+profileColumns,
		id, fullName, phone)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) SetAvatar(ctx context.Context, id int, url string) (string, error) {
	var previous sql.NullString
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &previous, `SELECT avatar_url FROM profiles WHERE id = $1 FOR UPDATE`, id)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		if err != nil {
			return err
		}
		_, err = tx.ExecContext(ctx, `UPDATE profiles SET avatar_url = $2, updated_at = NOW() WHERE id = $1`, id, url)
		return err
	})
	if err != nil {
		return "", err
	}
	return previous.String, nil
}

// GetClientProfile returns an empty profile when the client has not filled
// one in yet.
func (r *repository) GetClientProfile(ctx context.Context, userID int) (*ClientProfile, error) {
	var cp ClientProfile
	err := r.db.GetContext(ctx, &cp, `
		SELECT user_id, date_of_birth, goals, injuries, emergency_contact, updated_at
		FROM client_profiles WHERE user_id = $1
	`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &ClientProfile{UserID: userID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &cp, nil
}

func (r *repository) UpsertClientProfile(ctx context.Context, cp ClientProfile) (*ClientProfile, error) {
	var out ClientProfile
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO client_profiles (user_id, date_of_birth, goals, injuries, emergency_contact)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			date_of_birth = EXCLUDED.date_of_birth,
			goals = EXCLUDED.goals,
			injuries = EXCLUDED.injuries,
			emergency_contact = EXCLUDED.emergency_contact,
			updated_at = NOW()
		RETURNING user_id, date_of_birth, goals, injuries, emergency_contact, updated_at
	`, cp.UserID, cp.DateOfBirth, cp.Goals, cp.Injuries, cp.EmergencyContact)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) ListClients(ctx context.Context, query string, page api.Page) ([]ClientSummary, error) {
	page = page.Normalize()
	clients := []ClientSummary{}
	err := r.db.SelectContext(ctx, &clients, `
		SELECT p.id, p.email, p.full_name, p.phone, COALESCE(b.balance, 0) AS balance, p.created_at
		FROM profiles p
		LEFT JOIN credit_balances b ON b.user_id = p.id
		WHERE p.role = 'client'
		  AND ($1 = '' OR p.full_name ILIKE '%' || $1 || '%' OR p.email ILIKE '%' || $1 || '%')
		ORDER BY p.full_name ASC, p.id ASC
		LIMIT $2 OFFSET $3
	`, query, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *repository) GetBalance(ctx context.Context, userID int) (int, error) {
	var balance int
	err := r.db.GetContext(ctx, &balance, `SELECT COALESCE((SELECT balance FROM credit_balances WHERE user_id = $1), 0)`, userID)
	return balance, err
}
