package blockbooking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrRuleNotFound = errors.New("block booking not found")

const ruleColumns = `id, user_id, weekday, start_time, duration_minutes, starts_on, weeks, active, created_by, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, rule Rule) (*Rule, error) {
	var out Rule
	err := r.db.GetContext(ctx, &out, `
		INSERT INTO block_bookings (user_id, weekday, start_time, duration_minutes, starts_on, weeks, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+ruleColumns,
		rule.UserID, rule.Weekday, rule.StartTime, rule.DurationMinutes, rule.StartsOn, rule.Weeks, rule.CreatedBy)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Rule, error) {
	var rule Rule
	err := r.db.GetContext(ctx, &rule, `SELECT `+ruleColumns+` FROM block_bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *repository) List(ctx context.Context, activeOnly bool) ([]Rule, error) {
	rules := []Rule{}
	query := `SELECT ` + ruleColumns + ` FROM block_bookings`
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY id ASC`

	if err := r.db.SelectContext(ctx, &rules, query); err != nil {
		return nil, err
	}
	return rules, nil
}

func (r *repository) SetActive(ctx context.Context, id int, active bool) error {
	res, err := r.db.ExecContext(ctx, `UPDATE block_bookings SET active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRuleNotFound
	}
	return nil
}

func (r *repository) OccurrenceStatus(ctx context.Context, ruleID, slotID int) (string, error) {
	var status string
	err := r.db.GetContext(ctx, &status, `
		SELECT status FROM bookings
		WHERE block_booking_id = $1 AND slot_id = $2
		ORDER BY id DESC
		LIMIT 1
	`, ruleID, slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return status, nil
}
