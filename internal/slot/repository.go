package slot

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

var (
	ErrSlotNotFound        = errors.New("slot not found")
	ErrSlotHasBookings     = errors.New("slot has bookings")
	ErrCapacityBelowBooked = errors.New("capacity is below the number of bookings")
)

const slotColumns = `id, title, trainer_id, start_time, end_time, capacity, booked_count, credit_cost, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, s Slot) (*Slot, error) {
	query := `
		INSERT INTO slots (title, trainer_id, start_time, end_time, capacity, credit_cost)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + slotColumns

	var out Slot
	err := r.db.GetContext(ctx, &out, query, s.Title, s.TrainerID, s.StartTime, s.EndTime, s.Capacity, s.CreditCost)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Slot, error) {
	var s Slot
	err := r.db.GetContext(ctx, &s, `SELECT `+slotColumns+` FROM slots WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) FindByStart(ctx context.Context, start time.Time) (*Slot, error) {
	var s Slot
	err := r.db.GetContext(ctx, &s, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE start_time = $1
		ORDER BY (capacity - booked_count) DESC, id ASC
		LIMIT 1
	`, start)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) ListBetween(ctx context.Context, from, to time.Time) ([]Slot, error) {
	slots := []Slot{}
	err := r.db.SelectContext(ctx, &slots, `
		SELECT `+slotColumns+`
		FROM slots
		WHERE start_time >= $1 AND start_time < $2
		ORDER BY start_time ASC, id ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *repository) Update(ctx context.Context, id int, title string, capacity int) (*Slot, error) {
	var s Slot
	err := r.db.GetContext(ctx, &s, `
		UPDATE slots SET title = $1, capacity = $2
		WHERE id = $3 AND booked_count <= $2
		RETURNING `+slotColumns,
		title, capacity, id)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrCapacityBelowBooked
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE id = $1 AND booked_count = 0`, id)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrSlotHasBookings
	}
	return nil
}
