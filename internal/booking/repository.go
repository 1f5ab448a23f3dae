package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"ptstudio/internal/credits"
	"ptstudio/internal/db"
	"ptstudio/internal/slot"

	"github.com/jmoiron/sqlx"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrSlotInPast      = errors.New("cannot book a slot in the past")
	ErrSlotFull        = errors.New("slot is full, join the waitlist instead")
	ErrAlreadyBooked   = errors.New("you already have a booking for this slot")
	ErrNotOwner        = errors.New("can only cancel own bookings")
	ErrNotActive       = errors.New("booking is no longer active")
)

const bookingColumns = `id, user_id, slot_id, status, credit_cost, block_booking_id, cancelled_at, created_at, updated_at`

const detailsSelect = `
	SELECT b.id, b.user_id, b.slot_id, b.status, b.credit_cost, b.block_booking_id,
	       b.cancelled_at, b.created_at, b.updated_at,
	       s.title AS slot_title, s.start_time AS slot_start, s.end_time AS slot_end,
	       p.full_name AS user_name, p.email AS user_email
	FROM bookings b
	JOIN slots s ON s.id = b.slot_id
	JOIN profiles p ON p.id = b.user_id
`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func lockSlot(ctx context.Context, tx *sqlx.Tx, slotID int) (*slot.Slot, error) {
	var s slot.Slot
	err := tx.GetContext(ctx, &s, `
		SELECT id, title, trainer_id, start_time, end_time, capacity, booked_count, credit_cost, created_at
		FROM slots
		WHERE id = $1
		FOR UPDATE
	`, slotID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, slot.ErrSlotNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *repository) Book(ctx context.Context, userID, slotID int, blockBookingID *int, now time.Time) (*BookResult, error) {
	var res BookResult

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		s, err := lockSlot(ctx, tx, slotID)
		if err != nil {
			return err
		}
		if !s.StartTime.After(now) {
			return ErrSlotInPast
		}

		var booked bool
		err = tx.GetContext(ctx, &booked, `
			SELECT EXISTS(SELECT 1 FROM bookings WHERE user_id = $1 AND slot_id = $2 AND status = 'booked')
		`, userID, slotID)
		if err != nil {
			return err
		}
		if booked {
			return ErrAlreadyBooked
		}

		if !s.IsAvailable() {
			return ErrSlotFull
		}

		t, err := credits.ApplyTx(ctx, tx, userID, -s.CreditCost, credits.TypeBooking, fmt.Sprintf("slot:%d", s.ID))
		if err != nil {
			return err
		}

		var b Booking
		err = tx.GetContext(ctx, &b, `
			INSERT INTO bookings (user_id, slot_id, status, credit_cost, block_booking_id)
			VALUES ($1, $2, 'booked', $3, $4)
			RETURNING `+bookingColumns,
			userID, slotID, s.CreditCost, blockBookingID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE slots SET booked_count = booked_count + 1 WHERE id = $1`, slotID)
		if err != nil {
			return err
		}

		s.BookedCount++
		res = BookResult{Booking: &b, Slot: s, Transaction: t}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *repository) Cancel(ctx context.Context, bookingID, userID int, refund func(start time.Time) bool) (*CancelResult, error) {
	var res CancelResult

	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var b Booking
		err := tx.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, bookingID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrBookingNotFound
		}
		if err != nil {
			return err
		}
		if userID != 0 && b.UserID != userID {
			return ErrNotOwner
		}
		if b.Status != StatusBooked {
			return ErrNotActive
		}

		s, err := lockSlot(ctx, tx, b.SlotID)
		if err != nil {
			return err
		}

		reference := fmt.Sprintf("booking:%d", b.ID)
		refunded := refund(s.StartTime)
		status := StatusLateCancelled
		var t *credits.Transaction
		if refunded {
			status = StatusCancelled
			t, err = credits.ApplyTx(ctx, tx, b.UserID, b.CreditCost, credits.TypeRefund, reference)
		} else {
			t, err = credits.ApplyTx(ctx, tx, b.UserID, 0, credits.TypeForfeit, reference)
		}
		if err != nil {
			return err
		}

		var updated Booking
		err = tx.GetContext(ctx, &updated, `
			UPDATE bookings
			SET status = $1, cancelled_at = NOW(), updated_at = NOW()
			WHERE id = $2
			RETURNING `+bookingColumns,
			status, b.ID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx, `UPDATE slots SET booked_count = booked_count - 1 WHERE id = $1 AND booked_count > 0`, s.ID)
		if err != nil {
			return err
		}

		if s.BookedCount > 0 {
			s.BookedCount--
		}
		res = CancelResult{Booking: &updated, Slot: s, Transaction: t, Refunded: refunded}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListByUser(ctx context.Context, userID int, upcomingFrom *time.Time) ([]BookingWithDetails, error) {
	bookings := []BookingWithDetails{}
	var err error
	if upcomingFrom != nil {
		err = r.db.SelectContext(ctx, &bookings, detailsSelect+`
			WHERE b.user_id = $1 AND b.status = 'booked' AND s.start_time >= $2
			ORDER BY s.start_time ASC
		`, userID, *upcomingFrom)
	} else {
		err = r.db.SelectContext(ctx, &bookings, detailsSelect+`
			WHERE b.user_id = $1
			ORDER BY s.start_time DESC
		`, userID)
	}
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *repository) ListBySlot(ctx context.Context, slotID int) ([]BookingWithDetails, error) {
	bookings := []BookingWithDetails{}
	err := r.db.SelectContext(ctx, &bookings, detailsSelect+`
		WHERE b.slot_id = $1
		ORDER BY b.created_at ASC
	`, slotID)
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus closes an active booking as completed or no_show. The place
// stays taken.
func (r *repository) UpdateStatus(ctx context.Context, id int, status string) (*Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'booked'
		RETURNING `+bookingColumns,
		status, id)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := r.GetByID(ctx, id); getErr != nil {
			return nil, getErr
		}
		return nil, ErrNotActive
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	stats := []DayStat{}
	err := r.db.SelectContext(ctx, &stats, `
		SELECT to_char(date_trunc('day', s.start_time), 'YYYY-MM-DD') AS day,
		       COUNT(*) FILTER (WHERE b.status = 'booked') AS booked,
		       COUNT(*) FILTER (WHERE b.status = 'cancelled') AS cancelled,
		       COUNT(*) FILTER (WHERE b.status = 'late_cancelled') AS late_cancelled,
		       COUNT(*) FILTER (WHERE b.status = 'completed') AS completed,
		       COUNT(*) FILTER (WHERE b.status = 'no_show') AS no_show
		FROM bookings b
		JOIN slots s ON s.id = b.slot_id
		WHERE s.start_time >= $1 AND s.start_time < $2
		GROUP BY 1
		ORDER BY 1
	`, from, to)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *repository) GetRecipient(ctx context.Context, userID int) (*Recipient, error) {
	var rc Recipient
	err := r.db.GetContext(ctx, &rc, `SELECT email, full_name FROM profiles WHERE id = $1`, userID)
	if err != nil {
		return nil, err
	}
	return &rc, nil
}
