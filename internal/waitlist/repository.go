package waitlist

import (
	"context"
	"database/sql"
	"errors"

	"ptstudio/internal/db"

	"github.com/jmoiron/sqlx"
)

var (
	ErrAlreadyWaiting = errors.New("already on the waitlist for this slot")
	ErrNotOnWaitlist  = errors.New("not on the waitlist for this slot")
	ErrNoneWaiting    = errors.New("nobody is waiting for this slot")
)

const entryColumns = `id, user_id, slot_id, status, notified_at, created_at`

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, userID, slotID int) (*Entry, error) {
	exists, err := db.Exists(ctx, r.db, `
		SELECT EXISTS(SELECT 1 FROM waitlist WHERE user_id = $1 AND slot_id = $2 AND status IN ('waiting', 'notified'))
	`, userID, slotID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyWaiting
	}

	var e Entry
	err = r.db.GetContext(ctx, &e, `
		INSERT INTO waitlist (user_id, slot_id)
		VALUES ($1, $2)
		RETURNING `+entryColumns,
		userID, slotID)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) Leave(ctx context.Context, userID, slotID int) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE waitlist SET status = 'left'
		WHERE user_id = $1 AND slot_id = $2 AND status IN ('waiting', 'notified')
	`, userID, slotID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotOnWaitlist
	}
	return nil
}

// ListByUser returns open entries for slots that have not started and that
// the client has not since booked.
func (r *repository) ListByUser(ctx context.Context, userID int) ([]EntryWithSlot, error) {
	entries := []EntryWithSlot{}
	err := r.db.SelectContext(ctx, &entries, `
		SELECT w.id, w.user_id, w.slot_id, w.status, w.notified_at, w.created_at,
		       s.title AS slot_title, s.start_time AS slot_start,
		       CASE WHEN w.status = 'waiting' THEN (
		           SELECT COUNT(*) FROM waitlist q
		           WHERE q.slot_id = w.slot_id AND q.status = 'waiting'
		             AND (q.created_at, q.id) <= (w.created_at, w.id)
		       ) ELSE 0 END AS position
		FROM waitlist w
		JOIN slots s ON s.id = w.slot_id
		WHERE w.user_id = $1 AND w.status IN ('waiting', 'notified')
		  AND s.start_time > NOW()
		  AND NOT EXISTS (
		      SELECT 1 FROM bookings b
		      WHERE b.slot_id = w.slot_id AND b.user_id = w.user_id AND b.status = 'booked'
		  )
		ORDER BY s.start_time ASC
	`, userID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) PromoteFirst(ctx context.Context, slotID int) (*Promoted, error) {
	var p Promoted
	err := db.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var id int
		err := tx.GetContext(ctx, &id, `
			SELECT id FROM waitlist
			WHERE slot_id = $1 AND status = 'waiting'
			ORDER BY created_at ASC, id ASC
			LIMIT 1
			FOR UPDATE SKIP LOCKED
		`, slotID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoneWaiting
		}
		if err != nil {
			return err
		}

		return tx.GetContext(ctx, &p, `
			WITH updated AS (
				UPDATE waitlist SET status = 'notified', notified_at = NOW()
				WHERE id = $1
				RETURNING `+entryColumns+`
			)
			SELECT u.id, u.user_id, u.slot_id, u.status, u.notified_at, u.created_at,
			       p.email, p.full_name, s.title AS slot_title, s.start_time AS slot_start
			FROM updated u
			JOIN profiles p ON p.id = u.user_id
			JOIN slots s ON s.id = u.slot_id
		`, id)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}
