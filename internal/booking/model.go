package booking

import "time"

const (
	StatusBooked        = "booked"
	StatusCancelled     = "cancelled"
	StatusLateCancelled = "late_cancelled"
	StatusCompleted     = "completed"
	StatusNoShow        = "no_show"
)

type Booking struct {
	ID             int        `db:"id" json:"id"`
	UserID         int        `db:"user_id" json:"user_id"`
	SlotID         int        `db:"slot_id" json:"slot_id"`
	Status         string     `db:"status" json:"status"`
	CreditCost     int        `db:"credit_cost" json:"credit_cost"`
	BlockBookingID *int       `db:"block_booking_id" json:"block_booking_id,omitempty"`
	CancelledAt    *time.Time `db:"cancelled_at" json:"cancelled_at,omitempty"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updated_at"`
}

type BookingWithDetails struct {
	Booking
	SlotTitle string    `db:"slot_title" json:"slot_title"`
	SlotStart time.Time `db:"slot_start" json:"slot_start"`
	SlotEnd   time.Time `db:"slot_end" json:"slot_end"`
	UserName  string    `db:"user_name" json:"user_name"`
	UserEmail string    `db:"user_email" json:"user_email"`
}

type BookResponse struct {
	Booking *Booking `json:"booking"`
	Balance int      `json:"balance" example:"4"`
}

type CancelResponse struct {
	Booking  *Booking `json:"booking"`
	Refunded bool     `json:"refunded"`
	Balance  int      `json:"balance" example:"5"`
	Message  string   `json:"message" example:"Booking cancelled, 1 credit refunded"`
}

type DayStat struct {
	Day           string `db:"day" json:"day" example:"2025-03-03"`
	Booked        int    `db:"booked" json:"booked"`
	Cancelled     int    `db:"cancelled" json:"cancelled"`
	LateCancelled int    `db:"late_cancelled" json:"late_cancelled"`
	Completed     int    `db:"completed" json:"completed"`
	NoShow        int    `db:"no_show" json:"no_show"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=completed no_show" example:"completed"`
}

type Recipient struct {
	Email    string `db:"email"`
	FullName string `db:"full_name"`
}

// RefundOnCancel reports whether cancelling a session that starts at start is
// still inside the free cancellation window at now.
func RefundOnCancel(start, now time.Time, window time.Duration) bool {
	return start.Sub(now) >= window
}
