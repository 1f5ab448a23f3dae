package booking

import (
	"context"
	"time"

	"ptstudio/internal/credits"
	"ptstudio/internal/slot"
)

type BookResult struct {
	Booking     *Booking
	Slot        *slot.Slot
	Transaction *credits.Transaction
}

type CancelResult struct {
	Booking     *Booking
	Slot        *slot.Slot
	Transaction *credits.Transaction
	Refunded    bool
}

type Repository interface {
	// Book deducts the slot's credit cost, inserts the booking and takes a
	// place on the slot in one transaction.
	Book(ctx context.Context, userID, slotID int, blockBookingID *int, now time.Time) (*BookResult, error)
	// Cancel releases the place and refunds or forfeits the credit depending
	// on refund(start). userID 0 skips the ownership check.
	Cancel(ctx context.Context, bookingID, userID int, refund func(start time.Time) bool) (*CancelResult, error)
	GetByID(ctx context.Context, id int) (*Booking, error)
	ListByUser(ctx context.Context, userID int, upcomingFrom *time.Time) ([]BookingWithDetails, error)
	ListBySlot(ctx context.Context, slotID int) ([]BookingWithDetails, error)
	UpdateStatus(ctx context.Context, id int, status string) (*Booking, error)
	StatsByDay(ctx context.Context, from, to time.Time) ([]DayStat, error)
	GetRecipient(ctx context.Context, userID int) (*Recipient, error)
}
