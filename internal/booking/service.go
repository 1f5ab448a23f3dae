package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ptstudio/internal/credits"
	"ptstudio/internal/errreport"
	"ptstudio/internal/events"
	"ptstudio/internal/logger"
	"ptstudio/internal/metrics"
	"ptstudio/internal/notification"
	"ptstudio/internal/slot"
)

var ErrInvalidStatus = errors.New("status must be completed or no_show")

// Mailer queues booking emails.
type Mailer interface {
	SendBookingConfirmation(ctx context.Context, to, name, session string, when time.Time) error
	SendCancellation(ctx context.Context, to, name, session string, when time.Time, refunded bool) error
}

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, body string) error
}

// WaitlistNotifier is told when a place on a slot frees up.
type WaitlistNotifier interface {
	NotifyFirstWaiting(ctx context.Context, slotID int) error
}

type Service interface {
	BookSlot(ctx context.Context, userID, slotID int) (*BookResponse, error)
	BookForBlock(ctx context.Context, userID, slotID, blockBookingID int) (*BookResponse, error)
	CancelBooking(ctx context.Context, userID, bookingID int) (*CancelResponse, error)
	AdminCancel(ctx context.Context, bookingID int) (*CancelResponse, error)
	ListMine(ctx context.Context, userID int, upcoming bool) ([]BookingWithDetails, error)
	ListBySlot(ctx context.Context, slotID int) ([]BookingWithDetails, error)
	MarkStatus(ctx context.Context, bookingID int, status string) (*Booking, error)
	Stats(ctx context.Context, from, to time.Time) ([]DayStat, error)
}

type service struct {
	repo      Repository
	window    time.Duration
	mailer    Mailer
	notifier  Notifier
	waitlist  WaitlistNotifier
	publisher events.Publisher
	now       func() time.Time
}

func NewService(
	repo Repository,
	window time.Duration,
	mailer Mailer,
	notifier Notifier,
	waitlist WaitlistNotifier,
	publisher events.Publisher,
) Service {
	return &service{
		repo:      repo,
		window:    window,
		mailer:    mailer,
		notifier:  notifier,
		waitlist:  waitlist,
		publisher: publisher,
		now:       time.Now,
	}
}

func bookingOutcome(err error) string {
	switch {
	case err == nil:
		return "booked"
	case errors.Is(err, ErrSlotFull):
		return "full"
	case errors.Is(err, credits.ErrInsufficientCredits):
		return "insufficient_credits"
	case errors.Is(err, ErrAlreadyBooked):
		return "duplicate"
	case errors.Is(err, ErrSlotInPast), errors.Is(err, slot.ErrSlotNotFound):
		return "rejected"
	default:
		return "error"
	}
}

func (s *service) BookSlot(ctx context.Context, userID, slotID int) (*BookResponse, error) {
	return s.book(ctx, userID, slotID, nil)
}

func (s *service) BookForBlock(ctx context.Context, userID, slotID, blockBookingID int) (*BookResponse, error) {
	return s.book(ctx, userID, slotID, &blockBookingID)
}

func (s *service) book(ctx context.Context, userID, slotID int, blockBookingID *int) (*BookResponse, error) {
	res, err := s.repo.Book(ctx, userID, slotID, blockBookingID, s.now())
	metrics.RecordBooking(bookingOutcome(err))
	if err != nil {
		return nil, err
	}

	logger.Info("slot booked", "user_id", userID, "slot_id", slotID, "booking_id", res.Booking.ID, "balance", res.Transaction.BalanceAfter)
	events.Emit(ctx, s.publisher, events.TopicBookings, events.Event{
		Type:     events.BookingCreated,
		UserID:   userID,
		EntityID: res.Booking.ID,
		Amount:   -res.Booking.CreditCost,
	})

	when := res.Slot.StartTime
	s.notify(ctx, userID, notification.KindBookingConfirmed, "Session booked",
		fmt.Sprintf("%s on %s is confirmed.", res.Slot.Title, when.Format("Mon 2 Jan 15:04")))
	if s.mailer != nil {
		if rc, err := s.repo.GetRecipient(ctx, userID); err == nil {
			if err := s.mailer.SendBookingConfirmation(ctx, rc.Email, rc.FullName, res.Slot.Title, when); err != nil {
				logger.Error("failed to queue booking confirmation", "booking_id", res.Booking.ID, "error", err)
				errreport.Capture(err, map[string]interface{}{"booking_id": res.Booking.ID, "email": "confirmation"})
			}
		}
	}

	return &BookResponse{Booking: res.Booking, Balance: res.Transaction.BalanceAfter}, nil
}

func (s *service) CancelBooking(ctx context.Context, userID, bookingID int) (*CancelResponse, error) {
	now := s.now()
	return s.cancel(ctx, bookingID, userID, func(start time.Time) bool {
		return RefundOnCancel(start, now, s.window)
	})
}

// AdminCancel cancels on behalf of a client. The credit is always returned.
func (s *service) AdminCancel(ctx context.Context, bookingID int) (*CancelResponse, error) {
	return s.cancel(ctx, bookingID, 0, func(time.Time) bool { return true })
}

func (s *service) cancel(ctx context.Context, bookingID, userID int, refund func(time.Time) bool) (*CancelResponse, error) {
	res, err := s.repo.Cancel(ctx, bookingID, userID, refund)
	if err != nil {
		return nil, err
	}

	b := res.Booking
	policy, evType, msg := "forfeited", events.BookingLateCancelled, "Booking cancelled inside the cancellation window, the credit was not refunded"
	if res.Refunded {
		policy, evType = "refunded", events.BookingCancelled
		msg = fmt.Sprintf("Booking cancelled, %d credit(s) refunded", b.CreditCost)
	}
	metrics.RecordBookingCancellation(policy)
	if res.Refunded {
		metrics.RecordCreditsIssued(credits.TypeRefund, b.CreditCost)
	}
	logger.Info("booking cancelled", "booking_id", b.ID, "user_id", b.UserID, "policy", policy, "by_admin", userID == 0)

	amount := 0
	if res.Refunded {
		amount = b.CreditCost
	}
	events.Emit(ctx, s.publisher, events.TopicBookings, events.Event{
		Type:     evType,
		UserID:   b.UserID,
		EntityID: b.ID,
		Amount:   amount,
	})

	when := res.Slot.StartTime
	s.notify(ctx, b.UserID, notification.KindBookingCancelled, "Booking cancelled", msg)
	if s.mailer != nil {
		if rc, err := s.repo.GetRecipient(ctx, b.UserID); err == nil {
			if err := s.mailer.SendCancellation(ctx, rc.Email, rc.FullName, res.Slot.Title, when, res.Refunded); err != nil {
				logger.Error("failed to queue cancellation email", "booking_id", b.ID, "error", err)
				errreport.Capture(err, map[string]interface{}{"booking_id": b.ID, "email": "cancellation"})
			}
		}
	}

	if s.waitlist != nil && when.After(s.now()) {
		if err := s.waitlist.NotifyFirstWaiting(ctx, res.Slot.ID); err != nil {
			logger.Error("failed to notify waitlist", "slot_id", res.Slot.ID, "error", err)
			errreport.Capture(err, map[string]interface{}{"slot_id": res.Slot.ID})
		}
	}

	return &CancelResponse{
		Booking:  b,
		Refunded: res.Refunded,
		Balance:  res.Transaction.BalanceAfter,
		Message:  msg,
	}, nil
}

func (s *service) ListMine(ctx context.Context, userID int, upcoming bool) ([]BookingWithDetails, error) {
	if upcoming {
		now := s.now()
		return s.repo.ListByUser(ctx, userID, &now)
	}
	return s.repo.ListByUser(ctx, userID, nil)
}

func (s *service) ListBySlot(ctx context.Context, slotID int) ([]BookingWithDetails, error) {
	return s.repo.ListBySlot(ctx, slotID)
}

func (s *service) MarkStatus(ctx context.Context, bookingID int, status string) (*Booking, error) {
	var evType string
	switch status {
	case StatusCompleted:
		evType = events.BookingCompleted
	case StatusNoShow:
		evType = events.BookingNoShow
	default:
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.UpdateStatus(ctx, bookingID, status)
	if err != nil {
		return nil, err
	}

	events.Emit(ctx, s.publisher, events.TopicBookings, events.Event{
		Type:     evType,
		UserID:   b.UserID,
		EntityID: b.ID,
	})
	return b, nil
}

func (s *service) Stats(ctx context.Context, from, to time.Time) ([]DayStat, error) {
	if to.IsZero() {
		to = s.now()
	}
	if from.IsZero() {
		from = to.AddDate(0, 0, -30)
	}
	return s.repo.StatsByDay(ctx, from, to)
}

func (s *service) notify(ctx context.Context, userID int, kind, title, body string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Notify(ctx, userID, kind, title, body); err != nil {
		logger.Error("failed to store notification", "user_id", userID, "kind", kind, "error", err)
	}
}
