package waitlist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ptstudio/internal/errreport"
	"ptstudio/internal/logger"
	"ptstudio/internal/metrics"
	"ptstudio/internal/notification"
	"ptstudio/internal/slot"
)

var (
	ErrSlotAvailable = errors.New("slot has free places, book it instead")
	ErrSlotStarted   = errors.New("slot has already started")
)

type SlotGetter interface {
	GetByID(ctx context.Context, id int) (*slot.Slot, error)
}

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, body string) error
}

type Mailer interface {
	SendWaitlistPlace(ctx context.Context, to, name, session string, when time.Time) error
}

type Service interface {
	Join(ctx context.Context, userID, slotID int) (*Entry, error)
	Leave(ctx context.Context, userID, slotID int) error
	ListMine(ctx context.Context, userID int) ([]EntryWithSlot, error)
	NotifyFirstWaiting(ctx context.Context, slotID int) error
}

type service struct {
	repo     Repository
	slots    SlotGetter
	notifier Notifier
	mailer   Mailer
	now      func() time.Time
}

func NewService(repo Repository, slots SlotGetter, notifier Notifier, mailer Mailer) Service {
	return &service{
		repo:     repo,
		slots:    slots,
		notifier: notifier,
		mailer:   mailer,
		now:      time.Now,
	}
}

func (s *service) Join(ctx context.Context, userID, slotID int) (*Entry, error) {
	sl, err := s.slots.GetByID(ctx, slotID)
	if err != nil {
		return nil, err
	}
	if !sl.StartTime.After(s.now()) {
		return nil, ErrSlotStarted
	}
	if sl.IsAvailable() {
		return nil, ErrSlotAvailable
	}

	e, err := s.repo.Create(ctx, userID, slotID)
	if err != nil {
		return nil, err
	}

	metrics.RecordWaitlistJoin()
	logger.Info("joined waitlist", "user_id", userID, "slot_id", slotID)
	return e, nil
}

func (s *service) Leave(ctx context.Context, userID, slotID int) error {
	return s.repo.Leave(ctx, userID, slotID)
}

func (s *service) ListMine(ctx context.Context, userID int) ([]EntryWithSlot, error) {
	return s.repo.ListByUser(ctx, userID)
}

// NotifyFirstWaiting tells the head of the queue that a place opened. The
// place is not held; whoever books first gets it.
func (s *service) NotifyFirstWaiting(ctx context.Context, slotID int) error {
	p, err := s.repo.PromoteFirst(ctx, slotID)
	if errors.Is(err, ErrNoneWaiting) {
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("waitlist place offered", "user_id", p.UserID, "slot_id", slotID)

	if s.notifier != nil {
		body := fmt.Sprintf("A place opened on %s at %s. Book now to take it.", p.SlotTitle, p.SlotStart.Format("Mon 2 Jan 15:04"))
		if err := s.notifier.Notify(ctx, p.UserID, notification.KindWaitlistPlace, "A place is available", body); err != nil {
			logger.Error("failed to store waitlist notification", "user_id", p.UserID, "error", err)
		}
	}
	if s.mailer != nil {
		if err := s.mailer.SendWaitlistPlace(ctx, p.Email, p.FullName, p.SlotTitle, p.SlotStart); err != nil {
			logger.Error("failed to queue waitlist email", "user_id", p.UserID, "error", err)
			errreport.Capture(err, map[string]interface{}{"user_id": p.UserID, "slot_id": slotID, "email": "waitlist_place"})
		}
	}
	return nil
}
