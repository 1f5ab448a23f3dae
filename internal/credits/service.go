package credits

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"ptstudio/internal/api"
	"ptstudio/internal/events"
	"ptstudio/internal/metrics"
	"ptstudio/internal/notification"
)

var ErrZeroAdjustment = errors.New("adjustment amount must not be zero")

// Notifier records an in-app notification for a user.
type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, body string) error
}

type Service interface {
	GetBalance(ctx context.Context, userID int) (*Balance, error)
	ListTransactions(ctx context.Context, userID int, page api.Page) ([]Transaction, error)
	Adjust(ctx context.Context, adminID, userID int, req AdjustRequest) (*Transaction, error)
}

type service struct {
	repo      Repository
	publisher events.Publisher
	notifier  Notifier
}

func NewService(repo Repository, publisher events.Publisher, notifier Notifier) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (s *service) GetBalance(ctx context.Context, userID int) (*Balance, error) {
	return s.repo.GetBalance(ctx, userID)
}

func (s *service) ListTransactions(ctx context.Context, userID int, page api.Page) ([]Transaction, error) {
	page = page.Normalize()
	return s.repo.GetTransactions(ctx, userID, page.Limit, page.Offset)
}

func (s *service) Adjust(ctx context.Context, adminID, userID int, req AdjustRequest) (*Transaction, error) {
	if req.Amount == 0 {
		return nil, ErrZeroAdjustment
	}

	reference := "admin:" + strconv.Itoa(adminID) + ":" + req.Reason
	t, err := s.repo.AddTransaction(ctx, userID, req.Amount, TypeAdjustment, reference)
	if err != nil {
		return nil, err
	}

	metrics.RecordCreditsIssued(TypeAdjustment, req.Amount)
	events.Emit(ctx, s.publisher, events.TopicCredits, events.Event{
		Type:     events.CreditsChanged,
		UserID:   userID,
		EntityID: t.ID,
		Amount:   req.Amount,
	})
	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, userID, notification.KindCreditsAdjusted, "Credit balance updated",
			fmt.Sprintf("Your balance changed by %+d and is now %d.", req.Amount, t.BalanceAfter))
	}

	return t, nil
}
