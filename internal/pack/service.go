package pack

import (
	"context"
	"errors"
	"strings"

	"ptstudio/internal/events"
	"ptstudio/internal/logger"
	"ptstudio/internal/metrics"

	"github.com/google/uuid"
)

var ErrPackInactive = errors.New("credit pack is not on sale")

// Rewarder pays out a pending referral after a client's first purchase.
type Rewarder interface {
	RewardFirstPurchase(ctx context.Context, referredID int) error
}

type Service interface {
	CreatePack(ctx context.Context, req CreatePackRequest) (*Pack, error)
	UpdatePack(ctx context.Context, id int, req UpdatePackRequest) (*Pack, error)
	ListPacks(ctx context.Context, includeInactive bool) ([]Pack, error)
	Purchase(ctx context.Context, userID, packID int) (*PurchaseResponse, error)
	ListPayments(ctx context.Context, userID int) ([]Payment, error)
}

type service struct {
	repo      Repository
	rewarder  Rewarder
	publisher events.Publisher
}

func NewService(repo Repository, rewarder Rewarder, publisher events.Publisher) Service {
	return &service{
		repo:      repo,
		rewarder:  rewarder,
		publisher: publisher,
	}
}

func (s *service) CreatePack(ctx context.Context, req CreatePackRequest) (*Pack, error) {
	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = "GBP"
	}
	return s.repo.Create(ctx, Pack{
		Name:         req.Name,
		Credits:      req.Credits,
		BonusCredits: req.BonusCredits,
		PriceCents:   req.PriceCents,
		Currency:     currency,
		Active:       true,
	})
}

func (s *service) UpdatePack(ctx context.Context, id int, req UpdatePackRequest) (*Pack, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.BonusCredits != nil {
		p.BonusCredits = *req.BonusCredits
	}
	if req.PriceCents != nil {
		p.PriceCents = *req.PriceCents
	}
	if req.Active != nil {
		p.Active = *req.Active
	}

	return s.repo.Update(ctx, *p)
}

func (s *service) ListPacks(ctx context.Context, includeInactive bool) ([]Pack, error) {
	return s.repo.List(ctx, !includeInactive)
}

func (s *service) Purchase(ctx context.Context, userID, packID int) (*PurchaseResponse, error) {
	p, err := s.repo.GetByID(ctx, packID)
	if err != nil {
		return nil, err
	}
	if !p.Active {
		return nil, ErrPackInactive
	}

	reference := "pay_" + uuid.NewString()
	payment, tx, err := s.repo.Purchase(ctx, userID, *p, reference)
	if err != nil {
		return nil, err
	}

	metrics.RecordCreditPurchase(p.Name, p.TotalCredits())
	events.Emit(ctx, s.publisher, events.TopicCredits, events.Event{
		Type:     events.PackPurchased,
		UserID:   userID,
		EntityID: payment.ID,
		Amount:   p.TotalCredits(),
	})
	logger.Info("credit pack purchased", "user_id", userID, "pack_id", p.ID, "credits", p.TotalCredits(), "reference", reference)

	if s.rewarder != nil {
		if err := s.rewarder.RewardFirstPurchase(ctx, userID); err != nil {
			logger.Error("failed to reward referral", "user_id", userID, "error", err)
		}
	}

	return &PurchaseResponse{
		Payment:     payment,
		Transaction: tx,
		Balance:     tx.BalanceAfter,
	}, nil
}

func (s *service) ListPayments(ctx context.Context, userID int) ([]Payment, error) {
	return s.repo.ListPayments(ctx, userID)
}
