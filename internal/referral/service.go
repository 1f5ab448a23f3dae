package referral

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ptstudio/internal/credits"
	"ptstudio/internal/events"
	"ptstudio/internal/logger"
	"ptstudio/internal/metrics"
	"ptstudio/internal/notification"
)

var ErrSelfReferral = errors.New("cannot use your own referral code")

type Notifier interface {
	Notify(ctx context.Context, userID int, kind, title, body string) error
}

type Service interface {
	RecordSignup(ctx context.Context, referredID int, code string) error
	RewardFirstPurchase(ctx context.Context, referredID int) error
	Summary(ctx context.Context, userID int) (*Summary, error)
}

type service struct {
	repo      Repository
	bonus     int
	publisher events.Publisher
	notifier  Notifier
}

func NewService(repo Repository, bonus int, publisher events.Publisher, notifier Notifier) Service {
	return &service{
		repo:      repo,
		bonus:     bonus,
		publisher: publisher,
		notifier:  notifier,
	}
}

func (s *service) RecordSignup(ctx context.Context, referredID int, code string) error {
	code = strings.TrimSpace(strings.ToUpper(code))
	if code == "" {
		return nil
	}

	referrerID, err := s.repo.FindReferrerByCode(ctx, code)
	if err != nil {
		return err
	}
	if referrerID == referredID {
		return ErrSelfReferral
	}

	ref, err := s.repo.Create(ctx, referrerID, referredID, code)
	if err != nil {
		return err
	}
	logger.Info("referral recorded", "referral_id", ref.ID, "referrer_id", referrerID, "referred_id", referredID)
	return nil
}

// RewardFirstPurchase pays the referrer once, on the referred client's first
// purchase. Later purchases find no pending referral and do nothing.
func (s *service) RewardFirstPurchase(ctx context.Context, referredID int) error {
	if s.bonus <= 0 {
		return nil
	}

	ref, err := s.repo.Reward(ctx, referredID, s.bonus)
	if errors.Is(err, ErrNoPendingReferral) {
		return nil
	}
	if err != nil {
		return err
	}

	metrics.RecordCreditsIssued(credits.TypeReferralBonus, s.bonus)
	events.Emit(ctx, s.publisher, events.TopicCredits, events.Event{
		Type:     events.CreditsChanged,
		UserID:   ref.ReferrerID,
		EntityID: ref.ID,
		Amount:   s.bonus,
	})
	if s.notifier != nil {
		_ = s.notifier.Notify(ctx, ref.ReferrerID, notification.KindReferralReward, "Referral reward",
			fmt.Sprintf("A friend you referred made their first purchase. %d free credit(s) added.", s.bonus))
	}
	return nil
}

func (s *service) Summary(ctx context.Context, userID int) (*Summary, error) {
	code, err := s.repo.GetCode(ctx, userID)
	if err != nil {
		return nil, err
	}
	refs, err := s.repo.ListByReferrer(ctx, userID)
	if err != nil {
		return nil, err
	}

	sum := &Summary{Code: code, Referrals: refs}
	for _, r := range refs {
		if r.Status == StatusRewarded {
			sum.Rewarded++
		}
	}
	return sum, nil
}
