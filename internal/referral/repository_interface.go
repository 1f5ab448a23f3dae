package referral

import "context"

type Repository interface {
	FindReferrerByCode(ctx context.Context, code string) (int, error)
	GetCode(ctx context.Context, userID int) (string, error)
	Create(ctx context.Context, referrerID, referredID int, code string) (*Referral, error)
	ListByReferrer(ctx context.Context, referrerID int) ([]Referral, error)
	// Reward pays the referrer of referredID and marks the referral rewarded.
	// It returns ErrNoPendingReferral when there is nothing to pay.
	Reward(ctx context.Context, referredID, bonus int) (*Referral, error)
}
