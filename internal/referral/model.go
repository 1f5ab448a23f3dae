package referral

import "time"

const (
	StatusPending  = "pending"
	StatusRewarded = "rewarded"
)

type Referral struct {
	ID         int        `db:"id" json:"id"`
	ReferrerID int        `db:"referrer_id" json:"referrer_id"`
	ReferredID int        `db:"referred_id" json:"referred_id"`
	Code       string     `db:"code" json:"code"`
	Status     string     `db:"status" json:"status"`
	RewardedAt *time.Time `db:"rewarded_at" json:"rewarded_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

type Summary struct {
	Code      string     `json:"code"`
	Referrals []Referral `json:"referrals"`
	Rewarded  int        `json:"rewarded"`
}
