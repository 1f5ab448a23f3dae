package notification

import "time"

const (
	KindBookingConfirmed = "booking_confirmed"
	KindBookingCancelled = "booking_cancelled"
	KindWaitlistPlace    = "waitlist_place"
	KindMessage          = "message"
	KindReferralReward   = "referral_reward"
	KindCreditsAdjusted  = "credits_adjusted"
	KindProgramme        = "programme_assigned"
)

type Notification struct {
	ID        int        `db:"id" json:"id"`
	UserID    int        `db:"user_id" json:"user_id"`
	Kind      string     `db:"kind" json:"kind"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	ReadAt    *time.Time `db:"read_at" json:"read_at,omitempty"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
}

type ListResponse struct {
	Items  []Notification `json:"items"`
	Unread int            `json:"unread"`
}
