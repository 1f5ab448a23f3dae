package credits

import "time"

const (
	TypePurchase      = "purchase"
	TypeBooking       = "booking"
	TypeRefund        = "refund"
	TypeForfeit       = "forfeit"
	TypeReferralBonus = "referral_bonus"
	TypeAdjustment    = "adjustment"
)

type Balance struct {
	ID        int       `db:"id" json:"-"`
	UserID    int       `db:"user_id" json:"user_id"`
	Balance   int       `db:"balance" json:"balance"`
	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type Transaction struct {
	ID           int       `db:"id" json:"id"`
	UserID       int       `db:"user_id" json:"user_id"`
	Amount       int       `db:"amount" json:"amount"`
	Type         string    `db:"type" json:"type"`
	BalanceAfter int       `db:"balance_after" json:"balance_after"`
	Reference    string    `db:"reference" json:"reference"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type AdjustRequest struct {
	Amount int    `json:"amount" binding:"required"`
	Reason string `json:"reason" binding:"required,max=200"`
}
