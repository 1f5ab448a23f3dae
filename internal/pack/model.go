package pack

import (
	"time"

	"ptstudio/internal/credits"
)

const (
	PaymentSucceeded = "succeeded"
	ProviderManual   = "manual"
)

type Pack struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Credits      int       `db:"credits" json:"credits"`
	BonusCredits int       `db:"bonus_credits" json:"bonus_credits"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	Currency     string    `db:"currency" json:"currency"`
	Active       bool      `db:"active" json:"active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// TotalCredits is what a buyer receives for the pack.
func (p Pack) TotalCredits() int {
	return p.Credits + p.BonusCredits
}

type Payment struct {
	ID          int       `db:"id" json:"id"`
	UserID      int       `db:"user_id" json:"user_id"`
	PackID      int       `db:"pack_id" json:"pack_id"`
	AmountCents int64     `db:"amount_cents" json:"amount_cents"`
	Currency    string    `db:"currency" json:"currency"`
	Status      string    `db:"status" json:"status"`
	Provider    string    `db:"provider" json:"provider"`
	Reference   string    `db:"reference" json:"reference"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type PurchaseResponse struct {
	Payment     *Payment             `json:"payment"`
	Transaction *credits.Transaction `json:"transaction"`
	Balance     int                  `json:"balance"`
}

type CreatePackRequest struct {
	Name         string `json:"name" binding:"required"`
	Credits      int    `json:"credits" binding:"required,min=1"`
	BonusCredits int    `json:"bonus_credits" binding:"min=0"`
	PriceCents   int64  `json:"price_cents" binding:"min=0"`
	Currency     string `json:"currency" binding:"omitempty,len=3"`
}

type UpdatePackRequest struct {
	Name         *string `json:"name"`
	BonusCredits *int    `json:"bonus_credits" binding:"omitempty,min=0"`
	PriceCents   *int64  `json:"price_cents" binding:"omitempty,min=0"`
	Active       *bool   `json:"active"`
}
