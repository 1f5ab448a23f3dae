package blockbooking

import "time"

const (
	OutcomeBooked        = "booked"
	OutcomeAlreadyBooked = "already_booked"
	OutcomeCancelled     = "skipped:cancelled"
)

// Rule books the same weekly session for a client for a number of weeks.
type Rule struct {
	ID              int       `db:"id" json:"id"`
	UserID          int       `db:"user_id" json:"user_id"`
	Weekday         int       `db:"weekday" json:"weekday" example:"1"`
	StartTime       string    `db:"start_time" json:"start_time" example:"07:30"`
	DurationMinutes int       `db:"duration_minutes" json:"duration_minutes" example:"60"`
	StartsOn        time.Time `db:"starts_on" json:"starts_on"`
	Weeks           int       `db:"weeks" json:"weeks" example:"8"`
	Active          bool      `db:"active" json:"active"`
	CreatedBy       *int      `db:"created_by" json:"created_by,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

type CreateRuleRequest struct {
	UserID          int    `json:"user_id" binding:"required"`
	Weekday         *int   `json:"weekday" binding:"required,min=0,max=6"`
	StartTime       string `json:"start_time" binding:"required" example:"07:30"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=15,max=240"`
	StartsOn        string `json:"starts_on" binding:"required" example:"2025-03-03"`
	Weeks           int    `json:"weeks" binding:"required,min=1,max=52"`
}

// Outcome is what happened to one occurrence of a rule.
type Outcome struct {
	Start     time.Time `json:"start"`
	SlotID    int       `json:"slot_id,omitempty"`
	BookingID int       `json:"booking_id,omitempty"`
	Status    string    `json:"status" example:"booked"`
}

type GenerateResponse struct {
	RuleID   int       `json:"rule_id"`
	Outcomes []Outcome `json:"outcomes"`
}
