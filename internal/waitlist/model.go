package waitlist

import "time"

const (
	StatusWaiting  = "waiting"
	StatusNotified = "notified"
	StatusLeft     = "left"
)

type Entry struct {
	ID         int        `db:"id" json:"id"`
	UserID     int        `db:"user_id" json:"user_id"`
	SlotID     int        `db:"slot_id" json:"slot_id"`
	Status     string     `db:"status" json:"status"`
	NotifiedAt *time.Time `db:"notified_at" json:"notified_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// EntryWithSlot is an open entry with its place in the queue. Position is 0
// once the client has been notified.
type EntryWithSlot struct {
	Entry
	SlotTitle string    `db:"slot_title" json:"slot_title"`
	SlotStart time.Time `db:"slot_start" json:"slot_start"`
	Position  int       `db:"position" json:"position"`
}

// Promoted is the entry that was just told about a free place.
type Promoted struct {
	Entry
	Email     string    `db:"email"`
	FullName  string    `db:"full_name"`
	SlotTitle string    `db:"slot_title"`
	SlotStart time.Time `db:"slot_start"`
}
