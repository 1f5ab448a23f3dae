package slot

import "time"

const (
	ActionBook     = "book"
	ActionWaitlist = "waitlist"
)

type Slot struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	TrainerID   *int      `db:"trainer_id" json:"trainer_id,omitempty"`
	StartTime   time.Time `db:"start_time" json:"start_time"`
	EndTime     time.Time `db:"end_time" json:"end_time"`
	Capacity    int       `db:"capacity" json:"capacity"`
	BookedCount int       `db:"booked_count" json:"booked_count"`
	CreditCost  int       `db:"credit_cost" json:"credit_cost"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Available is the number of places left.
func (s Slot) Available() int {
	if s.BookedCount >= s.Capacity {
		return 0
	}
	return s.Capacity - s.BookedCount
}

func (s Slot) IsAvailable() bool {
	return s.BookedCount < s.Capacity
}

// Action is what a client can do with the slot: book it, or join its waitlist.
func (s Slot) Action() string {
	if s.IsAvailable() {
		return ActionBook
	}
	return ActionWaitlist
}

type SlotView struct {
	Slot
	Available int    `json:"available"`
	IsFull    bool   `json:"is_full"`
	Action    string `json:"action"`
}

func View(s Slot) SlotView {
	return SlotView{
		Slot:      s,
		Available: s.Available(),
		IsFull:    !s.IsAvailable(),
		Action:    s.Action(),
	}
}

func Views(slots []Slot) []SlotView {
	out := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		out = append(out, View(s))
	}
	return out
}

type CreateSlotRequest struct {
	Title      string `json:"title"`
	TrainerID  *int   `json:"trainer_id"`
	StartTime  string `json:"start_time" binding:"required"`
	EndTime    string `json:"end_time" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,min=1"`
	CreditCost int    `json:"credit_cost" binding:"omitempty,min=1"`
}

type UpdateSlotRequest struct {
	Title    *string `json:"title"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=1"`
}
