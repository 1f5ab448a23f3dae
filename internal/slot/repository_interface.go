package slot

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, s Slot) (*Slot, error)
	GetByID(ctx context.Context, id int) (*Slot, error)
	FindByStart(ctx context.Context, start time.Time) (*Slot, error)
	ListBetween(ctx context.Context, from, to time.Time) ([]Slot, error)
	Update(ctx context.Context, id int, title string, capacity int) (*Slot, error)
	Delete(ctx context.Context, id int) error
}
